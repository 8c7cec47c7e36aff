package repository

import (
	"unibooking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type HotelBookingRepository interface {
	Create(db *gorm.DB, booking *entity.HotelBooking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.HotelBooking, error)
	// FindByIDForUpdate locks the booking row (SELECT ... FOR UPDATE) so
	// the ledger's validate-then-write sequence serializes per booking.
	// Must be called inside a transaction.
	FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*entity.HotelBooking, error)
	UpdatePrices(db *gorm.DB, id uuid.UUID, net, sell decimal.Decimal) error
	ListFiltered(db *gorm.DB, filter *entity.ReportFilter, limit int) ([]entity.HotelBooking, error)
}
