package repository

import (
	"unibooking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransferBookingRepository interface {
	Create(db *gorm.DB, booking *entity.TransferBooking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.TransferBooking, error)
	ListFiltered(db *gorm.DB, filter *entity.ReportFilter, limit int) ([]entity.TransferBooking, error)
}
