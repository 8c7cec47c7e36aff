package repository

import (
	"unibooking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FlightBookingRepository interface {
	Create(db *gorm.DB, booking *entity.FlightBooking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.FlightBooking, error)
	ListFiltered(db *gorm.DB, filter *entity.ReportFilter, limit int) ([]entity.FlightBooking, error)
}
