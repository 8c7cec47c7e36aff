package repository

import (
	"unibooking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VisaBookingRepository interface {
	Create(db *gorm.DB, booking *entity.VisaBooking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.VisaBooking, error)
	ListFiltered(db *gorm.DB, filter *entity.ReportFilter, limit int) ([]entity.VisaBooking, error)
}
