package repository

import (
	"errors"

	"unibooking/internal/domain/entity"
	domainRepo "unibooking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type visaBookingRepository struct{}

func NewVisaBookingRepository() domainRepo.VisaBookingRepository {
	return &visaBookingRepository{}
}

func (r *visaBookingRepository) Create(db *gorm.DB, booking *entity.VisaBooking) error {
	return db.Create(booking).Error
}

func (r *visaBookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.VisaBooking, error) {
	var booking entity.VisaBooking
	err := db.Preload("Card").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *visaBookingRepository) ListFiltered(db *gorm.DB, filter *entity.ReportFilter, limit int) ([]entity.VisaBooking, error) {
	query := applyReportFilter(db.Model(&entity.VisaBooking{}).Preload("Card").Joins("JOIN booking_cards ON booking_cards.id = visa_bookings.card_id"), filter, "visa_bookings")

	var bookings []entity.VisaBooking
	err := query.Order("visa_bookings.created_at DESC").Limit(limit).Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
