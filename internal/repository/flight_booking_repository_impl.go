package repository

import (
	"errors"

	"unibooking/internal/domain/entity"
	domainRepo "unibooking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type flightBookingRepository struct{}

func NewFlightBookingRepository() domainRepo.FlightBookingRepository {
	return &flightBookingRepository{}
}

func (r *flightBookingRepository) Create(db *gorm.DB, booking *entity.FlightBooking) error {
	return db.Create(booking).Error
}

func (r *flightBookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.FlightBooking, error) {
	var booking entity.FlightBooking
	err := db.Preload("Card").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *flightBookingRepository) ListFiltered(db *gorm.DB, filter *entity.ReportFilter, limit int) ([]entity.FlightBooking, error) {
	query := applyReportFilter(db.Model(&entity.FlightBooking{}).Preload("Card").Joins("JOIN booking_cards ON booking_cards.id = flight_bookings.card_id"), filter, "flight_bookings")

	var bookings []entity.FlightBooking
	err := query.Order("flight_bookings.created_at DESC").Limit(limit).Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
