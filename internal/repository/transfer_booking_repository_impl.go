package repository

import (
	"errors"

	"unibooking/internal/domain/entity"
	domainRepo "unibooking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type transferBookingRepository struct{}

func NewTransferBookingRepository() domainRepo.TransferBookingRepository {
	return &transferBookingRepository{}
}

func (r *transferBookingRepository) Create(db *gorm.DB, booking *entity.TransferBooking) error {
	return db.Create(booking).Error
}

func (r *transferBookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.TransferBooking, error) {
	var booking entity.TransferBooking
	err := db.Preload("Card").Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *transferBookingRepository) ListFiltered(db *gorm.DB, filter *entity.ReportFilter, limit int) ([]entity.TransferBooking, error) {
	query := applyReportFilter(db.Model(&entity.TransferBooking{}).Preload("Card").Joins("JOIN booking_cards ON booking_cards.id = transfer_bookings.card_id"), filter, "transfer_bookings")

	var bookings []entity.TransferBooking
	err := query.Order("transfer_bookings.created_at DESC").Limit(limit).Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
