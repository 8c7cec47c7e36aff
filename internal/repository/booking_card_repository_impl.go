package repository

import (
	"errors"

	"unibooking/internal/domain/entity"
	domainRepo "unibooking/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bookingCardRepository struct{}

func NewBookingCardRepository() domainRepo.BookingCardRepository {
	return &bookingCardRepository{}
}

func (r *bookingCardRepository) Create(db *gorm.DB, card *entity.BookingCard) error {
	return db.Create(card).Error
}

func (r *bookingCardRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.BookingCard, error) {
	var card entity.BookingCard
	err := db.
		Preload("HotelBookings.Payments").
		Preload("HotelBookings.Rooms").
		Preload("FlightBookings").
		Preload("TransferBookings").
		Preload("VisaBookings").
		Where("id = ?", id).
		First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (r *bookingCardRepository) FindOwnerID(db *gorm.DB, id uuid.UUID) (*uuid.UUID, error) {
	var card entity.BookingCard
	err := db.Select("id", "created_by_id").Where("id = ?", id).First(&card).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card.CreatedByID, nil
}

func (r *bookingCardRepository) Search(db *gorm.DB, ownerID *uuid.UUID, q string, offset, limit int) ([]entity.BookingCard, int64, error) {
	query := db.Model(&entity.BookingCard{})
	if ownerID != nil {
		query = query.Where("created_by_id = ?", *ownerID)
	}
	if q != "" {
		like := "%" + q + "%"
		query = query.Where("customer_name ILIKE ? OR ub_code ILIKE ? OR mobile ILIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var cards []entity.BookingCard
	err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&cards).Error
	if err != nil {
		return nil, 0, err
	}
	return cards, total, nil
}

func (r *bookingCardRepository) FindByIDs(db *gorm.DB, ownerID *uuid.UUID, ids []uuid.UUID) ([]entity.BookingCard, error) {
	query := db.
		Preload("HotelBookings").
		Preload("FlightBookings").
		Preload("TransferBookings").
		Preload("VisaBookings")
	if ownerID != nil {
		query = query.Where("created_by_id = ?", *ownerID)
	}
	if len(ids) > 0 {
		query = query.Where("id IN ?", ids)
	}

	var cards []entity.BookingCard
	if err := query.Order("created_at DESC").Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *bookingCardRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.BookingCard{})
	return result.RowsAffected, result.Error
}

func (r *bookingCardRepository) DeleteByIDs(db *gorm.DB, ownerID *uuid.UUID, ids []uuid.UUID) (int64, error) {
	query := db.Where("id IN ?", ids)
	if ownerID != nil {
		query = query.Where("created_by_id = ?", *ownerID)
	}
	result := query.Delete(&entity.BookingCard{})
	return result.RowsAffected, result.Error
}
