package repository

import (
	"errors"

	"unibooking/internal/domain/entity"
	domainRepo "unibooking/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type hotelBookingRepository struct{}

func NewHotelBookingRepository() domainRepo.HotelBookingRepository {
	return &hotelBookingRepository{}
}

func (r *hotelBookingRepository) Create(db *gorm.DB, booking *entity.HotelBooking) error {
	return db.Create(booking).Error
}

func (r *hotelBookingRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.HotelBooking, error) {
	var booking entity.HotelBooking
	err := db.
		Preload("Card").
		Preload("Rooms").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("payments.created_at ASC")
		}).
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

// FindByIDForUpdate locks the booking row for the remainder of the
// surrounding transaction. Payments are loaded afterwards so the sums
// seen by the ledger cannot move under a concurrent submission.
func (r *hotelBookingRepository) FindByIDForUpdate(tx *gorm.DB, id uuid.UUID) (*entity.HotelBooking, error) {
	var booking entity.HotelBooking
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	err = tx.
		Where("booking_hotel_id = ?", id).
		Order("created_at ASC").
		Find(&booking.Payments).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *hotelBookingRepository) UpdatePrices(db *gorm.DB, id uuid.UUID, net, sell decimal.Decimal) error {
	return db.Model(&entity.HotelBooking{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"net": net, "sell": sell}).Error
}

func (r *hotelBookingRepository) ListFiltered(db *gorm.DB, filter *entity.ReportFilter, limit int) ([]entity.HotelBooking, error) {
	query := applyReportFilter(db.Model(&entity.HotelBooking{}).Preload("Card").Joins("JOIN booking_cards ON booking_cards.id = hotel_bookings.card_id"), filter, "hotel_bookings")

	var bookings []entity.HotelBooking
	err := query.Order("hotel_bookings.created_at DESC").Limit(limit).Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// applyReportFilter applies the shared report constraints: date range
// on the booking's created_at, employee name match, and card ownership.
func applyReportFilter(query *gorm.DB, filter *entity.ReportFilter, table string) *gorm.DB {
	if filter == nil {
		return query
	}
	if filter.From != nil {
		query = query.Where(table+".created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where(table+".created_at < ?", filter.To.AddDate(0, 0, 1))
	}
	if filter.Employee != "" {
		query = query.Where(table+".employee_name ILIKE ?", "%"+filter.Employee+"%")
	}
	if filter.OwnerID != nil {
		query = query.Where("booking_cards.created_by_id = ?", *filter.OwnerID)
	}
	return query
}
