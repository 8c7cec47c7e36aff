package repository

import (
	"unibooking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingCardRepository interface {
	Create(db *gorm.DB, card *entity.BookingCard) error
	// FindByID loads the card with all child bookings and hotel payments
	// so derived totals can be computed in memory.
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.BookingCard, error)
	// FindOwnerID returns the creating user's id without loading the
	// card's children. Used for ownership checks on child resources.
	FindOwnerID(db *gorm.DB, id uuid.UUID) (*uuid.UUID, error)
	// Search lists cards matching q against customer name, code or
	// mobile, newest first. ownerID nil means no ownership filter.
	Search(db *gorm.DB, ownerID *uuid.UUID, q string, offset, limit int) ([]entity.BookingCard, int64, error)
	FindByIDs(db *gorm.DB, ownerID *uuid.UUID, ids []uuid.UUID) ([]entity.BookingCard, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	DeleteByIDs(db *gorm.DB, ownerID *uuid.UUID, ids []uuid.UUID) (int64, error)
}
