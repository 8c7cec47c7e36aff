package repository

import (
	"unibooking/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Payment, error)
	Update(db *gorm.DB, payment *entity.Payment) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
