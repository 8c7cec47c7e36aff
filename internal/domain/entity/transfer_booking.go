package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransferBooking is a ground-transfer record on a booking card. No
// financial tracking beyond the voucher itself.
type TransferBooking struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CardID       uuid.UUID   `gorm:"type:uuid;not null;index" json:"card_id"`
	BookingRef   string      `gorm:"type:varchar(100)" json:"booking_ref,omitempty"`
	VoucherCode  string      `gorm:"type:varchar(100);uniqueIndex;not null" json:"voucher_code"`
	EmployeeName string      `gorm:"type:varchar(255)" json:"employee_name,omitempty"`
	Pickup       string      `gorm:"type:varchar(255)" json:"pickup,omitempty"`
	Dropoff      string      `gorm:"type:varchar(255)" json:"dropoff,omitempty"`
	Date         *time.Time  `gorm:"type:date" json:"date,omitempty"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	Card         BookingCard `gorm:"foreignKey:CardID" json:"card,omitempty"`
}

func (TransferBooking) TableName() string {
	return "transfer_bookings"
}
