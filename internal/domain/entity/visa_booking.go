package entity

import (
	"time"

	"github.com/google/uuid"
)

// VisaBooking is a visa-processing record on a booking card.
type VisaBooking struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CardID       uuid.UUID   `gorm:"type:uuid;not null;index" json:"card_id"`
	BookingRef   string      `gorm:"type:varchar(100)" json:"booking_ref,omitempty"`
	VoucherCode  string      `gorm:"type:varchar(100);uniqueIndex;not null" json:"voucher_code"`
	EmployeeName string      `gorm:"type:varchar(255)" json:"employee_name,omitempty"`
	VisaType     string      `gorm:"type:varchar(100)" json:"visa_type,omitempty"`
	Nationality  string      `gorm:"type:varchar(100)" json:"nationality,omitempty"`
	CreatedAt    time.Time   `gorm:"autoCreateTime" json:"created_at"`
	Card         BookingCard `gorm:"foreignKey:CardID" json:"card,omitempty"`
}

func (VisaBooking) TableName() string {
	return "visa_bookings"
}
