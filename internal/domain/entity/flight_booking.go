package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FlightBooking is a single flight record on a booking card. Flights
// carry no payment ledger: the sell price counts as paid in full the
// moment the booking is recorded.
type FlightBooking struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CardID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"card_id"`
	BookingCode   string          `gorm:"type:varchar(80);uniqueIndex;not null" json:"booking_code"`
	Airline       string          `gorm:"type:varchar(100);not null" json:"airline"`
	PNR           string          `gorm:"type:varchar(50);not null" json:"pnr"`
	NetPrice      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"net_price"`
	SellPrice     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"sell_price"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(20)" json:"payment_method,omitempty"`
	PaymentFile   string          `gorm:"type:text" json:"payment_file,omitempty"`
	PaymentLink   string          `gorm:"type:text" json:"payment_link,omitempty"`
	InvoiceFile   string          `gorm:"type:text" json:"invoice_file,omitempty"`
	VoucherFile   string          `gorm:"type:text" json:"voucher_file,omitempty"`
	EmployeeName  string          `gorm:"type:varchar(255)" json:"employee_name,omitempty"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Card BookingCard `gorm:"foreignKey:CardID" json:"card,omitempty"`
}

func (FlightBooking) TableName() string {
	return "flight_bookings"
}

func (b *FlightBooking) Profit() decimal.Decimal {
	return b.SellPrice.Sub(b.NetPrice)
}
