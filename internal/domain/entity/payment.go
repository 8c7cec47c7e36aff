package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod of a single payment event
type PaymentMethod string

const (
	MethodCash        PaymentMethod = "cash"
	MethodBank        PaymentMethod = "bank"
	MethodLink        PaymentMethod = "link"
	MethodInstallment PaymentMethod = "installment"
)

// EditWindow is how long after creation a payment stays editable.
const EditWindow = 24 * time.Hour

// Payment is one payment event against exactly one hotel booking.
// NetPrice and SellPrice are snapshots taken when the payment was
// recorded; only the first payment's snapshot seeds the booking's own
// price fields.
type Payment struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	BookingHotelID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"booking_hotel_id"`
	EmployeeName    string          `gorm:"type:varchar(255)" json:"employee_name,omitempty"`
	NetPrice        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"net_price"`
	SellPrice       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"sell_price"`
	PaidAmount      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"paid_amount"`
	Method          PaymentMethod   `gorm:"type:varchar(50);not null" json:"method"`
	InstallmentDate *time.Time      `gorm:"type:date" json:"installment_date,omitempty"`
	PaymentLink     string          `gorm:"type:text" json:"payment_link,omitempty"`
	BankFile        string          `gorm:"type:text" json:"bank_file,omitempty"`
	InvoiceFile     string          `gorm:"type:text" json:"invoice_file,omitempty"`
	VoucherOriginal string          `gorm:"type:text" json:"voucher_original,omitempty"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	BookingHotel HotelBooking `gorm:"foreignKey:BookingHotelID" json:"booking_hotel,omitempty"`
}

func (Payment) TableName() string {
	return "payments"
}

// IsEditable reports whether the payment is still inside its 24-hour
// mutability window. True strictly before created_at+24h, false at and
// after the boundary.
func (p *Payment) IsEditable(now time.Time) bool {
	return now.Before(p.CreatedAt.Add(EditWindow))
}
