package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FileUpload carries one multipart file through to the usecase layer.
type FileUpload struct {
	Filename string
	Data     []byte
}

// RecordPaymentRequest is the single payment form. Which fields are
// required flips on whether the booking already has payments: the
// first payment must carry net/sell prices plus invoice and original
// voucher attachments; subsequent payments must not carry any of them.
type RecordPaymentRequest struct {
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	Method          string          `json:"method" validate:"required,oneof=cash bank link installment"`
	InstallmentDate *time.Time      `json:"installment_date,omitempty"`
	PaymentLink     string          `json:"payment_link,omitempty"`

	// First-payment-only fields
	NetPrice        *decimal.Decimal `json:"net_price,omitempty"`
	SellPrice       *decimal.Decimal `json:"sell_price,omitempty"`
	InvoiceFile     *FileUpload      `json:"-"`
	VoucherOriginal *FileUpload      `json:"-"`

	// Required when method is bank or cash
	BankFile *FileUpload `json:"-"`
}

// EditPaymentRequest mirrors RecordPaymentRequest for admin edits
// inside the 24-hour window.
type EditPaymentRequest struct {
	PaidAmount      decimal.Decimal  `json:"paid_amount"`
	Method          string           `json:"method" validate:"required,oneof=cash bank link installment"`
	InstallmentDate *time.Time       `json:"installment_date,omitempty"`
	PaymentLink     string           `json:"payment_link,omitempty"`
	NetPrice        *decimal.Decimal `json:"net_price,omitempty"`
	SellPrice       *decimal.Decimal `json:"sell_price,omitempty"`
	BankFile        *FileUpload      `json:"-"`
}

// Response DTOs

type PaymentResponse struct {
	ID              uuid.UUID       `json:"id"`
	BookingHotelID  uuid.UUID       `json:"booking_hotel_id"`
	EmployeeName    string          `json:"employee_name,omitempty"`
	NetPrice        decimal.Decimal `json:"net_price"`
	SellPrice       decimal.Decimal `json:"sell_price"`
	PaidAmount      decimal.Decimal `json:"paid_amount"`
	Method          string          `json:"method"`
	InstallmentDate string          `json:"installment_date,omitempty"`
	PaymentLink     string          `json:"payment_link,omitempty"`
	BankFile        string          `json:"bank_file,omitempty"`
	InvoiceFile     string          `json:"invoice_file,omitempty"`
	VoucherOriginal string          `json:"voucher_original,omitempty"`
	IsEditable      bool            `json:"is_editable"`
	CreatedAt       time.Time       `json:"created_at"`
}

// RecordPaymentResponse returns the new payment plus the remaining
// balance for confirmation messaging.
type RecordPaymentResponse struct {
	Payment        PaymentResponse `json:"payment"`
	RemainingAfter decimal.Decimal `json:"remaining_after"`
}

// PaymentLedgerResponse is the booking's payment stream plus derived
// totals, recomputed on every read.
type PaymentLedgerResponse struct {
	BookingID uuid.UUID         `json:"booking_id"`
	Sell      decimal.Decimal   `json:"sell"`
	Net       decimal.Decimal   `json:"net"`
	Profit    decimal.Decimal   `json:"profit"`
	TotalPaid decimal.Decimal   `json:"total_paid"`
	Remaining decimal.Decimal   `json:"remaining"`
	Payments  []PaymentResponse `json:"payments"`
}
