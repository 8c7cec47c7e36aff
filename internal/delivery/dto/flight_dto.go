package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateFlightBookingRequest struct {
	Airline       string          `json:"airline" validate:"required,max=100"`
	PNR           string          `json:"pnr" validate:"required,max=50"`
	NetPrice      decimal.Decimal `json:"net_price"`
	SellPrice     decimal.Decimal `json:"sell_price"`
	PaymentMethod string          `json:"payment_method" validate:"omitempty,oneof=cash bank link"`
	PaymentLink   string          `json:"payment_link,omitempty"`
	PaymentFile   *FileUpload     `json:"-"`
	InvoiceFile   *FileUpload     `json:"-"`
	VoucherFile   *FileUpload     `json:"-"`
}

type FlightBookingResponse struct {
	ID            uuid.UUID       `json:"id"`
	CardID        uuid.UUID       `json:"card_id"`
	BookingCode   string          `json:"booking_code"`
	Airline       string          `json:"airline"`
	PNR           string          `json:"pnr"`
	NetPrice      decimal.Decimal `json:"net_price"`
	SellPrice     decimal.Decimal `json:"sell_price"`
	Profit        decimal.Decimal `json:"profit"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	PaymentLink   string          `json:"payment_link,omitempty"`
	PaymentFile   string          `json:"payment_file,omitempty"`
	InvoiceFile   string          `json:"invoice_file,omitempty"`
	VoucherFile   string          `json:"voucher_file,omitempty"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
