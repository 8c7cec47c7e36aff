package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTransferBookingRequest struct {
	BookingRef string `json:"booking_ref" validate:"omitempty,max=100"`
	Pickup     string `json:"pickup" validate:"required,max=255"`
	Dropoff    string `json:"dropoff" validate:"required,max=255"`
	Date       string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type TransferBookingResponse struct {
	ID           uuid.UUID `json:"id"`
	CardID       uuid.UUID `json:"card_id"`
	BookingRef   string    `json:"booking_ref,omitempty"`
	VoucherCode  string    `json:"voucher_code"`
	EmployeeName string    `json:"employee_name,omitempty"`
	Pickup       string    `json:"pickup,omitempty"`
	Dropoff      string    `json:"dropoff,omitempty"`
	Date         string    `json:"date,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
