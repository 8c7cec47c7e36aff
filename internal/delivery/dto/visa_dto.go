package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateVisaBookingRequest struct {
	BookingRef  string `json:"booking_ref" validate:"omitempty,max=100"`
	VisaType    string `json:"visa_type" validate:"required,max=100"`
	Nationality string `json:"nationality" validate:"required,max=100"`
}

type VisaBookingResponse struct {
	ID           uuid.UUID `json:"id"`
	CardID       uuid.UUID `json:"card_id"`
	BookingRef   string    `json:"booking_ref,omitempty"`
	VoucherCode  string    `json:"voucher_code"`
	EmployeeName string    `json:"employee_name,omitempty"`
	VisaType     string    `json:"visa_type,omitempty"`
	Nationality  string    `json:"nationality,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}
