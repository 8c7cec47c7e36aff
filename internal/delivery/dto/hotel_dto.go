package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type RoomRequest struct {
	GuestNames string `json:"guest_names" validate:"required"`
}

type CreateHotelBookingRequest struct {
	BookingRef               string           `json:"booking_ref" validate:"required,max=100"`
	HotelName                string           `json:"hotel_name" validate:"required,max=255"`
	HotelAddress             string           `json:"hotel_address" validate:"required,max=255"`
	Country                  string           `json:"country" validate:"required,max=100"`
	RoomType                 string           `json:"room_type" validate:"required,max=100"`
	MealPlan                 string           `json:"meal_plan" validate:"required,max=50"`
	ProviderName             string           `json:"provider_name" validate:"required,max=150"`
	Checkin                  string           `json:"checkin" validate:"omitempty,datetime=2006-01-02"`
	Checkout                 string           `json:"checkout" validate:"omitempty,datetime=2006-01-02"`
	RoomsCount               int              `json:"rooms_count" validate:"omitempty,min=1"`
	CancellationPolicy       string           `json:"cancellation_policy" validate:"omitempty,oneof=refundable refundable_with_penalty non_refundable"`
	RefundableUntil          string           `json:"refundable_until" validate:"omitempty,datetime=2006-01-02"`
	CancellationPenaltyValue *decimal.Decimal `json:"cancellation_penalty_value"`
	CancellationPenaltyType  string           `json:"cancellation_penalty_type" validate:"omitempty,oneof=percent amount"`
	Rooms                    []RoomRequest    `json:"rooms" validate:"omitempty,dive"`
}

// Response DTOs

type RoomResponse struct {
	ID         uuid.UUID `json:"id"`
	GuestNames string    `json:"guest_names"`
}

type HotelBookingResponse struct {
	ID                       uuid.UUID         `json:"id"`
	CardID                   uuid.UUID         `json:"card_id"`
	BookingRef               string            `json:"booking_ref,omitempty"`
	VoucherCode              string            `json:"voucher_code"`
	EmployeeName             string            `json:"employee_name,omitempty"`
	HotelName                string            `json:"hotel_name,omitempty"`
	HotelAddress             string            `json:"hotel_address,omitempty"`
	Country                  string            `json:"country,omitempty"`
	RoomType                 string            `json:"room_type,omitempty"`
	MealPlan                 string            `json:"meal_plan,omitempty"`
	ProviderName             string            `json:"provider_name,omitempty"`
	Checkin                  string            `json:"checkin,omitempty"`
	Checkout                 string            `json:"checkout,omitempty"`
	Nights                   int               `json:"nights"`
	RoomsCount               int               `json:"rooms_count"`
	CancellationPolicy       string            `json:"cancellation_policy,omitempty"`
	RefundableUntil          string            `json:"refundable_until,omitempty"`
	CancellationPenaltyValue *decimal.Decimal  `json:"cancellation_penalty_value,omitempty"`
	CancellationPenaltyType  string            `json:"cancellation_penalty_type,omitempty"`
	Net                      decimal.Decimal   `json:"net"`
	Sell                     decimal.Decimal   `json:"sell"`
	Profit                   decimal.Decimal   `json:"profit"`
	TotalPaid                decimal.Decimal   `json:"total_paid"`
	Remaining                decimal.Decimal   `json:"remaining"`
	Rooms                    []RoomResponse    `json:"rooms,omitempty"`
	Payments                 []PaymentResponse `json:"payments,omitempty"`
	CreatedAt                time.Time         `json:"created_at"`
}
