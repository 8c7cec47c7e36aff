package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateCardRequest struct {
	CustomerName string `json:"customer_name" validate:"required,min=2,max=255"`
	Mobile       string `json:"mobile" validate:"omitempty,max=50"`
	Nationality  string `json:"nationality" validate:"omitempty,max=100"`
	Country      string `json:"country" validate:"omitempty,max=100"`
}

type BulkDeleteCardsRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

// Response DTOs

type CardTotals struct {
	TotalSell      decimal.Decimal `json:"total_sell"`
	TotalNet       decimal.Decimal `json:"total_net"`
	TotalPaid      decimal.Decimal `json:"total_paid"`
	TotalRemaining decimal.Decimal `json:"total_remaining"`
	TotalProfit    decimal.Decimal `json:"total_profit"`
}

type CardResponse struct {
	ID           uuid.UUID `json:"id"`
	UBCode       string    `json:"ub_code"`
	CustomerName string    `json:"customer_name"`
	Mobile       string    `json:"mobile,omitempty"`
	Nationality  string    `json:"nationality,omitempty"`
	Country      string    `json:"country,omitempty"`
	CreatedByID  uuid.UUID `json:"created_by_id"`
	CreatedAt    time.Time `json:"created_at"`
}

type CardDetailResponse struct {
	Card             CardResponse              `json:"card"`
	Totals           CardTotals                `json:"totals"`
	HotelBookings    []HotelBookingResponse    `json:"hotel_bookings"`
	FlightBookings   []FlightBookingResponse   `json:"flight_bookings"`
	TransferBookings []TransferBookingResponse `json:"transfer_bookings"`
	VisaBookings     []VisaBookingResponse     `json:"visa_bookings"`
}

type CardListResponse struct {
	Cards []CardResponse `json:"cards"`
	Total int64          `json:"total"`
}
