package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CancellationPolicy of a hotel stay
type CancellationPolicy string

const (
	PolicyRefundable            CancellationPolicy = "refundable"
	PolicyRefundableWithPenalty CancellationPolicy = "refundable_with_penalty"
	PolicyNonRefundable         CancellationPolicy = "non_refundable"
)

// PenaltyType qualifies the cancellation penalty value
type PenaltyType string

const (
	PenaltyPercent PenaltyType = "percent"
	PenaltyAmount  PenaltyType = "amount"
)

// HotelBooking is one hotel stay tied to exactly one booking card.
// Net and Sell start at zero and are set once by the first payment
// recorded against the booking; they are never independently editable
// after that.
type HotelBooking struct {
	ID                       uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CardID                   uuid.UUID           `gorm:"type:uuid;not null;index" json:"card_id"`
	BookingRef               string              `gorm:"type:varchar(100)" json:"booking_ref,omitempty"`
	VoucherCode              string              `gorm:"type:varchar(100);uniqueIndex;not null" json:"voucher_code"`
	EmployeeName             string              `gorm:"type:varchar(255)" json:"employee_name,omitempty"`
	HotelName                string              `gorm:"type:varchar(255)" json:"hotel_name,omitempty"`
	HotelAddress             string              `gorm:"type:varchar(255)" json:"hotel_address,omitempty"`
	Country                  string              `gorm:"type:varchar(100)" json:"country,omitempty"`
	RoomType                 string              `gorm:"type:varchar(100)" json:"room_type,omitempty"`
	MealPlan                 string              `gorm:"type:varchar(50)" json:"meal_plan,omitempty"`
	ProviderName             string              `gorm:"type:varchar(150)" json:"provider_name,omitempty"`
	Checkin                  *time.Time          `gorm:"type:date" json:"checkin,omitempty"`
	Checkout                 *time.Time          `gorm:"type:date" json:"checkout,omitempty"`
	Nights                   int                 `gorm:"default:0" json:"nights"`
	RoomsCount               int                 `gorm:"default:1" json:"rooms_count"`
	CancellationPolicy       CancellationPolicy  `gorm:"type:varchar(50);default:'refundable'" json:"cancellation_policy,omitempty"`
	RefundableUntil          *time.Time          `gorm:"type:date" json:"refundable_until,omitempty"`
	CancellationPenaltyValue decimal.NullDecimal `gorm:"type:decimal(8,2)" json:"cancellation_penalty_value,omitempty"`
	CancellationPenaltyType  PenaltyType         `gorm:"type:varchar(20)" json:"cancellation_penalty_type,omitempty"`
	Net                      decimal.Decimal     `gorm:"type:decimal(12,2);not null;default:0" json:"net"`
	Sell                     decimal.Decimal     `gorm:"type:decimal(12,2);not null;default:0" json:"sell"`
	CreatedAt                time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time           `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Card     BookingCard `gorm:"foreignKey:CardID" json:"card,omitempty"`
	Rooms    []Room      `gorm:"foreignKey:HotelBookingID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
	Payments []Payment   `gorm:"foreignKey:BookingHotelID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
}

func (HotelBooking) TableName() string {
	return "hotel_bookings"
}

// HasPayments reports whether any payment was ever recorded. The first
// payment is the one that fixes Net and Sell.
func (b *HotelBooking) HasPayments() bool {
	return len(b.Payments) > 0
}

func (b *HotelBooking) Profit() decimal.Decimal {
	return b.Sell.Sub(b.Net)
}

// TotalPaid sums paid_amount over the loaded payments.
func (b *HotelBooking) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for i := range b.Payments {
		total = total.Add(b.Payments[i].PaidAmount)
	}
	return total
}

// Remaining is the sell price minus cumulative payments.
func (b *HotelBooking) Remaining() decimal.Decimal {
	return b.Sell.Sub(b.TotalPaid())
}

// Room groups the guest names occupying one room of a hotel booking
type Room struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	HotelBookingID uuid.UUID `gorm:"type:uuid;not null;index" json:"hotel_booking_id"`
	GuestNames     string    `gorm:"type:text;not null" json:"guest_names"`
}

func (Room) TableName() string {
	return "rooms"
}
