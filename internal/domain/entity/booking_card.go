package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BookingCard is the customer-level folder aggregating all of a
// customer's travel bookings. Money totals are never stored; they are
// derived from the loaded child bookings and payments on every read.
type BookingCard struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	CustomerName string    `gorm:"type:varchar(255);not null" json:"customer_name"`
	Mobile       string    `gorm:"type:varchar(50)" json:"mobile,omitempty"`
	Nationality  string    `gorm:"type:varchar(100)" json:"nationality,omitempty"`
	Country      string    `gorm:"type:varchar(100)" json:"country,omitempty"`
	UBCode       string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"ub_code"`
	CreatedByID  uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by_id"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	CreatedBy        User              `gorm:"foreignKey:CreatedByID" json:"created_by,omitempty"`
	HotelBookings    []HotelBooking    `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE" json:"hotel_bookings,omitempty"`
	FlightBookings   []FlightBooking   `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE" json:"flight_bookings,omitempty"`
	TransferBookings []TransferBooking `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE" json:"transfer_bookings,omitempty"`
	VisaBookings     []VisaBooking     `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE" json:"visa_bookings,omitempty"`
}

func (BookingCard) TableName() string {
	return "booking_cards"
}

// TotalSell sums hotel sell prices and flight sell prices.
func (c *BookingCard) TotalSell() decimal.Decimal {
	total := decimal.Zero
	for i := range c.HotelBookings {
		total = total.Add(c.HotelBookings[i].Sell)
	}
	for i := range c.FlightBookings {
		total = total.Add(c.FlightBookings[i].SellPrice)
	}
	return total
}

// TotalNet sums hotel net costs and flight net costs.
func (c *BookingCard) TotalNet() decimal.Decimal {
	total := decimal.Zero
	for i := range c.HotelBookings {
		total = total.Add(c.HotelBookings[i].Net)
	}
	for i := range c.FlightBookings {
		total = total.Add(c.FlightBookings[i].NetPrice)
	}
	return total
}

// TotalPaid sums hotel payments plus flight sell prices. Flights carry
// no installment ledger and count as fully paid the moment they are
// recorded.
func (c *BookingCard) TotalPaid() decimal.Decimal {
	total := decimal.Zero
	for i := range c.HotelBookings {
		total = total.Add(c.HotelBookings[i].TotalPaid())
	}
	for i := range c.FlightBookings {
		total = total.Add(c.FlightBookings[i].SellPrice)
	}
	return total
}

func (c *BookingCard) TotalRemaining() decimal.Decimal {
	return c.TotalSell().Sub(c.TotalPaid())
}

func (c *BookingCard) TotalProfit() decimal.Decimal {
	return c.TotalSell().Sub(c.TotalNet())
}
