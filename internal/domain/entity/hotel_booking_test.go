package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestHotelBookingLedgerDerivedValues(t *testing.T) {
	b := &HotelBooking{
		Net:  decimal.NewFromInt(300),
		Sell: decimal.NewFromInt(500),
		Payments: []Payment{
			{PaidAmount: decimal.NewFromInt(200)},
			{PaidAmount: decimal.NewFromInt(150)},
		},
	}

	assert.True(t, b.HasPayments())
	assert.True(t, b.TotalPaid().Equal(decimal.NewFromInt(350)))
	assert.True(t, b.Remaining().Equal(decimal.NewFromInt(150)))
	assert.True(t, b.Profit().Equal(decimal.NewFromInt(200)))
}

func TestHotelBookingWithoutPayments(t *testing.T) {
	b := &HotelBooking{}

	assert.False(t, b.HasPayments())
	assert.True(t, b.TotalPaid().IsZero())
	assert.True(t, b.Remaining().IsZero())
}

func TestFlightBookingProfit(t *testing.T) {
	b := &FlightBooking{
		NetPrice:  decimal.NewFromFloat(420.50),
		SellPrice: decimal.NewFromFloat(500.00),
	}
	assert.True(t, b.Profit().Equal(decimal.NewFromFloat(79.50)))
}
