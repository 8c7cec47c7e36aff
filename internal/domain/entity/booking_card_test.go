package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBookingCardTotals(t *testing.T) {
	card := &BookingCard{
		HotelBookings: []HotelBooking{
			{
				Net:      decimal.NewFromInt(60),
				Sell:     decimal.NewFromInt(100),
				Payments: []Payment{{PaidAmount: decimal.NewFromInt(50)}},
			},
			{
				Net:  decimal.NewFromInt(150),
				Sell: decimal.NewFromInt(200),
				Payments: []Payment{
					{PaidAmount: decimal.NewFromInt(100)},
					{PaidAmount: decimal.NewFromInt(100)},
				},
			},
		},
		FlightBookings: []FlightBooking{
			{NetPrice: decimal.NewFromInt(250), SellPrice: decimal.NewFromInt(300)},
		},
	}

	assert.True(t, card.TotalSell().Equal(decimal.NewFromInt(600)))
	assert.True(t, card.TotalNet().Equal(decimal.NewFromInt(460)))
	// flights count as paid in full; hotel payments sum to 250
	assert.True(t, card.TotalPaid().Equal(decimal.NewFromInt(550)))
	assert.True(t, card.TotalRemaining().Equal(decimal.NewFromInt(50)))
	assert.True(t, card.TotalProfit().Equal(decimal.NewFromInt(140)))
}

func TestBookingCardTotalsEmpty(t *testing.T) {
	card := &BookingCard{}

	assert.True(t, card.TotalSell().IsZero())
	assert.True(t, card.TotalNet().IsZero())
	assert.True(t, card.TotalPaid().IsZero())
	assert.True(t, card.TotalRemaining().IsZero())
	assert.True(t, card.TotalProfit().IsZero())
}
