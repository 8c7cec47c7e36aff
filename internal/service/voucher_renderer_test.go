package service

import (
	"bytes"
	"io"
	"testing"
	"time"

	"unibooking/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRenderer() *VoucherRenderer {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewVoucherRenderer(log)
}

func TestRenderHotelVoucher(t *testing.T) {
	checkin := time.Date(2026, 5, 12, 0, 0, 0, 0, time.UTC)
	checkout := time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC)
	b := &entity.HotelBooking{
		VoucherCode:        "H20260215BK-11234",
		BookingRef:         "BK-1",
		HotelName:          "Grand Plaza",
		Country:            "UAE",
		Checkin:            &checkin,
		Checkout:           &checkout,
		Nights:             3,
		RoomsCount:         1,
		CancellationPolicy: entity.PolicyRefundable,
		EmployeeName:       "Amy Lee",
		Card:               entity.BookingCard{CustomerName: "John Smith"},
		Rooms:              []entity.Room{{GuestNames: "John Smith, Jane Smith"}},
	}

	data, err := newTestRenderer().RenderHotel(b, "https://example.com/api/v1/vouchers/hotel/x")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestRenderFlightVoucherWithoutQR(t *testing.T) {
	b := &entity.FlightBooking{
		BookingCode: "F20260215ABC123AMYLE",
		Airline:     "Emirates",
		PNR:         "ABC123",
		SellPrice:   decimal.NewFromInt(500),
		Card:        entity.BookingCard{CustomerName: "John Smith"},
	}

	data, err := newTestRenderer().RenderFlight(b, "")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
