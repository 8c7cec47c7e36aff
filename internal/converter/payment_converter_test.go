package converter

import (
	"testing"
	"time"

	"unibooking/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentToResponse(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	due := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	payment := &entity.Payment{
		ID:              uuid.New(),
		BookingHotelID:  uuid.New(),
		EmployeeName:    "Amy Lee",
		PaidAmount:      decimal.NewFromInt(200),
		Method:          entity.MethodBank,
		InstallmentDate: &due,
		BankFile:        "payment/x/bank_file/receipt.pdf",
		CreatedAt:       created,
	}

	t.Run("inside the edit window", func(t *testing.T) {
		resp := PaymentToResponse(payment, created.Add(time.Hour))
		require.NotNil(t, resp)
		assert.True(t, resp.IsEditable)
		assert.Equal(t, "2026-09-01", resp.InstallmentDate)
		assert.Equal(t, "bank", resp.Method)
	})

	t.Run("after the edit window", func(t *testing.T) {
		resp := PaymentToResponse(payment, created.Add(25*time.Hour))
		assert.False(t, resp.IsEditable)
	})

	t.Run("nil payment", func(t *testing.T) {
		assert.Nil(t, PaymentToResponse(nil, created))
	})
}

func TestLedgerToResponse(t *testing.T) {
	now := time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)
	booking := &entity.HotelBooking{
		ID:   uuid.New(),
		Net:  decimal.NewFromInt(300),
		Sell: decimal.NewFromInt(500),
		Payments: []entity.Payment{
			{PaidAmount: decimal.NewFromInt(200), CreatedAt: now.Add(-48 * time.Hour)},
			{PaidAmount: decimal.NewFromInt(100), CreatedAt: now.Add(-time.Hour)},
		},
	}

	resp := LedgerToResponse(booking, now)
	assert.Equal(t, booking.ID, resp.BookingID)
	assert.True(t, resp.Profit.Equal(decimal.NewFromInt(200)))
	assert.True(t, resp.TotalPaid.Equal(decimal.NewFromInt(300)))
	assert.True(t, resp.Remaining.Equal(decimal.NewFromInt(200)))

	require.Len(t, resp.Payments, 2)
	assert.False(t, resp.Payments[0].IsEditable)
	assert.True(t, resp.Payments[1].IsEditable)
}
