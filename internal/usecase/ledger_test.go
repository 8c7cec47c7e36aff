package usecase

import (
	"testing"
	"time"

	"unibooking/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func decPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func firstEntry(paid int64) *ledgerEntry {
	return &ledgerEntry{
		PaidAmount:         dec(paid),
		Method:             entity.MethodInstallment,
		NetPrice:           decPtr(300),
		SellPrice:          decPtr(500),
		HasInvoiceFile:     true,
		HasVoucherOriginal: true,
	}
}

func TestValidateLedgerEntryFirstPayment(t *testing.T) {
	checkin := datePtr(2026, 10, 1)
	booking := &entity.HotelBooking{Checkin: checkin}

	t.Run("full settlement needs no installment date", func(t *testing.T) {
		res, err := validateLedgerEntry(booking, nil, firstEntry(500), false)
		require.NoError(t, err)
		assert.True(t, res.IsFirst)
		assert.True(t, res.EffectiveSell.Equal(dec(500)))
		assert.True(t, res.RemainingAfter.IsZero())
	})

	t.Run("missing required fields are reported together", func(t *testing.T) {
		in := &ledgerEntry{PaidAmount: dec(100), Method: entity.MethodInstallment}
		_, err := validateLedgerEntry(booking, nil, in, false)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "net_price")
		assert.Contains(t, ve.Fields, "sell_price")
		assert.Contains(t, ve.Fields, "invoice_file")
		assert.Contains(t, ve.Fields, "voucher_original")
	})

	t.Run("partial payment requires installment date", func(t *testing.T) {
		_, err := validateLedgerEntry(booking, nil, firstEntry(200), false)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "installment_date")
	})

	t.Run("installment date after checkin is rejected", func(t *testing.T) {
		in := firstEntry(200)
		in.InstallmentDate = datePtr(2026, 10, 2)
		_, err := validateLedgerEntry(booking, nil, in, false)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "installment_date")
	})

	t.Run("installment date on checkin day is accepted", func(t *testing.T) {
		in := firstEntry(200)
		in.InstallmentDate = datePtr(2026, 10, 1)
		res, err := validateLedgerEntry(booking, nil, in, false)
		require.NoError(t, err)
		assert.True(t, res.RemainingAfter.Equal(dec(300)))
	})
}

func TestValidateLedgerEntrySubsequentPayment(t *testing.T) {
	booking := &entity.HotelBooking{
		Sell:    dec(500),
		Net:     dec(300),
		Checkin: datePtr(2026, 10, 1),
	}
	existing := []entity.Payment{{PaidAmount: dec(200)}}

	t.Run("price fields are locked after the first payment", func(t *testing.T) {
		in := &ledgerEntry{
			PaidAmount:         dec(100),
			Method:             entity.MethodInstallment,
			NetPrice:           decPtr(300),
			SellPrice:          decPtr(500),
			HasInvoiceFile:     true,
			HasVoucherOriginal: true,
		}
		_, err := validateLedgerEntry(booking, existing, in, false)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "net_price")
		assert.Contains(t, ve.Fields, "sell_price")
		assert.Contains(t, ve.Fields, "invoice_file")
		assert.Contains(t, ve.Fields, "voucher_original")
	})

	t.Run("valid partial payment reduces the remaining balance", func(t *testing.T) {
		in := &ledgerEntry{
			PaidAmount:      dec(100),
			Method:          entity.MethodBank,
			HasBankFile:     true,
			InstallmentDate: datePtr(2026, 9, 20),
		}
		res, err := validateLedgerEntry(booking, existing, in, false)
		require.NoError(t, err)
		assert.False(t, res.IsFirst)
		assert.True(t, res.EffectiveSell.Equal(dec(500)))
		assert.True(t, res.RemainingAfter.Equal(dec(200)))
	})

	t.Run("zero paid amount is rejected", func(t *testing.T) {
		in := &ledgerEntry{PaidAmount: decimal.Zero, Method: entity.MethodCash, HasBankFile: true}
		_, err := validateLedgerEntry(booking, existing, in, false)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "paid_amount")
	})

	t.Run("overpayment reports the remaining balance", func(t *testing.T) {
		paid := []entity.Payment{{PaidAmount: dec(400)}}
		in := &ledgerEntry{PaidAmount: dec(150), Method: entity.MethodCash, HasBankFile: true}
		_, err := validateLedgerEntry(booking, paid, in, false)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "paid amount exceeds remaining balance (100.00)", ve.Fields["paid_amount"])
	})

	t.Run("link payment requires a payment link", func(t *testing.T) {
		in := &ledgerEntry{
			PaidAmount:      dec(100),
			Method:          entity.MethodLink,
			InstallmentDate: datePtr(2026, 9, 20),
		}
		_, err := validateLedgerEntry(booking, existing, in, false)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "payment_link")
	})

	t.Run("bank payment requires a receipt", func(t *testing.T) {
		in := &ledgerEntry{
			PaidAmount:      dec(100),
			Method:          entity.MethodBank,
			InstallmentDate: datePtr(2026, 9, 20),
		}
		_, err := validateLedgerEntry(booking, existing, in, false)

		var ve *ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Contains(t, ve.Fields, "bank_file")
	})

	t.Run("settling payment needs no installment date", func(t *testing.T) {
		in := &ledgerEntry{PaidAmount: dec(300), Method: entity.MethodCash, HasBankFile: true}
		res, err := validateLedgerEntry(booking, existing, in, false)
		require.NoError(t, err)
		assert.True(t, res.RemainingAfter.IsZero())
	})
}

func TestValidateLedgerEntryEditFirst(t *testing.T) {
	// Editing the price-setting payment: the rest of the stream stays,
	// and the edited payment must still carry the pricing snapshot.
	booking := &entity.HotelBooking{
		Sell:    dec(500),
		Net:     dec(300),
		Checkin: datePtr(2026, 10, 1),
	}
	others := []entity.Payment{{PaidAmount: dec(100)}}

	in := &ledgerEntry{
		PaidAmount:         dec(200),
		Method:             entity.MethodInstallment,
		NetPrice:           decPtr(300),
		SellPrice:          decPtr(500),
		HasInvoiceFile:     true,
		HasVoucherOriginal: true,
		InstallmentDate:    datePtr(2026, 9, 15),
	}
	res, err := validateLedgerEntry(booking, others, in, true)
	require.NoError(t, err)
	assert.True(t, res.IsFirst)
	assert.True(t, res.EffectiveSell.Equal(dec(500)))
	assert.True(t, res.RemainingAfter.Equal(dec(200)))
}

func TestValidationErrorMessage(t *testing.T) {
	err := FieldError("paid_amount", "paid amount must be greater than zero")
	assert.Equal(t, "validation failed: paid_amount: paid amount must be greater than zero", err.Error())
}
