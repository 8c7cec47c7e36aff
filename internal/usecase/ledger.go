package usecase

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"unibooking/internal/domain/entity"

	"github.com/shopspring/decimal"
)

// ValidationError is a field-scoped rejection. Nothing is committed
// when one is returned; the caller fixes the input and re-submits.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)
	return "validation failed: " + strings.Join(parts, "; ")
}

// FieldError builds a single-field rejection.
func FieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// ledgerEntry is one candidate payment, normalized from either the
// record or the edit request.
type ledgerEntry struct {
	PaidAmount      decimal.Decimal
	Method          entity.PaymentMethod
	InstallmentDate *time.Time
	PaymentLink     string

	// first-payment pricing; nil means not supplied
	NetPrice  *decimal.Decimal
	SellPrice *decimal.Decimal

	HasBankFile        bool
	HasInvoiceFile     bool
	HasVoucherOriginal bool
}

// ledgerResult carries the derived numbers out of a successful
// validation.
type ledgerResult struct {
	EffectiveSell  decimal.Decimal
	RemainingAfter decimal.Decimal
	IsFirst        bool
}

// validateLedgerEntry runs the payment validation pipeline for a
// candidate against a booking and its existing payment stream, in
// order; the first failing rule aborts with a field-scoped error and
// no mutation.
//
// existing must be the booking's payments oldest first. For an edit,
// pass the stream minus the payment being edited and set editedIsFirst
// when that payment is the price-setting one.
func validateLedgerEntry(booking *entity.HotelBooking, existing []entity.Payment, in *ledgerEntry, editedIsFirst bool) (*ledgerResult, error) {
	isFirst := len(existing) == 0 || editedIsFirst

	if isFirst {
		missing := map[string]string{}
		if in.NetPrice == nil {
			missing["net_price"] = "net price is required on the first payment"
		}
		if in.SellPrice == nil {
			missing["sell_price"] = "sell price is required on the first payment"
		}
		if !in.HasInvoiceFile {
			missing["invoice_file"] = "invoice attachment is required on the first payment"
		}
		if !in.HasVoucherOriginal {
			missing["voucher_original"] = "original voucher attachment is required on the first payment"
		}
		if len(missing) > 0 {
			return nil, &ValidationError{Fields: missing}
		}
	} else {
		// Pricing is locked by the first payment; these fields are not
		// accepted at all once payments exist.
		locked := map[string]string{}
		if in.NetPrice != nil {
			locked["net_price"] = "net price is set by the first payment and cannot be supplied again"
		}
		if in.SellPrice != nil {
			locked["sell_price"] = "sell price is set by the first payment and cannot be supplied again"
		}
		if in.HasInvoiceFile {
			locked["invoice_file"] = "invoice attachment belongs to the first payment only"
		}
		if in.HasVoucherOriginal {
			locked["voucher_original"] = "original voucher attachment belongs to the first payment only"
		}
		if len(locked) > 0 {
			return nil, &ValidationError{Fields: locked}
		}
	}

	effectiveSell := booking.Sell
	if isFirst {
		effectiveSell = *in.SellPrice
	}

	totalPaidBefore := decimal.Zero
	for i := range existing {
		totalPaidBefore = totalPaidBefore.Add(existing[i].PaidAmount)
	}
	remainingBefore := effectiveSell.Sub(totalPaidBefore)

	if !in.PaidAmount.IsPositive() {
		return nil, FieldError("paid_amount", "paid amount must be greater than zero")
	}
	if in.PaidAmount.GreaterThan(remainingBefore) {
		return nil, FieldError("paid_amount", fmt.Sprintf("paid amount exceeds remaining balance (%s)", remainingBefore.StringFixed(2)))
	}

	totalPaidAfter := totalPaidBefore.Add(in.PaidAmount)
	if totalPaidAfter.LessThan(effectiveSell) {
		if in.InstallmentDate == nil {
			return nil, FieldError("installment_date", "installment due date is required while the balance is not settled")
		}
		if booking.Checkin != nil && in.InstallmentDate.After(*booking.Checkin) {
			return nil, FieldError("installment_date", "installment due date must be on or before the check-in date")
		}
	}

	switch in.Method {
	case entity.MethodLink:
		if in.PaymentLink == "" {
			return nil, FieldError("payment_link", "payment link is required for link payments")
		}
	case entity.MethodBank, entity.MethodCash:
		if !in.HasBankFile {
			return nil, FieldError("bank_file", "receipt attachment is required for bank or cash payments")
		}
	}

	return &ledgerResult{
		EffectiveSell:  effectiveSell,
		RemainingAfter: effectiveSell.Sub(totalPaidAfter),
		IsFirst:        isFirst,
	}, nil
}
