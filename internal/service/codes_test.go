package service

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var codesNow = time.Date(2026, 2, 15, 10, 30, 0, 0, time.UTC)

func TestGenerateVoucherCode(t *testing.T) {
	t.Run("uppercases the booking ref", func(t *testing.T) {
		code := GenerateVoucherCode(VoucherPrefixHotel, "bk-99", codesNow)
		assert.Regexp(t, regexp.MustCompile(`^H20260215BK-99\d{4}$`), code)
	})

	t.Run("falls back to NOREF when the ref is blank", func(t *testing.T) {
		code := GenerateVoucherCode(VoucherPrefixTransfer, "  ", codesNow)
		assert.Regexp(t, regexp.MustCompile(`^T20260215NOREF\d{4}$`), code)
	})

	t.Run("per-kind prefixes", func(t *testing.T) {
		assert.Equal(t, "H", GenerateVoucherCode(VoucherPrefixHotel, "X", codesNow)[:1])
		assert.Equal(t, "T", GenerateVoucherCode(VoucherPrefixTransfer, "X", codesNow)[:1])
		assert.Equal(t, "V", GenerateVoucherCode(VoucherPrefixVisa, "X", codesNow)[:1])
	})
}

func TestGenerateCardCode(t *testing.T) {
	code := GenerateCardCode(codesNow)
	assert.Regexp(t, regexp.MustCompile(`^U20260215EMP[A-Z0-9]{7}$`), code)

	// the random suffix should make consecutive codes differ
	assert.NotEqual(t, code, GenerateCardCode(codesNow))
}

func TestGenerateFlightCode(t *testing.T) {
	t.Run("uppercases PNR and truncates the employee to five chars", func(t *testing.T) {
		code := GenerateFlightCode("abc123", "John Smith", codesNow)
		assert.Equal(t, "F20260215ABC123JOHNS", code)
	})

	t.Run("short employee name is kept whole", func(t *testing.T) {
		code := GenerateFlightCode("XY9", "Amy", codesNow)
		assert.Equal(t, "F20260215XY9AMY", code)
	})
}
