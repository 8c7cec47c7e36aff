package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// Voucher code prefixes per booking kind
const (
	VoucherPrefixHotel    = "H"
	VoucherPrefixTransfer = "T"
	VoucherPrefixVisa     = "V"
	VoucherPrefixFlight   = "F"
)

const cardCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateVoucherCode builds a voucher code of the form
// <prefix><YYYYMMDD><UPPER(ref or NOREF)><4 random digits>. Generated
// once on first save; never regenerated after assignment.
func GenerateVoucherCode(prefix, bookingRef string, now time.Time) string {
	ref := strings.ToUpper(strings.TrimSpace(bookingRef))
	if ref == "" {
		ref = "NOREF"
	}
	return fmt.Sprintf("%s%s%s%s", prefix, now.Format("20060102"), ref, randomDigits(4))
}

// GenerateCardCode builds a booking-card code U<YYYYMMDD>EMP<7 random
// alphanumerics>. Collisions are handled by the caller retrying against
// the store's uniqueness constraint.
func GenerateCardCode(now time.Time) string {
	return fmt.Sprintf("U%sEMP%s", now.Format("20060102"), randomString(cardCodeAlphabet, 7))
}

// GenerateFlightCode builds F<YYYYMMDD><UPPER(PNR)><first 5 chars of
// the employee name, uppercased>.
func GenerateFlightCode(pnr, employee string, now time.Time) string {
	emp := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(employee), " ", ""))
	if len(emp) > 5 {
		emp = emp[:5]
	}
	return fmt.Sprintf("F%s%s%s", now.Format("20060102"), strings.ToUpper(pnr), emp)
}

func randomDigits(n int) string {
	return randomString("0123456789", n)
}

func randomString(alphabet string, n int) string {
	max := big.NewInt(int64(len(alphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand only fails when the platform source is broken
			idx = big.NewInt(int64(i) % int64(len(alphabet)))
		}
		b[i] = alphabet[idx.Int64()]
	}
	return string(b)
}
