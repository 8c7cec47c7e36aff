package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeSavepointTx records savepoint traffic so retry behavior can be
// asserted without a database.
type fakeSavepointTx struct {
	savepoints int
	rollbacks  int
}

func (f *fakeSavepointTx) SavePoint(name string) *gorm.DB {
	f.savepoints++
	return &gorm.DB{}
}

func (f *fakeSavepointTx) RollbackTo(name string) *gorm.DB {
	f.rollbacks++
	return &gorm.DB{}
}

func TestCreateWithRetry(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_booking_cards_ub_code"}

	t.Run("retries past duplicate-key failures", func(t *testing.T) {
		tx := &fakeSavepointTx{}
		calls := 0
		err := createWithRetry(tx, "ub_code", 5, func() error {
			calls++
			if calls < 3 {
				return dup
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
		assert.Equal(t, 3, tx.savepoints)
		// each failed attempt is rolled back so the transaction stays usable
		assert.Equal(t, 2, tx.rollbacks)
	})

	t.Run("gives up after the attempt budget", func(t *testing.T) {
		tx := &fakeSavepointTx{}
		calls := 0
		err := createWithRetry(tx, "ub_code", 5, func() error {
			calls++
			return dup
		})
		assert.ErrorIs(t, err, dup)
		assert.Equal(t, 5, calls)
		assert.Equal(t, 5, tx.rollbacks)
	})

	t.Run("other errors abort immediately", func(t *testing.T) {
		tx := &fakeSavepointTx{}
		boom := errors.New("connection reset")
		calls := 0
		err := createWithRetry(tx, "ub_code", 5, func() error {
			calls++
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
		assert.Zero(t, tx.rollbacks)
	})

	t.Run("duplicate on a different constraint is not retried", func(t *testing.T) {
		tx := &fakeSavepointTx{}
		calls := 0
		err := createWithRetry(tx, "voucher_code", 5, func() error {
			calls++
			return dup
		})
		assert.ErrorIs(t, err, dup)
		assert.Equal(t, 1, calls)
	})
}

func TestParseDate(t *testing.T) {
	t.Run("empty input yields nil", func(t *testing.T) {
		d, err := parseDate("")
		require.NoError(t, err)
		assert.Nil(t, d)
	})

	t.Run("valid date", func(t *testing.T) {
		d, err := parseDate("2026-03-05")
		require.NoError(t, err)
		require.NotNil(t, d)
		assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), *d)
	})

	t.Run("wrong layout", func(t *testing.T) {
		_, err := parseDate("05/03/2026")
		assert.ErrorIs(t, err, ErrInvalidDateFormat)
	})
}

func TestIsDuplicateKeyError(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "idx_booking_cards_ub_code"}

	assert.True(t, isDuplicateKeyError(dup, "ub_code"))
	assert.True(t, isDuplicateKeyError(fmt.Errorf("create card: %w", dup), "ub_code"))
	assert.False(t, isDuplicateKeyError(dup, "voucher_code"))
	assert.False(t, isDuplicateKeyError(&pgconn.PgError{Code: "23503", ConstraintName: "idx_booking_cards_ub_code"}, "ub_code"))
	assert.False(t, isDuplicateKeyError(nil, "ub_code"))
}
