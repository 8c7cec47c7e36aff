package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// savepointTx is the slice of *gorm.DB the retry helper needs.
type savepointTx interface {
	SavePoint(name string) *gorm.DB
	RollbackTo(name string) *gorm.DB
}

// createWithRetry runs fn up to attempts times, retrying only on a
// duplicate-key violation of the named constraint. Each attempt is
// wrapped in a savepoint: a failed INSERT aborts the surrounding
// Postgres transaction, so the savepoint must be rolled back before
// the next attempt can run.
func createWithRetry(tx savepointTx, constraint string, attempts int, fn func() error) error {
	const name = "before_insert"
	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if spErr := tx.SavePoint(name).Error; spErr != nil {
			return spErr
		}
		err = fn()
		if err == nil {
			return nil
		}
		if !isDuplicateKeyError(err, constraint) {
			return err
		}
		if rbErr := tx.RollbackTo(name).Error; rbErr != nil {
			return rbErr
		}
	}
	return err
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// parseDate parses an optional YYYY-MM-DD string into a date pointer.
// Empty input is valid and yields nil.
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	return &t, nil
}
