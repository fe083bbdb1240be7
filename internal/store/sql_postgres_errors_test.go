package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	retryable := []string{
		pgerrcode.ConnectionException,
		pgerrcode.ConnectionFailure,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		pgerrcode.CannotConnectNow,
	}
	for _, code := range retryable {
		if got := c.Classify(&pgconn.PgError{Code: code}); got != Retryable {
			t.Errorf("code %s: expected Retryable, got %v", code, got)
		}
	}

	nonRetryable := []string{
		pgerrcode.UniqueViolation,
		pgerrcode.ForeignKeyViolation,
		pgerrcode.SyntaxError,
		pgerrcode.InvalidTextRepresentation,
		"XX999",
	}
	for _, code := range nonRetryable {
		if got := c.Classify(&pgconn.PgError{Code: code}); got != NonRetryable {
			t.Errorf("code %s: expected NonRetryable, got %v", code, got)
		}
	}
}

func TestPostgresErrorClassifier_UnwrapsWrappedErrors(t *testing.T) {
	c := NewPostgresErrorClassifier()

	wrapped := fmt.Errorf("%w: %w", ErrExecutingStatement, &pgconn.PgError{Code: pgerrcode.DeadlockDetected})
	if got := c.Classify(wrapped); got != Retryable {
		t.Errorf("expected Retryable for wrapped deadlock, got %v", got)
	}
}

func TestPostgresErrorClassifier_NonPgErrors(t *testing.T) {
	c := NewPostgresErrorClassifier()

	if got := c.Classify(nil); got != NonRetryable {
		t.Errorf("nil: expected NonRetryable, got %v", got)
	}
	if got := c.Classify(errors.New("db down")); got != NonRetryable {
		t.Errorf("plain error: expected NonRetryable, got %v", got)
	}
}
