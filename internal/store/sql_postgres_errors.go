package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification says whether a failed database operation is worth
// another attempt.
type ErrorClassification int

const (
	// NonRetryable covers everything that will fail again the same way:
	// constraint violations, data exceptions, syntax errors, and any code
	// this classifier does not recognise.
	NonRetryable ErrorClassification = iota

	// Retryable covers transient conditions such as dropped connections,
	// serialization failures and deadlock rollbacks.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] by inspecting the
// SQLSTATE code the pgx driver attaches to its errors.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that do not unwrap to a
// *pgconn.PgError (including nil) are NonRetryable.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}

	return ClassifyPgError(pgErr)
}

// retryableCodes lists the SQLSTATE codes treated as transient: class 08
// (connection exceptions), class 40 (transaction rollback) and 57P03
// (cannot connect now). See
// https://www.postgresql.org/docs/current/errcodes-appendix.html.
var retryableCodes = map[string]struct{}{
	pgerrcode.ConnectionException:    {},
	pgerrcode.ConnectionDoesNotExist: {},
	pgerrcode.ConnectionFailure:      {},
	pgerrcode.TransactionRollback:    {},
	pgerrcode.SerializationFailure:   {},
	pgerrcode.DeadlockDetected:       {},
	pgerrcode.CannotConnectNow:       {},
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] by its
// SQLSTATE code. Unknown codes are NonRetryable, which errs on the side of
// surfacing the failure instead of hammering the database.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	if _, ok := retryableCodes[pgErr.Code]; ok {
		return Retryable
	}

	return NonRetryable
}
