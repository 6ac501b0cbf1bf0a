package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification says whether a failed database operation could succeed
// on a later attempt. The store performs no retries itself; the result is
// attached to error logs so operators can tell transient failures from
// permanent ones.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations, data exceptions, and syntax errors.
	NonRetryable ErrorClassification = iota

	// Retryable covers transient conditions: connection loss, serialization
	// failures, deadlock rollbacks.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] by inspecting the
// pgconn error code returned by the pgx driver.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Errors that do not unwrap to a
// *pgconn.PgError are NonRetryable.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}

	switch pgErr.Code {
	// Class 08, connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure:
		return Retryable

	// Class 40, transaction rollback
	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable

	// Class 57, operator intervention
	case pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}
