package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database operation should be
// retried or abandoned.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations, syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable means the operation may succeed on another attempt, e.g.
	// while the server is still starting.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL
// errors returned by the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Failures to establish a
// connection are retryable; server errors are mapped by [ClassifyPgError].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return Retryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] by its
// SQLSTATE code. See
// https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Connection exceptions (class 08), transaction rollbacks (class 40) and
// cannot_connect_now (57P03) are retryable. Everything else is not.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection:
		return Retryable

	// Class 40: transaction rollback
	case pgerrcode.TransactionRollback, // 40000
		pgerrcode.SerializationFailure, // 40001
		pgerrcode.DeadlockDetected:     // 40P01
		return Retryable

	// Class 57: the server is starting up or shutting down
	case pgerrcode.CannotConnectNow, // 57P03
		pgerrcode.AdminShutdown:
		return Retryable
	}

	return NonRetryable
}
