package store

import "errors"

// Connection errors returned by [Open].
var (
	// ErrUnsupportedDSN is returned when the DSN selects neither PostgreSQL
	// nor SQLite.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")

	// ErrOpeningDatabase is returned when the driver cannot open or reach
	// the database.
	ErrOpeningDatabase = errors.New("error opening database")
)

// Low-level database operation errors. These are returned (or wrapped) by
// [DB] methods when a SQL-level operation fails.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
