package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrTransactionNotFound is returned when a query, update, or delete
	// targets a transaction (identified by id and session_id) that does not
	// exist in the database. A conditional UPDATE or DELETE matching zero
	// rows produces this error as well, so ownership by a different session
	// is indistinguishable from plain absence.
	ErrTransactionNotFound = errors.New("transaction was not found")

	// ErrTransactionNotSaved is returned when an INSERT completes without a
	// driver error but no row was actually persisted.
	ErrTransactionNotSaved = errors.New("transaction was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan transaction row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan transaction rows")
)
