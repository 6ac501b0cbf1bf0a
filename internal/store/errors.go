package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStoreNotConfigured is returned when no storage backend has been
	// configured. Handlers translate it into a server error naming the
	// missing configuration.
	ErrStoreNotConfigured = errors.New("store is not configured")

	// ErrNothingInserted is returned when an INSERT completes without error
	// but the backend reports no created row, indicating that nothing was
	// actually persisted.
	ErrNothingInserted = errors.New("nothing was inserted")

	// ErrAggregationUnavailable is returned when the remote sum_amounts
	// aggregation cannot produce a usable result (function not installed,
	// transport failure, or malformed response). Callers fall back to
	// client-side summation.
	ErrAggregationUnavailable = errors.New("remote aggregation unavailable")
)

// Remote-store errors produced by mapping HTTP response statuses from the
// Supabase PostgREST interface.
var (
	// ErrBadRequest maps HTTP 400 responses (malformed filter or body).
	ErrBadRequest = errors.New("bad request")

	// ErrUnauthorized maps HTTP 401 responses (missing or invalid API key).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden maps HTTP 403 responses (key lacks table permissions).
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound maps HTTP 404 responses (unknown table or function).
	ErrNotFound = errors.New("not found")

	// ErrInternalServerError maps HTTP 5xx responses from the remote store.
	ErrInternalServerError = errors.New("internal server error")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the SQL store when an operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
