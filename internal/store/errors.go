package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a user or
	// change an email fails because another account already uses the same
	// normalized email address.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup expected to match a user
	// record produces an empty result.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrResetTokenNotFound is returned when no reset token matches the
	// given (token, email) pair, or the matching token has expired.
	ErrResetTokenNotFound = errors.New("reset token not found")

	// ErrSubmissionNotFound is returned when a query targets an archived
	// submission that does not exist.
	ErrSubmissionNotFound = errors.New("submission was not found")

	// ErrSubmissionNotSaved is returned when an INSERT of a submission
	// completes without error but affects zero rows.
	ErrSubmissionNotSaved = errors.New("submission was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// the submission repository when a SQL-level operation fails before any
// domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan submission row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan submission rows")
)
