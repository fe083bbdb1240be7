package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUsernameAlreadyTaken is returned when an attempt to register a new
	// user fails because the username is held by another account.
	ErrUsernameAlreadyTaken = errors.New("username already taken")

	// ErrNoUserWasFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDeskNotFound is returned when a query or update targets a desk
	// (identified by desk_id and user_id) that does not exist in the database.
	ErrDeskNotFound = errors.New("desk was not found")

	// ErrSlugAlreadyExists is returned when creating or renaming a desk would
	// collide with another desk slug of the same user.
	ErrSlugAlreadyExists = errors.New("desk slug already exists")

	// ErrItemNotFound is returned when a query or update targets an item
	// (identified by item_id and user_id) that does not exist in the database.
	ErrItemNotFound = errors.New("item was not found")

	// ErrPendingKeyNotFound is returned when a user has no unexpired pending
	// recovery key awaiting its one-time reveal.
	ErrPendingKeyNotFound = errors.New("pending recovery key was not found")
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

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
