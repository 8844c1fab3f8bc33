package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registering a user whose email
	// is already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup.
	ErrUserNotFound = errors.New("user was not found")

	// ErrDeviceNotFound is returned when the device does not exist or belongs
	// to another user.
	ErrDeviceNotFound = errors.New("device was not found")

	// ErrSessionNotFound is returned when no session matches a token
	// fingerprint.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrClipboardItemNotFound is returned when the item is missing, expired
	// or owned by another user. The three cases are indistinguishable to
	// callers.
	ErrClipboardItemNotFound = errors.New("clipboard item was not found")

	// ErrSyncRecordNotFound is returned when no ledger row exists for the
	// (clipboard, device) pair.
	ErrSyncRecordNotFound = errors.New("sync record was not found")

	// ErrUnsupportedDSN is returned when the DSN scheme names no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when row iteration fails mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
