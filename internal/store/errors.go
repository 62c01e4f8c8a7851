package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when the case-insensitive email
	// uniqueness constraint rejects a new account.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no account matches the lookup or the
	// referenced owner does not exist.
	ErrUserNotFound = errors.New("user was not found")

	ErrCategoryAlreadyExists = errors.New("category already exists")
	ErrCategoryNotFound      = errors.New("category was not found")

	// ErrInventoryNameTaken is returned when the owner already has an
	// inventory with the same name.
	ErrInventoryNameTaken = errors.New("inventory name is already taken")
	ErrInventoryNotFound  = errors.New("inventory was not found")

	ErrFieldAlreadyExists = errors.New("field already defined on inventory")

	ErrCRMCredentialNotFound = errors.New("crm credential was not found")

	// ErrDuplicate is returned for unique violations on constraints that have
	// no dedicated sentinel.
	ErrDuplicate = errors.New("duplicate record")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
