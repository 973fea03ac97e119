package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrPersonNotFound is returned when a query targets a household member
	// that does not exist in the database.
	ErrPersonNotFound = errors.New("person was not found")

	// ErrVaultEntryNotFound is returned when a lookup by placeholder or by
	// equality index matches no stored vault entry.
	ErrVaultEntryNotFound = errors.New("vault entry was not found")

	// ErrVaultEntryExists is returned when an insert collides with an entry
	// that already holds the same category and equality index. Callers
	// re-read by index and reuse the stored placeholder.
	ErrVaultEntryExists = errors.New("vault entry already exists")

	// ErrVaultMetaNotFound is returned when the key material row is absent,
	// meaning the vault has never been initialized on this database.
	ErrVaultMetaNotFound = errors.New("vault metadata was not found")

	// ErrVaultMetaExists is returned when initialization is attempted on a
	// database that already carries key material. Overwriting the wrapped
	// DEK would make every stored value permanently unreadable.
	ErrVaultMetaExists = errors.New("vault metadata already exists")

	// ErrTermNotFound is returned when a delete targets a custom redaction
	// term that does not exist.
	ErrTermNotFound = errors.New("redaction term was not found")

	// ErrTermAlreadyExists is returned when an insert collides with the
	// unique constraint on the term's original literal.
	ErrTermAlreadyExists = errors.New("redaction term already exists")
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

	// ErrPreparingStatement is returned when a SQL statement cannot be
	// prepared (e.g. syntax error or connection issue).
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when executing a prepared DML
	// statement (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
