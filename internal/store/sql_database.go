package store

import (
	"database/sql"

	"github.com/jackc/pgerrcode"

	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/migrations"
)

// Dialect names double as goose dialects and driver discriminators.
const (
	dialectPostgres = "pgx"
	dialectSQLite   = "sqlite3"
)

// DB wraps the raw connection pool together with the driver-specific
// error classifier and the dialect name the migrations need.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
	dialect            string
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Driver-specific implementations inspect the underlying error
// codes; a nil classificator means nothing is ever retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Migrate applies all pending schema migrations using the dialect the
// connection was opened with.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// retryable reports whether err is classified as transient by the
// driver-specific classifier. Used by repositories to retry one-shot
// statements once on connection hiccups.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// isUniqueViolation unifies duplicate-key detection across the two drivers.
func (db *DB) isUniqueViolation(err error) bool {
	switch db.dialect {
	case dialectPostgres:
		return postgresError(err) == pgerrcode.UniqueViolation
	case dialectSQLite:
		return sqliteUniqueViolation(err)
	}
	return false
}
