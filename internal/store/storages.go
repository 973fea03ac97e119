package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/rvanwijk/pii-guard/internal/config"
	"github.com/rvanwijk/pii-guard/internal/logger"
)

// Storages bundles the repositories the services are built on.
type Storages struct {
	Vault   VaultRepository
	Persons PersonRepository
	Terms   TermRepository

	db *DB
}

// NewStorages opens the configured backend, applies pending migrations and
// constructs the repositories. The DSN scheme picks the driver: postgres URLs
// go to pgx, anything else is treated as a local SQLite file path.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("func", "NewStorages").Msg("creating new storages...")

	var (
		db  *DB
		err error
	)
	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("database migration error: %w", err)
	}

	return &Storages{
		Vault:   NewVaultRepository(db, log),
		Persons: NewPersonRepository(db, log),
		Terms:   NewTermRepository(db, log),
		db:      db,
	}, nil
}

// Close releases the underlying connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
