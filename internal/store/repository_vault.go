// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/models"
)

type vaultRepository struct {
	*DB
	logger *logger.Logger
}

// NewVaultRepository wires a VaultRepository on top of an open connection.
func NewVaultRepository(db *DB, log *logger.Logger) *vaultRepository {
	return &vaultRepository{DB: db, logger: log}
}

func (r *vaultRepository) GetMeta(ctx context.Context) (models.VaultMeta, error) {
	log := logger.FromContext(ctx)

	var meta models.VaultMeta
	err := r.DB.QueryRowContext(ctx, getVaultMeta).
		Scan(&meta.Salt, &meta.EncryptedDEK, &meta.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultMeta{}, ErrVaultMetaNotFound
	}
	if err != nil {
		log.Error().Err(err).Str("func", "vaultRepository.GetMeta").Msg("error loading vault key material")
		return models.VaultMeta{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return meta, nil
}

func (r *vaultRepository) SaveMeta(ctx context.Context, meta models.VaultMeta) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, saveVaultMeta, meta.Salt, meta.EncryptedDEK, meta.CreatedAt)
	if err != nil {
		// The id=1 primary key makes a second initialization collide here.
		if r.DB.isUniqueViolation(err) {
			return ErrVaultMetaExists
		}
		log.Error().Err(err).Str("func", "vaultRepository.SaveMeta").Msg("error saving vault key material")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *vaultRepository) NextPlaceholderSeq(ctx context.Context, category models.Category) (int64, error) {
	log := logger.FromContext(ctx)

	var seq int64
	err := r.DB.QueryRowContext(ctx, nextPlaceholderSeq, string(category)).Scan(&seq)
	if err != nil && r.DB.retryable(err) {
		log.Warn().Err(err).Str("func", "vaultRepository.NextPlaceholderSeq").Msg("transient database error, retrying sequence bump")
		err = r.DB.QueryRowContext(ctx, nextPlaceholderSeq, string(category)).Scan(&seq)
	}
	if err != nil {
		log.Error().Err(err).Str("func", "vaultRepository.NextPlaceholderSeq").Msg("error advancing placeholder sequence")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return seq, nil
}

func (r *vaultRepository) CreateEntry(ctx context.Context, entry *models.VaultEntry) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, createVaultEntry,
		entry.ID,
		nullIfEmpty(entry.PersonID),
		string(entry.Category),
		entry.EncryptedValue,
		entry.ValueIndex,
		entry.Placeholder,
		entry.Confidence,
		nullIfEmpty(entry.SourceDocumentID),
		entry.UseCount,
		entry.CreatedAt,
		entry.UpdatedAt,
	)
	if err != nil {
		// Lost a race on (category, value_index): another goroutine stored
		// the same value first. The caller re-reads and keeps its token.
		if r.DB.isUniqueViolation(err) {
			return ErrVaultEntryExists
		}
		log.Error().Err(err).Str("func", "vaultRepository.CreateEntry").Msg("error inserting vault entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *vaultRepository) FindByIndex(ctx context.Context, category models.Category, valueIndex string) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, findEntryByIndex, string(category), valueIndex)

	entry, err := scanVaultEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultEntry{}, ErrVaultEntryNotFound
	}
	if err != nil {
		log.Error().Err(err).Str("func", "vaultRepository.FindByIndex").Msg("error scanning vault entry")
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

func (r *vaultRepository) GetByPlaceholder(ctx context.Context, placeholder string) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, getEntryByPlaceholder, placeholder)

	entry, err := scanVaultEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultEntry{}, ErrVaultEntryNotFound
	}
	if err != nil {
		log.Error().Err(err).Str("func", "vaultRepository.GetByPlaceholder").Msg("error scanning vault entry")
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

func (r *vaultRepository) ListEntries(ctx context.Context, filter VaultFilter) ([]models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery(ctx, filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error().Err(err).Str("func", "vaultRepository.ListEntries").Msg("error executing vault listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.VaultEntry, 0)
	for rows.Next() {
		entry, err := scanVaultEntry(rows)
		if err != nil {
			log.Error().Err(err).Str("func", "vaultRepository.ListEntries").Msg("error scanning vault entries")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		log.Error().Err(err).Str("func", "vaultRepository.ListEntries").Msg("error iterating vault entries")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (r *vaultRepository) BindPerson(ctx context.Context, entryID, personID string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, bindEntryPerson, entryID, personID)
	if err != nil {
		log.Error().Err(err).Str("func", "vaultRepository.BindPerson").Msg("error binding vault entry to person")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("func", "vaultRepository.BindPerson").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrVaultEntryNotFound
	}

	return nil
}

func (r *vaultRepository) IncrementUseCount(ctx context.Context, entryIDs ...string) error {
	log := logger.FromContext(ctx)

	if len(entryIDs) == 0 {
		return nil
	}

	// single bump goes out as a plain statement
	if len(entryIDs) == 1 {
		if _, err := r.DB.ExecContext(ctx, incrementUseCount, entryIDs[0]); err != nil {
			log.Error().Err(err).Str("func", "vaultRepository.IncrementUseCount").Msg("error bumping use count")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return nil
	}

	// several entries are bumped inside one transaction so a half-applied
	// anonymization pass does not skew the counters
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Str("func", "vaultRepository.IncrementUseCount").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, incrementUseCount)
	if err != nil {
		log.Error().Err(err).Str("func", "vaultRepository.IncrementUseCount").Msg("error preparing statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for _, id := range entryIDs {
		if _, err = stmt.ExecContext(ctx, id); err != nil {
			log.Error().Err(err).Str("func", "vaultRepository.IncrementUseCount").Msg("error executing statement")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Str("func", "vaultRepository.IncrementUseCount").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *vaultRepository) DeleteEntry(ctx context.Context, entryID string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteVaultEntry, entryID)
	if err != nil {
		log.Error().Err(err).Str("func", "vaultRepository.DeleteEntry").Msg("error deleting vault entry")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("func", "vaultRepository.DeleteEntry").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrVaultEntryNotFound
	}

	return nil
}

// scanVaultEntry maps one result row onto the model, folding the nullable
// person and source document columns back to empty strings.
func scanVaultEntry(s interface{ Scan(dest ...any) error }) (models.VaultEntry, error) {
	var (
		entry    models.VaultEntry
		personID sql.NullString
		sourceID sql.NullString
		category string
	)

	err := s.Scan(
		&entry.ID,
		&personID,
		&category,
		&entry.EncryptedValue,
		&entry.ValueIndex,
		&entry.Placeholder,
		&entry.Confidence,
		&sourceID,
		&entry.UseCount,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return models.VaultEntry{}, err
	}

	entry.PersonID = personID.String
	entry.SourceDocumentID = sourceID.String
	entry.Category = models.Category(category)

	return entry, nil
}

// nullIfEmpty stores empty strings as SQL NULL so partial unique indexes
// and foreign keys behave.
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
