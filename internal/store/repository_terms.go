// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package store

import (
	"context"
	"fmt"

	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/models"
)

type termRepository struct {
	*DB
	logger *logger.Logger
}

// NewTermRepository wires a TermRepository on top of an open connection.
func NewTermRepository(db *DB, log *logger.Logger) *termRepository {
	return &termRepository{DB: db, logger: log}
}

// SaveTerms inserts the given terms and fills in their assigned positions.
// A single term goes out as one statement; an import batch runs inside a
// transaction so a duplicate halfway through leaves the registry untouched.
func (r *termRepository) SaveTerms(ctx context.Context, terms ...*models.RedactionTerm) error {
	log := logger.FromContext(ctx)

	switch len(terms) {
	case 0:
		return nil
	case 1:
		term := terms[0]
		err := r.DB.QueryRowContext(ctx, saveTerm,
			term.ID,
			term.Label,
			term.Original,
			term.Replacement,
			term.CreatedAt,
		).Scan(&term.Position)
		if err != nil {
			if r.DB.isUniqueViolation(err) {
				return ErrTermAlreadyExists
			}
			log.Error().Err(err).Str("func", "termRepository.SaveTerms").Msg("error inserting redaction term")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Str("func", "termRepository.SaveTerms").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, saveTerm)
	if err != nil {
		log.Error().Err(err).Str("func", "termRepository.SaveTerms").Msg("error preparing statement")
		return fmt.Errorf("%w: %w", ErrPreparingStatement, err)
	}
	defer stmt.Close()

	for i, term := range terms {
		err = stmt.QueryRowContext(ctx,
			term.ID,
			term.Label,
			term.Original,
			term.Replacement,
			term.CreatedAt,
		).Scan(&term.Position)
		if err != nil {
			if r.DB.isUniqueViolation(err) {
				return fmt.Errorf("term save error at index %d: %w", i, ErrTermAlreadyExists)
			}
			log.Error().Err(err).Str("func", "termRepository.SaveTerms").Msg("error executing statement")
			return fmt.Errorf("term save error at index %d: %w", i, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
		}
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Str("func", "termRepository.SaveTerms").Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *termRepository) ListTerms(ctx context.Context) ([]models.RedactionTerm, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, listTerms)
	if err != nil {
		log.Error().Err(err).Str("func", "termRepository.ListTerms").Msg("error executing term listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	terms := make([]models.RedactionTerm, 0)
	for rows.Next() {
		var term models.RedactionTerm
		err = rows.Scan(
			&term.ID,
			&term.Label,
			&term.Original,
			&term.Replacement,
			&term.Position,
			&term.CreatedAt,
		)
		if err != nil {
			log.Error().Err(err).Str("func", "termRepository.ListTerms").Msg("error scanning terms")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		terms = append(terms, term)
	}
	if err = rows.Err(); err != nil {
		log.Error().Err(err).Str("func", "termRepository.ListTerms").Msg("error iterating terms")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return terms, nil
}

func (r *termRepository) DeleteTerm(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteTerm, id)
	if err != nil {
		log.Error().Err(err).Str("func", "termRepository.DeleteTerm").Msg("error deleting redaction term")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("func", "termRepository.DeleteTerm").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrTermNotFound
	}

	return nil
}
