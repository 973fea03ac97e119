package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/rvanwijk/pii-guard/internal/logger"
)

// builder produces $N placeholders, matching the constants in sql_queries.go.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var vaultEntryColumns = []string{
	"id",
	"person_id",
	"category",
	"value_encrypted",
	"value_index",
	"placeholder",
	"confidence",
	"source_document_id",
	"use_count",
	"created_at",
	"updated_at",
}

var personColumns = []string{
	"id",
	"display_name",
	"relationship",
	"household_id",
	"created_at",
	"updated_at",
}

// buildListEntriesQuery assembles the vault listing query from the optional
// filter fields. An empty filter lists everything, newest first.
func buildListEntriesQuery(ctx context.Context, filter VaultFilter) (string, []any, error) {
	log := logger.FromContext(ctx)

	q := builder.
		Select(vaultEntryColumns...).
		From("vault_entries").
		OrderBy("created_at DESC")

	if filter.PersonID != "" {
		q = q.Where(sq.Eq{"person_id": filter.PersonID})
	}
	if filter.Category != "" {
		q = q.Where(sq.Eq{"category": string(filter.Category)})
	}
	if len(filter.Placeholders) > 0 {
		q = q.Where(sq.Eq{"placeholder": filter.Placeholders})
	}

	query, args, err := q.ToSql()
	if err != nil {
		log.Error().Err(err).Str("func", "buildListEntriesQuery").Msg("error building vault listing query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildListPersonsQuery lists persons, optionally scoped to one household.
func buildListPersonsQuery(ctx context.Context, householdID string) (string, []any, error) {
	log := logger.FromContext(ctx)

	q := builder.
		Select(personColumns...).
		From("persons").
		OrderBy("display_name")

	if householdID != "" {
		q = q.Where(sq.Eq{"household_id": householdID})
	}

	query, args, err := q.ToSql()
	if err != nil {
		log.Error().Err(err).Str("func", "buildListPersonsQuery").Msg("error building person listing query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
