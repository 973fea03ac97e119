package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/models"
)

type personRepository struct {
	*DB
	logger *logger.Logger
}

// NewPersonRepository wires a PersonRepository on top of an open connection.
func NewPersonRepository(db *DB, log *logger.Logger) *personRepository {
	return &personRepository{DB: db, logger: log}
}

func (r *personRepository) CreatePerson(ctx context.Context, person *models.Person) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, createPerson,
		person.ID,
		person.DisplayName,
		person.Relationship,
		nullIfEmpty(person.HouseholdID),
		person.CreatedAt,
		person.UpdatedAt,
	)
	if err != nil {
		log.Error().Err(err).Str("func", "personRepository.CreatePerson").Msg("error inserting person")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *personRepository) GetPerson(ctx context.Context, id string) (models.Person, error) {
	log := logger.FromContext(ctx)

	person, err := scanPerson(r.DB.QueryRowContext(ctx, getPerson, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Person{}, ErrPersonNotFound
	}
	if err != nil {
		log.Error().Err(err).Str("func", "personRepository.GetPerson").Msg("error scanning person")
		return models.Person{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return person, nil
}

func (r *personRepository) ListPersons(ctx context.Context, householdID string) ([]models.Person, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPersonsQuery(ctx, householdID)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error().Err(err).Str("func", "personRepository.ListPersons").Msg("error executing person listing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	persons := make([]models.Person, 0)
	for rows.Next() {
		person, err := scanPerson(rows)
		if err != nil {
			log.Error().Err(err).Str("func", "personRepository.ListPersons").Msg("error scanning persons")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		persons = append(persons, person)
	}
	if err = rows.Err(); err != nil {
		log.Error().Err(err).Str("func", "personRepository.ListPersons").Msg("error iterating persons")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return persons, nil
}

func (r *personRepository) DeletePerson(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deletePerson, id)
	if err != nil {
		log.Error().Err(err).Str("func", "personRepository.DeletePerson").Msg("error deleting person")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Error().Err(err).Str("func", "personRepository.DeletePerson").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrPersonNotFound
	}

	return nil
}

func scanPerson(s interface{ Scan(dest ...any) error }) (models.Person, error) {
	var (
		person      models.Person
		householdID sql.NullString
	)

	err := s.Scan(
		&person.ID,
		&person.DisplayName,
		&person.Relationship,
		&householdID,
		&person.CreatedAt,
		&person.UpdatedAt,
	)
	if err != nil {
		return models.Person{}, err
	}

	person.HouseholdID = householdID.String

	return person, nil
}
