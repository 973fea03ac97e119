package store

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/models"
)

func newTestPersonRepo(t *testing.T) (*personRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &personRepository{
		DB:     &DB{DB: db, logger: l, dialect: dialectPostgres},
		logger: l,
	}
	return repo, mock, db
}

func TestCreatePerson_Success(t *testing.T) {
	repo, mock, db := newTestPersonRepo(t)
	defer db.Close()

	now := time.Now()
	person := &models.Person{
		ID:           "p-1",
		DisplayName:  "Jan Jansen",
		Relationship: models.RelationshipSelf,
		HouseholdID:  "h-1",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec("INSERT INTO persons").
		WithArgs(person.ID, person.DisplayName, person.Relationship, person.HouseholdID, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CreatePerson(testContext(), person); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreatePerson_NullHousehold(t *testing.T) {
	repo, mock, db := newTestPersonRepo(t)
	defer db.Close()

	now := time.Now()
	person := &models.Person{
		ID:           "p-2",
		DisplayName:  "Sofie de Boer",
		Relationship: models.RelationshipPartner,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec("INSERT INTO persons").
		WithArgs(person.ID, person.DisplayName, person.Relationship, nil, now, now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CreatePerson(testContext(), person); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetPerson_NotFound(t *testing.T) {
	repo, mock, db := newTestPersonRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM persons").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetPerson(testContext(), "missing")
	if !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
}

func TestGetPerson_Success(t *testing.T) {
	repo, mock, db := newTestPersonRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(personColumns).
		AddRow("p-1", "Jan Jansen", models.RelationshipSelf, nil, now, now)

	mock.ExpectQuery("SELECT (.+) FROM persons").
		WithArgs("p-1").
		WillReturnRows(rows)

	person, err := repo.GetPerson(testContext(), "p-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if person.DisplayName != "Jan Jansen" {
		t.Errorf("expected display name %q, got %q", "Jan Jansen", person.DisplayName)
	}
	if person.HouseholdID != "" {
		t.Errorf("expected empty household id, got %q", person.HouseholdID)
	}
}

func TestListPersons_HouseholdFilter(t *testing.T) {
	repo, mock, db := newTestPersonRepo(t)
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(personColumns).
		AddRow("p-1", "Jan Jansen", models.RelationshipSelf, "h-1", now, now).
		AddRow("p-2", "Sofie de Boer", models.RelationshipPartner, "h-1", now, now)

	mock.ExpectQuery("SELECT (.+) FROM persons WHERE household_id").
		WithArgs("h-1").
		WillReturnRows(rows)

	persons, err := repo.ListPersons(testContext(), "h-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(persons) != 2 {
		t.Fatalf("expected 2 persons, got %d", len(persons))
	}
	if persons[0].DisplayName != "Jan Jansen" {
		t.Errorf("expected first person Jan Jansen, got %q", persons[0].DisplayName)
	}
}

func TestDeletePerson_NotFound(t *testing.T) {
	repo, mock, db := newTestPersonRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM persons").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeletePerson(testContext(), "missing")
	if !errors.Is(err, ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
}
