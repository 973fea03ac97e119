// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package redaction

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/internal/store"
	"github.com/rvanwijk/pii-guard/internal/validators"
	"github.com/rvanwijk/pii-guard/models"
)

// ─────────────────────────────────────────────
// Mock: store.TermRepository
// ─────────────────────────────────────────────

// mockTermRepo mimics the store's position assignment: every saved term
// gets the next sequential position, like the SQL MAX(position)+1 path.
type mockTermRepo struct {
	saved    []models.RedactionTerm
	deleted  []string
	nextPos  int
	saveErr  error
	listErr  error
	preloads []models.RedactionTerm
}

func (m *mockTermRepo) SaveTerms(_ context.Context, terms ...*models.RedactionTerm) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	for _, term := range terms {
		term.Position = m.nextPos
		m.nextPos++
		m.saved = append(m.saved, *term)
	}
	return nil
}

func (m *mockTermRepo) ListTerms(_ context.Context) ([]models.RedactionTerm, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.preloads, nil
}

func (m *mockTermRepo) DeleteTerm(_ context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	return nil
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func newTestRegistry(t *testing.T, repo *mockTermRepo) *Registry {
	t.Helper()
	r, err := NewRegistry(testContext(), repo, logger.Nop())
	require.NoError(t, err)
	return r
}

// ─────────────────────────────────────────────
// AddTerm
// ─────────────────────────────────────────────

func TestRegistry_AddTerm(t *testing.T) {
	repo := &mockTermRepo{}
	r := newTestRegistry(t, repo)

	term, err := r.AddTerm(testContext(), "Company", "Acme Corp")
	require.NoError(t, err)

	assert.NotEmpty(t, term.ID)
	assert.Equal(t, "Acme Corp", term.Original)
	assert.Equal(t, Replacement("Company", "Acme Corp"), term.Replacement)
	assert.Equal(t, 0, term.Position)
	require.Len(t, r.Terms(), 1)
}

func TestRegistry_AddTerm_EmptyInputs(t *testing.T) {
	r := newTestRegistry(t, &mockTermRepo{})

	_, err := r.AddTerm(testContext(), "  ", "Acme Corp")
	require.ErrorIs(t, err, validators.ErrEmptyTermLabel)

	_, err = r.AddTerm(testContext(), "Company", "")
	require.ErrorIs(t, err, validators.ErrEmptyTermValue)

	assert.Empty(t, r.Terms())
}

func TestRegistry_AddTerm_DuplicatePassesThrough(t *testing.T) {
	repo := &mockTermRepo{saveErr: store.ErrTermAlreadyExists}
	r := newTestRegistry(t, repo)

	_, err := r.AddTerm(testContext(), "Company", "Acme Corp")
	require.ErrorIs(t, err, store.ErrTermAlreadyExists)
	assert.Empty(t, r.Terms(), "failed saves must not enter the snapshot")
}

// ─────────────────────────────────────────────
// BulkImport
// ─────────────────────────────────────────────

func TestRegistry_BulkImport_SkipsMalformedLines(t *testing.T) {
	repo := &mockTermRepo{}
	r := newTestRegistry(t, repo)

	count, err := r.BulkImport(testContext(), "Company,Acme Corp\nbad line\nID,55512345")
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	require.Len(t, repo.saved, 2)
	assert.Equal(t, "Acme Corp", repo.saved[0].Original)
	assert.Equal(t, "55512345", repo.saved[1].Original)
}

func TestRegistry_BulkImport_SkipsEmptySidesAndBlankLines(t *testing.T) {
	r := newTestRegistry(t, &mockTermRepo{})

	count, err := r.BulkImport(testContext(), ",no label\nno value,\n\n  \nOk,Fine")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRegistry_BulkImport_SkipsDuplicates(t *testing.T) {
	repo := &mockTermRepo{preloads: []models.RedactionTerm{
		{ID: "t-0", Label: "Company", Original: "Acme Corp", Position: 0},
	}}
	r := newTestRegistry(t, repo)

	count, err := r.BulkImport(testContext(), "Company,Acme Corp\nCompany,Acme Corp\nProject,Zeus")
	require.NoError(t, err)

	assert.Equal(t, 1, count)
	require.Len(t, repo.saved, 1)
	assert.Equal(t, "Zeus", repo.saved[0].Original)
}

func TestRegistry_BulkImport_NothingToImport(t *testing.T) {
	repo := &mockTermRepo{}
	r := newTestRegistry(t, repo)

	count, err := r.BulkImport(testContext(), "garbage\nmore garbage")
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Empty(t, repo.saved)
}

// ─────────────────────────────────────────────
// RemoveTerm / Clear
// ─────────────────────────────────────────────

func TestRegistry_RemoveTerm_ByPosition(t *testing.T) {
	repo := &mockTermRepo{preloads: []models.RedactionTerm{
		{ID: "t-0", Original: "Acme Corp", Position: 0},
		{ID: "t-1", Original: "Zeus", Position: 1},
	}}
	r := newTestRegistry(t, repo)

	require.NoError(t, r.RemoveTerm(testContext(), 0))

	assert.Equal(t, []string{"t-0"}, repo.deleted)
	terms := r.Terms()
	require.Len(t, terms, 1)
	assert.Equal(t, "Zeus", terms[0].Original)
}

func TestRegistry_RemoveTerm_UnknownPosition(t *testing.T) {
	r := newTestRegistry(t, &mockTermRepo{})

	err := r.RemoveTerm(testContext(), 5)
	require.ErrorIs(t, err, store.ErrTermNotFound)
}

func TestRegistry_Clear(t *testing.T) {
	repo := &mockTermRepo{preloads: []models.RedactionTerm{
		{ID: "t-0", Original: "Acme Corp", Position: 0},
		{ID: "t-1", Original: "Zeus", Position: 1},
	}}
	r := newTestRegistry(t, repo)

	require.NoError(t, r.Clear(testContext()))

	assert.ElementsMatch(t, []string{"t-0", "t-1"}, repo.deleted)
	assert.Empty(t, r.Terms())
}

// ─────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────

func TestRegistry_LongestFirst(t *testing.T) {
	repo := &mockTermRepo{preloads: []models.RedactionTerm{
		{ID: "t-0", Original: "Acme", Position: 0},
		{ID: "t-1", Original: "Acme Corp International", Position: 1},
		{ID: "t-2", Original: "Acme Corp", Position: 2},
	}}
	r := newTestRegistry(t, repo)

	ordered := r.LongestFirst()
	require.Len(t, ordered, 3)
	assert.Equal(t, "Acme Corp International", ordered[0].Original)
	assert.Equal(t, "Acme Corp", ordered[1].Original)
	assert.Equal(t, "Acme", ordered[2].Original)
}

func TestRegistry_Terms_PositionOrder(t *testing.T) {
	repo := &mockTermRepo{preloads: []models.RedactionTerm{
		{ID: "t-1", Original: "Zeus", Position: 1},
		{ID: "t-0", Original: "Acme Corp", Position: 0},
	}}
	r := newTestRegistry(t, repo)

	terms := r.Terms()
	require.Len(t, terms, 2)
	assert.Equal(t, 0, terms[0].Position)
	assert.Equal(t, 1, terms[1].Position)
}
