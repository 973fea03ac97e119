// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rvanwijk/pii-guard/internal/store"
	"github.com/rvanwijk/pii-guard/internal/validators"
	"github.com/rvanwijk/pii-guard/models"
)

// ─────────────────────────────────────────────
// listTerms / addTerm
// ─────────────────────────────────────────────

func TestListTerms_Success(t *testing.T) {
	h, svcs := newTestHandler(t)

	svcs.terms.EXPECT().ListTerms(gomock.Any()).Return([]models.RedactionTerm{
		{ID: "t1", Label: "Werkgever", Original: "Acme BV", Replacement: "WERKGEV", Position: 1},
	})

	r := httptest.NewRequest(http.MethodGet, "/api/terms", nil)
	rec := httptest.NewRecorder()

	h.listTerms(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.RedactionTerm
	decodeBody(t, rec.Body.Bytes(), &got)
	require.Len(t, got, 1)
	assert.Equal(t, "Acme BV", got[0].Original)
}

func TestAddTerm_Created(t *testing.T) {
	h, svcs := newTestHandler(t)

	svcs.terms.EXPECT().AddTerm(gomock.Any(), "Werkgever", "Acme BV").
		Return(models.RedactionTerm{ID: "t1", Label: "Werkgever", Original: "Acme BV", Replacement: "WERKGEV"}, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/terms",
		strings.NewReader(`{"label":"Werkgever","value":"Acme BV"}`))
	rec := httptest.NewRecorder()

	h.addTerm(rec, r)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.RedactionTerm
	decodeBody(t, rec.Body.Bytes(), &got)
	assert.Equal(t, "WERKGEV", got.Replacement)
}

func TestAddTerm_EmptyValue(t *testing.T) {
	h, svcs := newTestHandler(t)

	svcs.terms.EXPECT().AddTerm(gomock.Any(), "Werkgever", "").
		Return(models.RedactionTerm{}, validators.ErrEmptyTermValue)

	r := httptest.NewRequest(http.MethodPost, "/api/terms",
		strings.NewReader(`{"label":"Werkgever","value":""}`))
	rec := httptest.NewRecorder()

	h.addTerm(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddTerm_Duplicate(t *testing.T) {
	h, svcs := newTestHandler(t)

	svcs.terms.EXPECT().AddTerm(gomock.Any(), "Werkgever", "Acme BV").
		Return(models.RedactionTerm{}, store.ErrTermAlreadyExists)

	r := httptest.NewRequest(http.MethodPost, "/api/terms",
		strings.NewReader(`{"label":"Werkgever","value":"Acme BV"}`))
	rec := httptest.NewRecorder()

	h.addTerm(rec, r)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

// ─────────────────────────────────────────────
// importTerms
// ─────────────────────────────────────────────

func TestImportTerms_CountsImported(t *testing.T) {
	h, svcs := newTestHandler(t)

	text := "Werkgever,Acme BV\nProject,Noordwind\n"
	svcs.terms.EXPECT().ImportTerms(gomock.Any(), text).Return(2, nil)

	r := httptest.NewRequest(http.MethodPost, "/api/terms/import",
		strings.NewReader(jsonBody(t, models.ImportTermsRequest{Text: text})))
	rec := httptest.NewRecorder()

	h.importTerms(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.ImportTermsResponse
	decodeBody(t, rec.Body.Bytes(), &got)
	assert.Equal(t, 2, got.Imported)
}

// ─────────────────────────────────────────────
// removeTerm / clearTerms
// ─────────────────────────────────────────────

func TestRemoveTerm_NoContent(t *testing.T) {
	h, svcs := newTestHandler(t)

	svcs.terms.EXPECT().RemoveTerm(gomock.Any(), 3).Return(nil)

	r := httptest.NewRequest(http.MethodDelete, "/api/terms/3", nil)
	r = withURLParam(r, "position", "3")
	rec := httptest.NewRecorder()

	h.removeTerm(rec, r)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

// TestRemoveTerm_NonNumericPosition verifies the 400 short-circuit; the
// service must never see the request.
func TestRemoveTerm_NonNumericPosition(t *testing.T) {
	h, _ := newTestHandler(t)

	r := httptest.NewRequest(http.MethodDelete, "/api/terms/abc", nil)
	r = withURLParam(r, "position", "abc")
	rec := httptest.NewRecorder()

	h.removeTerm(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "term position must be an integer")
}

func TestRemoveTerm_UnknownPosition(t *testing.T) {
	h, svcs := newTestHandler(t)

	svcs.terms.EXPECT().RemoveTerm(gomock.Any(), 42).Return(store.ErrTermNotFound)

	r := httptest.NewRequest(http.MethodDelete, "/api/terms/42", nil)
	r = withURLParam(r, "position", "42")
	rec := httptest.NewRecorder()

	h.removeTerm(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClearTerms_NoContent(t *testing.T) {
	h, svcs := newTestHandler(t)

	svcs.terms.EXPECT().ClearTerms(gomock.Any()).Return(nil)

	r := httptest.NewRequest(http.MethodDelete, "/api/terms", nil)
	rec := httptest.NewRecorder()

	h.clearTerms(rec, r)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
