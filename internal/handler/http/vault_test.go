// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/rvanwijk/pii-guard/internal/store"
	"github.com/rvanwijk/pii-guard/internal/validators"
	"github.com/rvanwijk/pii-guard/models"
)

// ─────────────────────────────────────────────
// listVaultEntries
// ─────────────────────────────────────────────

// TestListVaultEntries_QueryFilter verifies that person_id and category
// query parameters reach the service as the list filter.
func TestListVaultEntries_QueryFilter(t *testing.T) {
	h, svcs := newTestHandler(t)

	svcs.vault.EXPECT().
		ListEntries(gomock.Any(), "p1", models.CategoryBankAccount).
		Return([]models.VaultEntry{{ID: "e1", PersonID: "p1", Category: models.CategoryBankAccount}}, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/vault/entries?person_id=p1&category=bank_account", nil)
	rec := httptest.NewRecorder()

	h.listVaultEntries(rec, r)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.VaultEntry
	decodeBody(t, rec.Body.Bytes(), &got)
	require.Len(t, got, 1)
	assert.Equal(t, models.CategoryBankAccount, got[0].Category)
}

func TestListVaultEntries_NoFilter(t *testing.T) {
	h, svcs := newTestHandler(t)

	svcs.vault.EXPECT().
		ListEntries(gomock.Any(), "", models.Category("")).
		Return(nil, nil)

	r := httptest.NewRequest(http.MethodGet, "/api/vault/entries", nil)
	rec := httptest.NewRecorder()

	h.listVaultEntries(rec, r)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListVaultEntries_UnknownCategory(t *testing.T) {
	h, svcs := newTestHandler(t)

	svcs.vault.EXPECT().
		ListEntries(gomock.Any(), "", models.Category("sterrenbeeld")).
		Return(nil, fmt.Errorf("%w: %q", validators.ErrUnknownCategory, "sterrenbeeld"))

	r := httptest.NewRequest(http.MethodGet, "/api/vault/entries?category=sterrenbeeld", nil)
	rec := httptest.NewRecorder()

	h.listVaultEntries(rec, r)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown category")
}

// ─────────────────────────────────────────────
// removeVaultEntry
// ─────────────────────────────────────────────

func TestRemoveVaultEntry_NoContent(t *testing.T) {
	h, svcs := newTestHandler(t)

	svcs.vault.EXPECT().RemoveEntry(gomock.Any(), "e1").Return(nil)

	r := httptest.NewRequest(http.MethodDelete, "/api/vault/entries/e1", nil)
	r = withURLParam(r, "entryID", "e1")
	rec := httptest.NewRecorder()

	h.removeVaultEntry(rec, r)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRemoveVaultEntry_NotFound(t *testing.T) {
	h, svcs := newTestHandler(t)

	svcs.vault.EXPECT().RemoveEntry(gomock.Any(), "missing").Return(store.ErrVaultEntryNotFound)

	r := httptest.NewRequest(http.MethodDelete, "/api/vault/entries/missing", nil)
	r = withURLParam(r, "entryID", "missing")
	rec := httptest.NewRecorder()

	h.removeVaultEntry(rec, r)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
