package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rvanwijk/pii-guard/internal/utils"
	"github.com/rvanwijk/pii-guard/models"
)

func (h *Handler) listVaultEntries(w http.ResponseWriter, r *http.Request) {
	personID := r.URL.Query().Get("person_id")
	category := models.Category(r.URL.Query().Get("category"))

	entries, err := h.services.Vault.ListEntries(r.Context(), personID, category)
	if err != nil {
		respondError(w, r, err, "listing vault entries failed")
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) removeVaultEntry(w http.ResponseWriter, r *http.Request) {
	entryID := chi.URLParam(r, "entryID")

	if err := h.services.Vault.RemoveEntry(r.Context(), entryID); err != nil {
		respondError(w, r, err, "removing vault entry failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
