package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rvanwijk/pii-guard/internal/utils"
	"github.com/rvanwijk/pii-guard/models"
)

func (h *Handler) listTerms(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.Terms.ListTerms(r.Context()), http.StatusOK)
}

func (h *Handler) addTerm(w http.ResponseWriter, r *http.Request) {
	var req models.AddTermRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	term, err := h.services.Terms.AddTerm(r.Context(), req.Label, req.Value)
	if err != nil {
		respondError(w, r, err, "adding term failed")
		return
	}

	utils.WriteJSON(w, term, http.StatusCreated)
}

func (h *Handler) importTerms(w http.ResponseWriter, r *http.Request) {
	var req models.ImportTermsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	imported, err := h.services.Terms.ImportTerms(r.Context(), req.Text)
	if err != nil {
		respondError(w, r, err, "term import failed")
		return
	}

	utils.WriteJSON(w, models.ImportTermsResponse{Imported: imported}, http.StatusOK)
}

func (h *Handler) removeTerm(w http.ResponseWriter, r *http.Request) {
	position, err := strconv.Atoi(chi.URLParam(r, "position"))
	if err != nil {
		writeErrorBody(w, "term position must be an integer", http.StatusBadRequest)
		return
	}

	if err := h.services.Terms.RemoveTerm(r.Context(), position); err != nil {
		respondError(w, r, err, "removing term failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) clearTerms(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Terms.ClearTerms(r.Context()); err != nil {
		respondError(w, r, err, "clearing terms failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
