package http

import (
	"net/http"

	"github.com/rvanwijk/pii-guard/internal/utils"
	"github.com/rvanwijk/pii-guard/models"
)

func (h *Handler) resolveEntity(w http.ResponseWriter, r *http.Request) {
	var req models.ResolveEntityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	matches, err := h.services.Entities.ResolveEntity(r.Context(), req.Name)
	if err != nil {
		respondError(w, r, err, "entity resolution failed")
		return
	}

	utils.WriteJSON(w, models.ResolveEntityResponse{Matches: matches}, http.StatusOK)
}

func (h *Handler) confirmExtraction(w http.ResponseWriter, r *http.Request) {
	var req models.ConfirmExtractionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.services.Entities.ConfirmAndStore(r.Context(), req)
	if err != nil {
		respondError(w, r, err, "extraction confirmation failed")
		return
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func (h *Handler) listPersons(w http.ResponseWriter, r *http.Request) {
	persons, err := h.services.Entities.ListPersons(r.Context())
	if err != nil {
		respondError(w, r, err, "listing persons failed")
		return
	}

	utils.WriteJSON(w, persons, http.StatusOK)
}

func (h *Handler) createPerson(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePersonRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	person, err := h.services.Entities.CreatePerson(r.Context(), req)
	if err != nil {
		respondError(w, r, err, "person creation failed")
		return
	}

	utils.WriteJSON(w, person, http.StatusCreated)
}
