// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruben van Wijk

package http

import (
	"net/http"

	"github.com/rvanwijk/pii-guard/internal/utils"
	"github.com/rvanwijk/pii-guard/models"
)

func (h *Handler) anonymize(w http.ResponseWriter, r *http.Request) {
	var req models.AnonymizeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.services.Pipeline.Anonymize(r.Context(), req)
	if err != nil {
		respondError(w, r, err, "anonymization failed")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) rehydrate(w http.ResponseWriter, r *http.Request) {
	var req models.RehydrateRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.services.Pipeline.Rehydrate(r.Context(), req)
	if err != nil {
		respondError(w, r, err, "rehydration failed")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var req models.SendMessageRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.services.Pipeline.SendMessage(r.Context(), req)
	if err != nil {
		respondError(w, r, err, "chat message failed")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
