package http

import (
	"net/http"

	"github.com/rvanwijk/pii-guard/internal/utils"
	"github.com/rvanwijk/pii-guard/models"
)

func (h *Handler) processDocument(w http.ResponseWriter, r *http.Request) {
	var req models.ProcessDocumentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	doc := models.ParsedDocument{
		Filename:    req.Filename,
		TextContent: req.TextContent,
	}

	processed, err := h.services.Pipeline.ProcessDocument(r.Context(), doc, req.Conversation)
	if err != nil {
		respondError(w, r, err, "document processing failed")
		return
	}

	utils.WriteJSON(w, processed, http.StatusOK)
}

func (h *Handler) processBatch(w http.ResponseWriter, r *http.Request) {
	var req models.BatchDocumentsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.services.Pipeline.ProcessBatch(r.Context(), req)
	if err != nil {
		respondError(w, r, err, "batch processing failed")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
