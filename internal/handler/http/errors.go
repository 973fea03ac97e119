package http

import (
	"encoding/json"
	"net/http"

	"github.com/rvanwijk/pii-guard/internal/logger"
	"github.com/rvanwijk/pii-guard/internal/utils"
	"github.com/rvanwijk/pii-guard/models"
)

// decodeJSON decodes the request body into dst. On malformed input it
// writes the 400 error body and returns false; the caller just returns.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		writeErrorBody(w, "invalid JSON was passed", http.StatusBadRequest)
		return false
	}
	return true
}

// respondError maps err to a status and writes the uniform error body.
// Internal errors keep their detail in the log only; client errors
// carry the sentinel text back to the shell.
func respondError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
		writeErrorBody(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Msg(msg)
	writeErrorBody(w, err.Error(), status)
}

func writeErrorBody(w http.ResponseWriter, message string, status int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
