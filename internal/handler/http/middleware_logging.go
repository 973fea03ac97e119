package http

import (
	"net/http"
	"time"

	"github.com/rvanwijk/pii-guard/internal/logger"
)

// withLogging emits one access-log line per request. Request and response
// bodies are deliberately never logged: they may contain the very values the
// agent exists to keep out of logs.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
