package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Route("/api", func(r chi.Router) {
		r.Post("/anonymize", h.anonymize)
		r.Post("/rehydrate", h.rehydrate)
		r.Post("/chat/messages", h.sendMessage)

		r.Post("/documents/process", h.processDocument)
		r.Post("/documents/batch", h.processBatch)

		r.Post("/entities/resolve", h.resolveEntity)
		r.Post("/entities/confirm", h.confirmExtraction)

		r.Get("/persons", h.listPersons)
		r.Post("/persons", h.createPerson)

		r.Get("/vault/entries", h.listVaultEntries)
		r.Delete("/vault/entries/{entryID}", h.removeVaultEntry)

		r.Get("/terms", h.listTerms)
		r.Post("/terms", h.addTerm)
		r.Post("/terms/import", h.importTerms)
		r.Delete("/terms/{position}", h.removeTerm)
		r.Delete("/terms", h.clearTerms)

		r.Get("/version", h.getAppVersion)
	})

	router.Method("GET", "/metrics", h.metrics.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
