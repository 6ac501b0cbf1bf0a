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
	router.Use(h.withCORS)

	router.Get("/", h.root)
	router.Get("/test", h.testConnection)

	// data-touching routes go through the storage availability gate
	router.Route("/api", func(r chi.Router) {
		r.Use(h.requireStore)

		r.Post("/receipt", h.createReceipt)
		r.Get("/receipts", h.listReceipts)
		r.Post("/advance", h.createAdvance)
		r.Get("/advances", h.listAdvances)
		r.Get("/summary", h.monthlySummary)
		r.Get("/export.csv", h.exportCSV)
	})

	return router
}
