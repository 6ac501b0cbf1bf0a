package http

import (
	"net/http"

	"github.com/MKhiriev/meal-tracker/internal/logger"
)

// requireStore rejects data-touching requests before any store I/O when no
// storage backend was constructed at startup.
func (h *Handler) requireStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.services == nil {
			logger.FromRequest(r).Error().Str("func", "*Handler.requireStore").Msg("no storage backend configured")
			http.Error(w, msgStoreNotConfigured, http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r)
	})
}
