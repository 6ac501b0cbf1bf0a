package http

import (
	"net/http"

	"github.com/MKhiriev/meal-tracker/internal/logger"
	"github.com/MKhiriev/meal-tracker/internal/utils"
	"github.com/MKhiriev/meal-tracker/models"
)

const rootMessage = "Meal Receipts Tracker API running"

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, models.Message{Message: rootMessage}, http.StatusOK)
}

// testConnection reports which backend was selected, whether the Supabase
// credentials are present, and whether the store answers a live ping.
func (h *Handler) testConnection(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	status := models.BackendStatus{
		Backend:        "none",
		SupabaseURLSet: h.supabase.URL != "",
		SupabaseKeySet: h.supabase.APIKey() != "",
	}

	if h.storages == nil || h.storages.Store == nil {
		status.Error = msgStoreNotConfigured
		_, _ = utils.WriteJSON(w, status, http.StatusOK)
		return
	}

	status.Backend = h.storages.Backend
	if err := h.storages.Store.Ping(r.Context()); err != nil {
		log.Err(err).Str("func", "*Handler.testConnection").Msg("store ping failed")
		status.Error = err.Error()
	} else {
		status.Connected = true
	}

	_, _ = utils.WriteJSON(w, status, http.StatusOK)
}
