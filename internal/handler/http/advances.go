package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/meal-tracker/internal/logger"
	"github.com/MKhiriev/meal-tracker/internal/utils"
	"github.com/MKhiriev/meal-tracker/models"
)

func (h *Handler) createAdvance(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var advance models.AdvanceIn
	if err := json.NewDecoder(r.Body).Decode(&advance); err != nil {
		log.Err(err).Str("func", "*Handler.createAdvance").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.AdvanceService.CreateAdvance(r.Context(), advance)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createAdvance").Msg("error creating advance")
		respondError(w, err, "Failed to insert advance")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listAdvances(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	month, err := models.ParseMonth(r.URL.Query().Get("month"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAdvances").Msg("invalid month query param")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	advances, err := h.services.AdvanceService.ListAdvances(r.Context(), month)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listAdvances").Msg("error listing advances")
		respondError(w, err, "Failed to list advances")
		return
	}

	_, _ = utils.WriteJSON(w, advances, http.StatusOK)
}
