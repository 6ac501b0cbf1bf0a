package http

import (
	"net/http"

	"github.com/MKhiriev/meal-tracker/internal/logger"
	"github.com/MKhiriev/meal-tracker/internal/utils"
	"github.com/MKhiriev/meal-tracker/models"
)

func (h *Handler) monthlySummary(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	month, err := models.ParseMonth(r.URL.Query().Get("month"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.monthlySummary").Msg("invalid month query param")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.services.ReportService.MonthlySummary(r.Context(), month)
	if err != nil {
		log.Err(err).Str("func", "*Handler.monthlySummary").Msg("error computing monthly summary")
		respondError(w, err, "Failed to compute summary")
		return
	}

	_, _ = utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	month, err := models.ParseMonth(r.URL.Query().Get("month"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.exportCSV").Msg("invalid month query param")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	csv, err := h.services.ReportService.ExportCSV(r.Context(), month)
	if err != nil {
		log.Err(err).Str("func", "*Handler.exportCSV").Msg("error exporting csv")
		respondError(w, err, "Failed to export CSV")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csv))
}
