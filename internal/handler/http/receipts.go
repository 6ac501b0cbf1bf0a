package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/meal-tracker/internal/logger"
	"github.com/MKhiriev/meal-tracker/internal/utils"
	"github.com/MKhiriev/meal-tracker/models"
)

func (h *Handler) createReceipt(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var receipt models.ReceiptIn
	if err := json.NewDecoder(r.Body).Decode(&receipt); err != nil {
		log.Err(err).Str("func", "*Handler.createReceipt").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.ReceiptService.CreateReceipt(r.Context(), receipt)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createReceipt").Msg("error creating receipt")
		respondError(w, err, "Failed to insert receipt")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listReceipts(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	month, err := models.ParseMonth(r.URL.Query().Get("month"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.listReceipts").Msg("invalid month query param")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	receipts, err := h.services.ReceiptService.ListReceipts(r.Context(), month)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listReceipts").Msg("error listing receipts")
		respondError(w, err, "Failed to list receipts")
		return
	}

	_, _ = utils.WriteJSON(w, receipts, http.StatusOK)
}
