package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/meal-tracker/internal/store"
	"github.com/MKhiriev/meal-tracker/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid date", models.ErrInvalidDate, http.StatusBadRequest},
		{"invalid meal type", models.ErrInvalidMealType, http.StatusBadRequest},
		{"invalid amount", models.ErrInvalidAmount, http.StatusBadRequest},
		{"invalid month", models.ErrInvalidMonth, http.StatusBadRequest},
		{"wrapped validation error", fmt.Errorf("create receipt: %w", models.ErrInvalidAmount), http.StatusBadRequest},
		{"nothing inserted", store.ErrNothingInserted, http.StatusInternalServerError},
		{"query failure", store.ErrExecutingQuery, http.StatusInternalServerError},
		{"aggregation unavailable", store.ErrAggregationUnavailable, http.StatusInternalServerError},
		{"unknown error", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestRespondError_ClientErrorKeepsMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	respondError(rec, models.ErrInvalidAmount, "Failed to insert receipt")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "amount must be greater than 0")
}

func TestRespondError_ServerErrorUsesFallbackMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	respondError(rec, store.ErrScanningRow, "Failed to insert receipt")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to insert receipt")
	assert.NotContains(t, rec.Body.String(), store.ErrScanningRow.Error())
}
