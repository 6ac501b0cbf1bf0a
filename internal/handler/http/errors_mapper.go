package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/meal-tracker/models"
)

// errorStatusMap holds the errors callers are at fault for. Everything not
// listed here is a store or server failure and maps to 500.
var errorStatusMap = map[error]int{
	models.ErrInvalidDate:     http.StatusBadRequest,
	models.ErrInvalidMealType: http.StatusBadRequest,
	models.ErrInvalidAmount:   http.StatusBadRequest,
	models.ErrInvalidMonth:    http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError writes err with its mapped status. Client errors carry their
// own message; server errors use serverMessage so store internals never leak
// into the response body.
func respondError(w http.ResponseWriter, err error, serverMessage string) {
	status := statusFromError(err)

	message := serverMessage
	if status < http.StatusInternalServerError {
		message = err.Error()
	}

	http.Error(w, message, status)
}
