package service

import (
	"github.com/MKhiriev/meal-tracker/internal/logger"
	"github.com/MKhiriev/meal-tracker/internal/store"
)

type Services struct {
	ReceiptService ReceiptService
	AdvanceService AdvanceService
	ReportService  ReportService
}

// NewServices wires the service layer to the selected storage backend.
// Returns nil when no store is configured; handlers treat a nil Services as
// "store not configured" and fail data requests without any I/O.
func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	if storages == nil || storages.Store == nil {
		return nil
	}

	return &Services{
		ReceiptService: NewReceiptService(storages.Store, logger),
		AdvanceService: NewAdvanceService(storages.Store, logger),
		ReportService:  NewReportService(storages.Store, logger),
	}
}
