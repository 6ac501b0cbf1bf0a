package service

import (
	"context"

	"github.com/MKhiriev/meal-tracker/internal/logger"
	"github.com/MKhiriev/meal-tracker/internal/store"
	"github.com/MKhiriev/meal-tracker/models"
)

type receiptService struct {
	store store.Store

	logger *logger.Logger
}

func NewReceiptService(store store.Store, logger *logger.Logger) ReceiptService {
	return &receiptService{
		store:  store,
		logger: logger,
	}
}

// CreateReceipt validates the payload (normalizing the meal type to
// lowercase) and persists it. Validation happens before any store call.
func (s *receiptService) CreateReceipt(ctx context.Context, receipt models.ReceiptIn) (models.Receipt, error) {
	if err := receipt.Validate(); err != nil {
		return models.Receipt{}, err
	}

	return s.store.InsertReceipt(ctx, receipt)
}

func (s *receiptService) ListReceipts(ctx context.Context, month models.MonthRange) ([]models.Receipt, error) {
	return s.store.ListReceipts(ctx, month)
}
