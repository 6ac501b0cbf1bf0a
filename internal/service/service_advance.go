package service

import (
	"context"

	"github.com/MKhiriev/meal-tracker/internal/logger"
	"github.com/MKhiriev/meal-tracker/internal/store"
	"github.com/MKhiriev/meal-tracker/models"
)

type advanceService struct {
	store store.Store

	logger *logger.Logger
}

func NewAdvanceService(store store.Store, logger *logger.Logger) AdvanceService {
	return &advanceService{
		store:  store,
		logger: logger,
	}
}

// CreateAdvance validates the payload and persists it. Validation happens
// before any store call.
func (s *advanceService) CreateAdvance(ctx context.Context, advance models.AdvanceIn) (models.Advance, error) {
	if err := advance.Validate(); err != nil {
		return models.Advance{}, err
	}

	return s.store.InsertAdvance(ctx, advance)
}

func (s *advanceService) ListAdvances(ctx context.Context, month models.MonthRange) ([]models.Advance, error) {
	return s.store.ListAdvances(ctx, month)
}
