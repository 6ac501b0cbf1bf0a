package http

import (
	"github.com/MKhiriev/meal-tracker/internal/config"
	"github.com/MKhiriev/meal-tracker/internal/logger"
	"github.com/MKhiriev/meal-tracker/internal/service"
	"github.com/MKhiriev/meal-tracker/internal/store"
)

type Handler struct {
	services *service.Services
	storages *store.Storages
	supabase config.Supabase

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. services may be nil when no storage
// backend is configured; the /api routes then fail with a configuration
// error instead of touching the store.
func NewHandler(services *service.Services, storages *store.Storages, supabase config.Supabase, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		storages: storages,
		supabase: supabase,
		logger:   logger,
	}
}
