package handler

import (
	"github.com/MKhiriev/meal-tracker/internal/config"
	"github.com/MKhiriev/meal-tracker/internal/handler/http"
	"github.com/MKhiriev/meal-tracker/internal/logger"
	"github.com/MKhiriev/meal-tracker/internal/service"
	"github.com/MKhiriev/meal-tracker/internal/store"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, storages, cfg.Supabase, logger),
	}
}
