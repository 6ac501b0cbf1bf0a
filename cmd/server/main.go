package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/MKhiriev/meal-tracker/internal/config"
	"github.com/MKhiriev/meal-tracker/internal/handler"
	"github.com/MKhiriev/meal-tracker/internal/logger"
	"github.com/MKhiriev/meal-tracker/internal/server"
	"github.com/MKhiriev/meal-tracker/internal/service"
	"github.com/MKhiriev/meal-tracker/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// a missing .env file is not an error; the environment may be set directly
	_ = godotenv.Load()

	log := logger.NewLogger("meal-tracker")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	// the process starts even without a store; data endpoints then answer
	// with the configuration error until credentials are supplied
	storages, err := store.NewStorages(context.Background(), cfg, log)
	if err != nil {
		log.Warn().Err(err).Msg("no storage backend available, data endpoints disabled")
		storages = nil
	}

	services := service.NewServices(storages, log)
	handlers := handler.NewHandlers(services, storages, cfg, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
