package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/meal-tracker/internal/config"
	"github.com/MKhiriev/meal-tracker/internal/logger"
)

// Storages bundles the selected store with the name of its backend.
type Storages struct {
	Store   Store
	Backend string
}

// NewStorages selects and constructs a storage backend from configuration.
// Priority order, first configured wins:
//
//  1. Supabase (SUPABASE_URL plus an API key)
//  2. Postgres (STORAGE_DB_DATABASE_URI)
//  3. SQLite (STORAGE_SQLITE_PATH)
//
// Returns [ErrStoreNotConfigured] when none of the three is configured;
// the caller decides whether to run without a store.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	switch {
	case cfg.Supabase.Configured():
		s, err := NewSupabaseStore(cfg.Supabase, cfg.Server.RequestTimeout, log)
		if err != nil {
			return nil, err
		}
		log.Info().Str("backend", "supabase").Msg("storage backend selected")
		return &Storages{Store: s, Backend: "supabase"}, nil

	case cfg.Storage.DB.DSN != "":
		db, err := NewConnectPostgres(ctx, cfg.Storage.DB, log)
		if err != nil {
			return nil, err
		}
		log.Info().Str("backend", "postgres").Msg("storage backend selected")
		return &Storages{Store: newSQLStore(db, sq.Dollar, log), Backend: "postgres"}, nil

	case cfg.Storage.SQLite.Path != "":
		db, err := NewConnectSQLite(ctx, cfg.Storage.SQLite, log)
		if err != nil {
			return nil, err
		}
		log.Info().Str("backend", "sqlite").Msg("storage backend selected")
		return &Storages{Store: newSQLStore(db, sq.Question, log), Backend: "sqlite"}, nil

	default:
		return nil, ErrStoreNotConfigured
	}
}
