package store

import (
	"database/sql"

	"github.com/MKhiriev/meal-tracker/internal/logger"
)

type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Retryable reports whether err is a transient failure worth retrying by the
// caller. Backends without a classifier (SQLite) treat every failure as
// permanent.
func (db *DB) Retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
