package store

import (
	"context"

	"github.com/MKhiriev/meal-tracker/models"
)

// Store is the persistence capability required by the services. All backends
// (Supabase, Postgres, SQLite) implement it.
type Store interface {
	InsertReceipt(ctx context.Context, receipt models.ReceiptIn) (models.Receipt, error)
	ListReceipts(ctx context.Context, month models.MonthRange) ([]models.Receipt, error)
	ListReceiptsByMeal(ctx context.Context, month models.MonthRange, meal models.MealType) ([]models.Receipt, error)

	InsertAdvance(ctx context.Context, advance models.AdvanceIn) (models.Advance, error)
	ListAdvances(ctx context.Context, month models.MonthRange) ([]models.Advance, error)

	// SumAmounts returns the server-side sum of the amount column of table
	// over the month range. Backends that cannot aggregate remotely return
	// ErrAggregationUnavailable.
	SumAmounts(ctx context.Context, table string, month models.MonthRange) (float64, error)

	Ping(ctx context.Context) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
