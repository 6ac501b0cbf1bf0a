package service

import (
	"context"

	"github.com/MKhiriev/meal-tracker/models"
)

type ReceiptService interface {
	CreateReceipt(ctx context.Context, receipt models.ReceiptIn) (models.Receipt, error)
	ListReceipts(ctx context.Context, month models.MonthRange) ([]models.Receipt, error)
}

type AdvanceService interface {
	CreateAdvance(ctx context.Context, advance models.AdvanceIn) (models.Advance, error)
	ListAdvances(ctx context.Context, month models.MonthRange) ([]models.Advance, error)
}

type ReportService interface {
	MonthlySummary(ctx context.Context, month models.MonthRange) (models.MonthSummary, error)
	ExportCSV(ctx context.Context, month models.MonthRange) (string, error)
}

// Aggregator is a single strategy for summing the amount column of a table
// over a month range. The report service holds an ordered list of them and
// uses the first that yields a usable result.
type Aggregator interface {
	SumAmounts(ctx context.Context, table string, month models.MonthRange) (float64, error)
}
