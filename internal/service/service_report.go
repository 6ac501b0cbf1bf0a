// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/MKhiriev/meal-tracker/internal/logger"
	"github.com/MKhiriev/meal-tracker/internal/store"
	"github.com/MKhiriev/meal-tracker/models"
)

const csvHeader = "type,date,meal,amount,merchant,note"

// reportService computes monthly summaries and the CSV export. Totals are
// produced by an ordered list of aggregation strategies: remote first, then
// the client-side scan. The first usable result wins; only a failure of the
// last strategy fails the request.
type reportService struct {
	store       store.Store
	aggregators []Aggregator

	logger *logger.Logger
}

func NewReportService(store store.Store, logger *logger.Logger) ReportService {
	return &reportService{
		store: store,
		aggregators: []Aggregator{
			&remoteAggregator{store: store},
			&scanAggregator{store: store},
		},
		logger: logger,
	}
}

// MonthlySummary returns the month's totals rounded to two decimal places.
// Receipt and advance totals go through the aggregator chain; the lunch and
// dinner breakdowns always use the scan path over meal-filtered rows.
func (s *reportService) MonthlySummary(ctx context.Context, month models.MonthRange) (models.MonthSummary, error) {
	receiptsTotal, err := s.sumAmounts(ctx, models.Receipt{}.TableName(), month)
	if err != nil {
		return models.MonthSummary{}, err
	}

	advancesTotal, err := s.sumAmounts(ctx, models.Advance{}.TableName(), month)
	if err != nil {
		return models.MonthSummary{}, err
	}

	lunchTotal, err := s.sumByMeal(ctx, month, models.MealLunch)
	if err != nil {
		return models.MonthSummary{}, err
	}

	dinnerTotal, err := s.sumByMeal(ctx, month, models.MealDinner)
	if err != nil {
		return models.MonthSummary{}, err
	}

	return models.NewMonthSummary(month.String(), receiptsTotal, advancesTotal, lunchTotal, dinnerTotal), nil
}

// ExportCSV renders the month's receipts and advances as CSV text: a fixed
// header, receipts first, then advances, each date-ascending. Advances leave
// the meal and merchant columns empty. Free-text fields are written as-is,
// without quoting.
func (s *reportService) ExportCSV(ctx context.Context, month models.MonthRange) (string, error) {
	receipts, err := s.store.ListReceipts(ctx, month)
	if err != nil {
		return "", err
	}

	advances, err := s.store.ListAdvances(ctx, month)
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(receipts)+len(advances)+1)
	lines = append(lines, csvHeader)

	for _, receipt := range receipts {
		lines = append(lines, strings.Join([]string{
			"receipt",
			receipt.Date.String(),
			string(receipt.MealType),
			formatAmount(receipt.Amount),
			stringOrEmpty(receipt.Merchant),
			stringOrEmpty(receipt.Note),
		}, ","))
	}

	for _, advance := range advances {
		lines = append(lines, strings.Join([]string{
			"advance",
			advance.Date.String(),
			"",
			formatAmount(advance.Amount),
			"",
			stringOrEmpty(advance.Note),
		}, ","))
	}

	return strings.Join(lines, "\n") + "\n", nil
}

// sumAmounts walks the aggregator chain and returns the first usable result.
// Failures of non-final strategies are logged and skipped.
func (s *reportService) sumAmounts(ctx context.Context, table string, month models.MonthRange) (float64, error) {
	log := logger.FromContext(ctx)

	var lastErr error
	for _, aggregator := range s.aggregators {
		sum, err := aggregator.SumAmounts(ctx, table, month)
		if err == nil {
			return sum, nil
		}

		log.Debug().Err(err).Str("table", table).Msg("aggregation strategy failed, trying next")
		lastErr = err
	}

	return 0, lastErr
}

func (s *reportService) sumByMeal(ctx context.Context, month models.MonthRange, meal models.MealType) (float64, error) {
	receipts, err := s.store.ListReceiptsByMeal(ctx, month, meal)
	if err != nil {
		return 0, err
	}

	var sum float64
	for _, receipt := range receipts {
		sum += float64(receipt.Amount)
	}
	return sum, nil
}

func formatAmount(a models.Amount) string {
	return strconv.FormatFloat(float64(a), 'f', -1, 64)
}

func stringOrEmpty(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
