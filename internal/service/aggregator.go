// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/meal-tracker/internal/store"
	"github.com/MKhiriev/meal-tracker/models"
)

// remoteAggregator delegates summation to the store backend, which for the
// hosted store means the sum_amounts database function. It fails with
// store.ErrAggregationUnavailable when the backend cannot aggregate.
type remoteAggregator struct {
	store store.Store
}

func (a *remoteAggregator) SumAmounts(ctx context.Context, table string, month models.MonthRange) (float64, error) {
	return a.store.SumAmounts(ctx, table, month)
}

// scanAggregator fetches the month's rows and sums their amounts in-process.
// It is the fallback when remote aggregation is unavailable and the only
// strategy used for meal-type breakdowns.
type scanAggregator struct {
	store store.Store
}

func (a *scanAggregator) SumAmounts(ctx context.Context, table string, month models.MonthRange) (float64, error) {
	switch table {
	case models.Receipt{}.TableName():
		receipts, err := a.store.ListReceipts(ctx, month)
		if err != nil {
			return 0, err
		}

		var sum float64
		for _, receipt := range receipts {
			sum += float64(receipt.Amount)
		}
		return sum, nil

	case models.Advance{}.TableName():
		advances, err := a.store.ListAdvances(ctx, month)
		if err != nil {
			return 0, err
		}

		var sum float64
		for _, advance := range advances {
			sum += float64(advance.Amount)
		}
		return sum, nil

	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTable, table)
	}
}
