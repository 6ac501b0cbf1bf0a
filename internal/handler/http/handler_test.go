// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"

	"github.com/MKhiriev/meal-tracker/internal/config"
	"github.com/MKhiriev/meal-tracker/internal/logger"
	"github.com/MKhiriev/meal-tracker/internal/service"
	"github.com/MKhiriev/meal-tracker/internal/store"
	"github.com/MKhiriev/meal-tracker/models"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockReceiptService implements service.ReceiptService for unit tests.
// Each method field can be overridden per test case.
type mockReceiptService struct {
	createReceiptFn func(ctx context.Context, receipt models.ReceiptIn) (models.Receipt, error)
	listReceiptsFn  func(ctx context.Context, month models.MonthRange) ([]models.Receipt, error)
}

func (m *mockReceiptService) CreateReceipt(ctx context.Context, receipt models.ReceiptIn) (models.Receipt, error) {
	return m.createReceiptFn(ctx, receipt)
}

func (m *mockReceiptService) ListReceipts(ctx context.Context, month models.MonthRange) ([]models.Receipt, error) {
	return m.listReceiptsFn(ctx, month)
}

// mockAdvanceService implements service.AdvanceService for unit tests.
type mockAdvanceService struct {
	createAdvanceFn func(ctx context.Context, advance models.AdvanceIn) (models.Advance, error)
	listAdvancesFn  func(ctx context.Context, month models.MonthRange) ([]models.Advance, error)
}

func (m *mockAdvanceService) CreateAdvance(ctx context.Context, advance models.AdvanceIn) (models.Advance, error) {
	return m.createAdvanceFn(ctx, advance)
}

func (m *mockAdvanceService) ListAdvances(ctx context.Context, month models.MonthRange) ([]models.Advance, error) {
	return m.listAdvancesFn(ctx, month)
}

// mockReportService implements service.ReportService for unit tests.
type mockReportService struct {
	monthlySummaryFn func(ctx context.Context, month models.MonthRange) (models.MonthSummary, error)
	exportCSVFn      func(ctx context.Context, month models.MonthRange) (string, error)
}

func (m *mockReportService) MonthlySummary(ctx context.Context, month models.MonthRange) (models.MonthSummary, error) {
	return m.monthlySummaryFn(ctx, month)
}

func (m *mockReportService) ExportCSV(ctx context.Context, month models.MonthRange) (string, error) {
	return m.exportCSVFn(ctx, month)
}

// pingOnlyStore implements store.Store but only supports Ping; the /test
// endpoint never touches the data methods.
type pingOnlyStore struct {
	pingErr error
}

func (s *pingOnlyStore) InsertReceipt(context.Context, models.ReceiptIn) (models.Receipt, error) {
	panic("not implemented")
}

func (s *pingOnlyStore) ListReceipts(context.Context, models.MonthRange) ([]models.Receipt, error) {
	panic("not implemented")
}

func (s *pingOnlyStore) ListReceiptsByMeal(context.Context, models.MonthRange, models.MealType) ([]models.Receipt, error) {
	panic("not implemented")
}

func (s *pingOnlyStore) InsertAdvance(context.Context, models.AdvanceIn) (models.Advance, error) {
	panic("not implemented")
}

func (s *pingOnlyStore) ListAdvances(context.Context, models.MonthRange) ([]models.Advance, error) {
	panic("not implemented")
}

func (s *pingOnlyStore) SumAmounts(context.Context, string, models.MonthRange) (float64, error) {
	panic("not implemented")
}

func (s *pingOnlyStore) Ping(context.Context) error { return s.pingErr }

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler with the given services and no storage
// backend attached.
func newTestHandler(svcs *service.Services) *Handler {
	return NewHandler(svcs, nil, config.Supabase{}, logger.Nop())
}

// newHandlerWithStore builds a Handler wired to a selected backend, as the
// /test endpoint sees it.
func newHandlerWithStore(backend string, st store.Store, supabase config.Supabase) *Handler {
	return NewHandler(nil, &store.Storages{Store: st, Backend: backend}, supabase, logger.Nop())
}
