package service

import (
	"context"

	"github.com/MKhiriev/meal-tracker/models"
)

// mockStore is a hand-written store.Store test double. Each method delegates
// to the matching function field; unset fields make the test fail loudly by
// panicking.
type mockStore struct {
	insertReceipt      func(ctx context.Context, receipt models.ReceiptIn) (models.Receipt, error)
	listReceipts       func(ctx context.Context, month models.MonthRange) ([]models.Receipt, error)
	listReceiptsByMeal func(ctx context.Context, month models.MonthRange, meal models.MealType) ([]models.Receipt, error)
	insertAdvance      func(ctx context.Context, advance models.AdvanceIn) (models.Advance, error)
	listAdvances       func(ctx context.Context, month models.MonthRange) ([]models.Advance, error)
	sumAmounts         func(ctx context.Context, table string, month models.MonthRange) (float64, error)
	ping               func(ctx context.Context) error
}

func (m *mockStore) InsertReceipt(ctx context.Context, receipt models.ReceiptIn) (models.Receipt, error) {
	return m.insertReceipt(ctx, receipt)
}

func (m *mockStore) ListReceipts(ctx context.Context, month models.MonthRange) ([]models.Receipt, error) {
	return m.listReceipts(ctx, month)
}

func (m *mockStore) ListReceiptsByMeal(ctx context.Context, month models.MonthRange, meal models.MealType) ([]models.Receipt, error) {
	return m.listReceiptsByMeal(ctx, month, meal)
}

func (m *mockStore) InsertAdvance(ctx context.Context, advance models.AdvanceIn) (models.Advance, error) {
	return m.insertAdvance(ctx, advance)
}

func (m *mockStore) ListAdvances(ctx context.Context, month models.MonthRange) ([]models.Advance, error) {
	return m.listAdvances(ctx, month)
}

func (m *mockStore) SumAmounts(ctx context.Context, table string, month models.MonthRange) (float64, error) {
	return m.sumAmounts(ctx, table, month)
}

func (m *mockStore) Ping(ctx context.Context) error {
	return m.ping(ctx)
}

func receiptWith(date models.Date, meal models.MealType, amount models.Amount) models.Receipt {
	return models.Receipt{ReceiptIn: models.ReceiptIn{Date: date, MealType: meal, Amount: amount}}
}

func advanceWith(date models.Date, amount models.Amount) models.Advance {
	return models.Advance{AdvanceIn: models.AdvanceIn{Date: date, Amount: amount}}
}
