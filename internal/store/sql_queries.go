package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/meal-tracker/models"
)

const (
	receiptColumns = "id, date, meal_type, amount, merchant, note, image_url, created_at"
	advanceColumns = "id, date, amount, note, created_at"
)

// buildInsertReceiptQuery builds an INSERT with a RETURNING clause so the
// caller receives the canonical database representation of the new row.
func buildInsertReceiptQuery(builder sq.StatementBuilderType, receipt models.ReceiptIn) (string, []any, error) {
	return builder.
		Insert("receipts").
		Columns("date", "meal_type", "amount", "merchant", "note", "image_url").
		Values(receipt.Date.String(), string(receipt.MealType), float64(receipt.Amount), receipt.Merchant, receipt.Note, receipt.ImageURL).
		Suffix("RETURNING " + receiptColumns).
		ToSql()
}

func buildInsertAdvanceQuery(builder sq.StatementBuilderType, advance models.AdvanceIn) (string, []any, error) {
	return builder.
		Insert("advances").
		Columns("date", "amount", "note").
		Values(advance.Date.String(), float64(advance.Amount), advance.Note).
		Suffix("RETURNING " + advanceColumns).
		ToSql()
}

// buildListQuery builds a month-scoped SELECT ordered by date ascending.
// The range is half-open: date >= start AND date < end.
func buildListQuery(builder sq.StatementBuilderType, table, columns string, month models.MonthRange) (string, []any, error) {
	return builder.
		Select(columns).
		From(table).
		Where(sq.GtOrEq{"date": month.StartDate().String()}).
		Where(sq.Lt{"date": month.EndDate().String()}).
		OrderBy("date ASC").
		ToSql()
}

func buildListByMealQuery(builder sq.StatementBuilderType, month models.MonthRange, meal models.MealType) (string, []any, error) {
	return builder.
		Select(receiptColumns).
		From("receipts").
		Where(sq.Eq{"meal_type": string(meal)}).
		Where(sq.GtOrEq{"date": month.StartDate().String()}).
		Where(sq.Lt{"date": month.EndDate().String()}).
		OrderBy("date ASC").
		ToSql()
}

// buildSumQuery builds the month-scoped amount aggregation. COALESCE keeps
// the result a number when the range matches no rows.
func buildSumQuery(builder sq.StatementBuilderType, table string, month models.MonthRange) (string, []any, error) {
	return builder.
		Select("COALESCE(SUM(amount), 0)").
		From(table).
		Where(sq.GtOrEq{"date": month.StartDate().String()}).
		Where(sq.Lt{"date": month.EndDate().String()}).
		ToSql()
}
