// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/meal-tracker/internal/logger"
	"github.com/MKhiriev/meal-tracker/models"
)

// sqlStore is the database/sql-backed implementation of [Store]. It is shared
// by the Postgres and SQLite backends; the placeholder format of the query
// builder is the only difference between them.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type sqlStore struct {
	db      *DB
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

// newSQLStore constructs a [Store] backed by the provided database connection.
// placeholder selects the parameter style: sq.Dollar for Postgres, sq.Question
// for SQLite.
func newSQLStore(db *DB, placeholder sq.PlaceholderFormat, log *logger.Logger) *sqlStore {
	log.Debug().Msg("creating sql store")
	return &sqlStore{
		db:      db,
		builder: sq.StatementBuilder.PlaceholderFormat(placeholder),
		logger:  log,
	}
}

// InsertReceipt persists a new receipt and returns the fully populated
// [models.Receipt] with server-assigned fields (ID, CreatedAt).
func (s *sqlStore) InsertReceipt(ctx context.Context, receipt models.ReceiptIn) (models.Receipt, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertReceiptQuery(s.builder, receipt)
	if err != nil {
		log.Err(err).Str("func", "*sqlStore.InsertReceipt").Msg("error: building query")
		return models.Receipt{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := s.db.QueryRowContext(ctx, query, args...)
	created, err := scanReceipt(row)
	if err != nil {
		log.Err(err).Str("func", "*sqlStore.InsertReceipt").Msg("error: scanning inserted row")
		switch {
		case err == sql.ErrNoRows:
			return models.Receipt{}, ErrNothingInserted
		case postgresError(err) == pgerrcode.CheckViolation:
			return models.Receipt{}, models.ErrInvalidAmount
		}
		return models.Receipt{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// ListReceipts returns all receipts with a date inside the half-open month
// range, ordered by date ascending.
func (s *sqlStore) ListReceipts(ctx context.Context, month models.MonthRange) ([]models.Receipt, error) {
	query, args, err := buildListQuery(s.builder, "receipts", receiptColumns, month)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.queryReceipts(ctx, query, args)
}

// ListReceiptsByMeal returns the month's receipts restricted to one meal type,
// ordered by date ascending.
func (s *sqlStore) ListReceiptsByMeal(ctx context.Context, month models.MonthRange, meal models.MealType) ([]models.Receipt, error) {
	query, args, err := buildListByMealQuery(s.builder, month, meal)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.queryReceipts(ctx, query, args)
}

// InsertAdvance persists a new cash advance and returns the fully populated
// [models.Advance] with server-assigned fields (ID, CreatedAt).
func (s *sqlStore) InsertAdvance(ctx context.Context, advance models.AdvanceIn) (models.Advance, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAdvanceQuery(s.builder, advance)
	if err != nil {
		log.Err(err).Str("func", "*sqlStore.InsertAdvance").Msg("error: building query")
		return models.Advance{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := s.db.QueryRowContext(ctx, query, args...)
	created, err := scanAdvance(row)
	if err != nil {
		log.Err(err).Str("func", "*sqlStore.InsertAdvance").Msg("error: scanning inserted row")
		switch {
		case err == sql.ErrNoRows:
			return models.Advance{}, ErrNothingInserted
		case postgresError(err) == pgerrcode.CheckViolation:
			return models.Advance{}, models.ErrInvalidAmount
		}
		return models.Advance{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return created, nil
}

// ListAdvances returns all advances with a date inside the half-open month
// range, ordered by date ascending.
func (s *sqlStore) ListAdvances(ctx context.Context, month models.MonthRange) ([]models.Advance, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQuery(s.builder, "advances", advanceColumns, month)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlStore.ListAdvances").Bool("retryable", s.db.Retryable(err)).Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	advances := make([]models.Advance, 0)
	for rows.Next() {
		advance, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		advances = append(advances, advance)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return advances, nil
}

// SumAmounts aggregates the amount column of table over the month range
// directly in the database.
func (s *sqlStore) SumAmounts(ctx context.Context, table string, month models.MonthRange) (float64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSumQuery(s.builder, table, month)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var sum float64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		log.Err(err).Str("func", "*sqlStore.SumAmounts").Str("table", table).Bool("retryable", s.db.Retryable(err)).Msg("error: executing sum query")
		return 0, fmt.Errorf("%w: %w", ErrAggregationUnavailable, err)
	}

	return sum, nil
}

// Ping reports database connectivity.
func (s *sqlStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqlStore) queryReceipts(ctx context.Context, query string, args []any) ([]models.Receipt, error) {
	log := logger.FromContext(ctx)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlStore.queryReceipts").Bool("retryable", s.db.Retryable(err)).Msg("error: executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	receipts := make([]models.Receipt, 0)
	for rows.Next() {
		receipt, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		receipts = append(receipts, receipt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return receipts, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanReceipt(row rowScanner) (models.Receipt, error) {
	var receipt models.Receipt
	var date time.Time
	var createdAt time.Time
	var merchant, note, imageURL sql.NullString

	if err := row.Scan(&receipt.ID, &date, &receipt.MealType, &receipt.Amount, &merchant, &note, &imageURL, &createdAt); err != nil {
		return models.Receipt{}, err
	}

	receipt.Date = models.Date{Time: date}
	receipt.Merchant = nullableString(merchant)
	receipt.Note = nullableString(note)
	receipt.ImageURL = nullableString(imageURL)
	receipt.CreatedAt = createdAt.UTC().Format(time.RFC3339)

	return receipt, nil
}

func scanAdvance(row rowScanner) (models.Advance, error) {
	var advance models.Advance
	var date time.Time
	var createdAt time.Time
	var note sql.NullString

	if err := row.Scan(&advance.ID, &date, &advance.Amount, &note, &createdAt); err != nil {
		return models.Advance{}, err
	}

	advance.Date = models.Date{Time: date}
	advance.Note = nullableString(note)
	advance.CreatedAt = createdAt.UTC().Format(time.RFC3339)

	return advance, nil
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}
