// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/meal-tracker/internal/config"
	"github.com/MKhiriev/meal-tracker/internal/logger"
	"github.com/MKhiriev/meal-tracker/internal/utils"
	"github.com/MKhiriev/meal-tracker/models"
)

// supabaseStore is the hosted-store implementation of [Store]. It talks to
// the Supabase PostgREST interface over HTTP: table endpoints for CRUD and
// the sum_amounts database function for remote aggregation.
type supabaseStore struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewSupabaseStore constructs a [Store] backed by a Supabase project.
// It normalises and validates the base URL from cfg.URL, configures the
// underlying HTTP client with the resolved base URL and request timeout, and
// attaches the API key headers expected by PostgREST to every request.
//
// Returns an error if cfg.URL is empty or cannot be parsed as a valid URL.
func NewSupabaseStore(cfg config.Supabase, timeout time.Duration, log *logger.Logger) (Store, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid supabase url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("apikey", cfg.APIKey()).
		SetHeader("Authorization", "Bearer "+cfg.APIKey())

	return &supabaseStore{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// InsertReceipt implements [Store]. It POSTs the receipt to the receipts
// table with "Prefer: return=representation" so the created row comes back in
// the response body. An empty representation maps to [ErrNothingInserted].
func (s *supabaseStore) InsertReceipt(ctx context.Context, receipt models.ReceiptIn) (models.Receipt, error) {
	var created []models.Receipt

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=representation").
		SetBody(receipt).
		SetResult(&created).
		Post("/rest/v1/receipts")
	if err != nil {
		return models.Receipt{}, fmt.Errorf("insert receipt request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Receipt{}, err
	}

	if len(created) == 0 {
		return models.Receipt{}, ErrNothingInserted
	}
	return created[0], nil
}

// ListReceipts implements [Store]. It GETs the receipts table with half-open
// date range filters (date=gte.start, date=lt.end) ordered by date ascending.
func (s *supabaseStore) ListReceipts(ctx context.Context, month models.MonthRange) ([]models.Receipt, error) {
	var receipts []models.Receipt

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(monthFilterParams(month)).
		SetResult(&receipts).
		Get("/rest/v1/receipts")
	if err != nil {
		return nil, fmt.Errorf("list receipts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return receipts, nil
}

// ListReceiptsByMeal implements [Store]. Same as ListReceipts with an
// additional meal_type=eq.<meal> filter.
func (s *supabaseStore) ListReceiptsByMeal(ctx context.Context, month models.MonthRange, meal models.MealType) ([]models.Receipt, error) {
	var receipts []models.Receipt

	params := monthFilterParams(month)
	params.Set("meal_type", "eq."+string(meal))

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		SetResult(&receipts).
		Get("/rest/v1/receipts")
	if err != nil {
		return nil, fmt.Errorf("list receipts by meal request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return receipts, nil
}

// InsertAdvance implements [Store].
func (s *supabaseStore) InsertAdvance(ctx context.Context, advance models.AdvanceIn) (models.Advance, error) {
	var created []models.Advance

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Prefer", "return=representation").
		SetBody(advance).
		SetResult(&created).
		Post("/rest/v1/advances")
	if err != nil {
		return models.Advance{}, fmt.Errorf("insert advance request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Advance{}, err
	}

	if len(created) == 0 {
		return models.Advance{}, ErrNothingInserted
	}
	return created[0], nil
}

// ListAdvances implements [Store].
func (s *supabaseStore) ListAdvances(ctx context.Context, month models.MonthRange) ([]models.Advance, error) {
	var advances []models.Advance

	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParamsFromValues(monthFilterParams(month)).
		SetResult(&advances).
		Get("/rest/v1/advances")
	if err != nil {
		return nil, fmt.Errorf("list advances request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return advances, nil
}

// SumAmounts implements [Store]. It POSTs to the sum_amounts database
// function. Any failure along the way (transport error, non-2xx status,
// undecodable body, missing "sum" column) maps to [ErrAggregationUnavailable]
// so callers can fall back to client-side summation.
func (s *supabaseStore) SumAmounts(ctx context.Context, table string, month models.MonthRange) (float64, error) {
	log := logger.FromContext(ctx)

	body := map[string]string{
		"table_name": table,
		"start_date": month.StartDate().String(),
		"end_date":   month.EndDate().String(),
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/rest/v1/rpc/sum_amounts")
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrAggregationUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Debug().Err(err).Str("table", table).Msg("sum_amounts rpc rejected")
		return 0, fmt.Errorf("%w: %w", ErrAggregationUnavailable, err)
	}

	var rows []map[string]*float64
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return 0, fmt.Errorf("%w: decode sum_amounts response: %w", ErrAggregationUnavailable, err)
	}
	if len(rows) == 0 {
		return 0, ErrAggregationUnavailable
	}

	sum, ok := rows[0]["sum"]
	if !ok {
		return 0, ErrAggregationUnavailable
	}
	if sum == nil {
		// no rows matched the range
		return 0, nil
	}

	return *sum, nil
}

// Ping implements [Store]. It issues a minimal read against the receipts
// table to verify both connectivity and API key validity.
func (s *supabaseStore) Ping(ctx context.Context) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("select", "id").
		SetQueryParam("limit", "1").
		Get("/rest/v1/receipts")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

func monthFilterParams(month models.MonthRange) url.Values {
	return url.Values{
		"select": {"*"},
		"date":   {"gte." + month.StartDate().String(), "lt." + month.EndDate().String()},
		"order":  {"date.asc"},
	}
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
