package models

import (
	"errors"
	"fmt"
	"time"
)

// MonthLayout is the "YYYY-MM" layout used by the ?month query parameter.
const MonthLayout = "2006-01"

// ErrInvalidMonth is returned when a month string does not match YYYY-MM.
var ErrInvalidMonth = errors.New("Invalid month format. Use YYYY-MM")

// MonthRange is the half-open interval [Start, End) covering one calendar
// month. End is the first day of the following month.
type MonthRange struct {
	Start time.Time
	End   time.Time
}

// ParseMonth resolves a "YYYY-MM" string into a MonthRange. An empty string
// resolves to the current month in UTC. The December to January rollover is
// handled by AddDate.
func ParseMonth(s string) (MonthRange, error) {
	var start time.Time

	if s == "" {
		now := time.Now().UTC()
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	} else {
		parsed, err := time.Parse(MonthLayout, s)
		if err != nil {
			return MonthRange{}, fmt.Errorf("%w: got %q", ErrInvalidMonth, s)
		}
		start = time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.UTC)
	}

	return MonthRange{Start: start, End: start.AddDate(0, 1, 0)}, nil
}

// String returns the month in YYYY-MM form.
func (m MonthRange) String() string {
	return m.Start.Format(MonthLayout)
}

// StartDate returns the first day of the month as a Date.
func (m MonthRange) StartDate() Date {
	return Date{Time: m.Start}
}

// EndDate returns the exclusive upper bound as a Date.
func (m MonthRange) EndDate() Date {
	return Date{Time: m.End}
}
