package models

import "math"

// MonthSummary aggregates one month of activity. All totals are rounded to
// two decimal places, and Net is always ReceiptsTotal minus AdvancesTotal.
type MonthSummary struct {
	Month         string  `json:"month"`
	ReceiptsTotal float64 `json:"receipts_total"`
	AdvancesTotal float64 `json:"advances_total"`
	LunchTotal    float64 `json:"lunch_total"`
	DinnerTotal   float64 `json:"dinner_total"`
	Net           float64 `json:"net"`
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// NewMonthSummary builds a summary for the given month, rounding every total
// and deriving Net from the rounded receipt and advance totals.
func NewMonthSummary(month string, receipts, advances, lunch, dinner float64) MonthSummary {
	r := Round2(receipts)
	a := Round2(advances)

	return MonthSummary{
		Month:         month,
		ReceiptsTotal: r,
		AdvancesTotal: a,
		LunchTotal:    Round2(lunch),
		DinnerTotal:   Round2(dinner),
		Net:           Round2(r - a),
	}
}
