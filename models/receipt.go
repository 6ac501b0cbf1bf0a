package models

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MealLunch and MealDinner are the only meal types a receipt may carry.
	MealLunch  MealType = "lunch"
	MealDinner MealType = "dinner"
)

var (
	// ErrInvalidMealType is returned when a meal type is neither "lunch" nor
	// "dinner" after lowercasing.
	ErrInvalidMealType = errors.New("meal_type must be 'lunch' or 'dinner'")

	// ErrInvalidAmount is returned when an amount is zero or negative.
	ErrInvalidAmount = errors.New("amount must be greater than 0")
)

// MealType is the meal classification of a receipt. Values are always stored
// and transmitted in lowercase.
type MealType string

// ParseMealType normalizes s to lowercase and rejects anything other than
// the two supported meal types.
func ParseMealType(s string) (MealType, error) {
	switch m := MealType(strings.ToLower(strings.TrimSpace(s))); m {
	case MealLunch, MealDinner:
		return m, nil
	default:
		return "", fmt.Errorf("%w: got %q", ErrInvalidMealType, s)
	}
}

// Amount is a positive monetary value. The zero value is invalid.
type Amount float64

// Validate rejects non-positive amounts.
func (a Amount) Validate() error {
	if a <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ReceiptIn is the client-supplied payload for creating a receipt.
// Optional free-text fields stay nil when absent and serialize as JSON null.
type ReceiptIn struct {
	Date     Date     `json:"date"`
	MealType MealType `json:"meal_type"`
	Amount   Amount   `json:"amount"`
	Merchant *string  `json:"merchant"`
	Note     *string  `json:"note"`
	ImageURL *string  `json:"image_url"`
}

// Validate checks all invariants of an incoming receipt and normalizes the
// meal type to lowercase in place. It must succeed before any store call.
func (r *ReceiptIn) Validate() error {
	if err := r.Date.Validate(); err != nil {
		return err
	}

	meal, err := ParseMealType(string(r.MealType))
	if err != nil {
		return err
	}
	r.MealType = meal

	return r.Amount.Validate()
}

// Receipt is a persisted meal expense record, including the fields assigned
// by the store on insert.
type Receipt struct {
	ReceiptIn

	// ID is the store-assigned unique identifier.
	ID int64 `json:"id"`

	// CreatedAt is the store-assigned creation timestamp in RFC 3339 form.
	CreatedAt string `json:"created_at"`
}

// TableName returns the name of the store table holding receipts.
func (r Receipt) TableName() string {
	return "receipts"
}
