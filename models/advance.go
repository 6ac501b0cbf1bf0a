package models

// AdvanceIn is the client-supplied payload for creating a cash advance.
type AdvanceIn struct {
	Date   Date    `json:"date"`
	Amount Amount  `json:"amount"`
	Note   *string `json:"note"`
}

// Validate checks all invariants of an incoming advance. It must succeed
// before any store call.
func (a *AdvanceIn) Validate() error {
	if err := a.Date.Validate(); err != nil {
		return err
	}
	return a.Amount.Validate()
}

// Advance is a persisted cash advance record, including the fields assigned
// by the store on insert. Advances offset receipts in the monthly net.
type Advance struct {
	AdvanceIn

	// ID is the store-assigned unique identifier.
	ID int64 `json:"id"`

	// CreatedAt is the store-assigned creation timestamp in RFC 3339 form.
	CreatedAt string `json:"created_at"`
}

// TableName returns the name of the store table holding advances.
func (a Advance) TableName() string {
	return "advances"
}
