package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CurrencyType is reference data describing a currency (e.g. "gold").
type CurrencyType struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CurrencyBalance is a character's holding of one currency type. The
// (character, currency_type) pair is unique; rows are created lazily with a
// zero balance on first touch. No floor is enforced: the documented transfer
// flow can drive a balance negative.
type CurrencyBalance struct {
	ID             int64           `json:"id"`
	CharacterID    int64           `json:"character_id"`
	CurrencyTypeID int64           `json:"currency_type_id"`
	Balance        decimal.Decimal `json:"balance"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
