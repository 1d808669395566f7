package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction type tags. The column is nullable; an empty TransactionType
// maps to NULL.
const (
	TransactionTypeIn       = "in"
	TransactionTypeOut      = "out"
	TransactionTypePurchase = "purchase"
	TransactionTypeSale     = "sale"
)

// Transaction is an append-only audit record of a balance- or
// ownership-affecting event. Normal flows never delete transactions; the
// admin delete endpoint exists for corrections only.
type Transaction struct {
	ID              int64           `json:"id"`
	TransactionType string          `json:"transaction_type,omitempty"`
	Amount          decimal.Decimal `json:"amount"`
	ItemID          *int64          `json:"item_id,omitempty"`
	CurrencyTypeID  int64           `json:"currency_type_id"`
	CharacterFrom   *int64          `json:"character_from,omitempty"`
	CharacterTo     *int64          `json:"character_to,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}
