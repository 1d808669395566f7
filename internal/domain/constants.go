package domain

import "github.com/shopspring/decimal"

// TransferFeeRate is the multiplier applied to an item's price when debiting
// the source character during a transfer.
var TransferFeeRate = decimal.NewFromFloat(0.85)

// Limits applied at the service layer before touching storage.
const (
	MaxNameLength = 255
	MaxTypeLength = 50
)
