package handler

// Generic HTTP error messages for client responses.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest = "Invalid request body"
	ErrMsgInvalidID      = "Invalid id parameter"

	// Generic messages
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
)

// User-facing business error messages. The wording is part of the public API
// contract and must not be changed without coordinating with API consumers.
const (
	ErrMsgItemNotOwnedUser      = "Character doesn't have this item."
	ErrMsgCharacterNotFoundUser = "Character doesn't exist."
	ErrMsgInsufficientFundsUser = "Insufficient amount to transfer item."
	ErrMsgBalanceNotFoundUser   = "Balance does not exist."

	// Slot conflicts interpolate the slot name, e.g.
	// "Character already has an equipped weapon item."
	ErrMsgSlotConflictUserFormat = "Character already has an equipped %s item."

	ErrMsgEquipmentNotFoundUser = "Equipment doesn't exist."
	ErrMsgCurrencyNotFoundUser  = "Currency type doesn't exist."
	ErrMsgTransactionNotFound   = "Transaction doesn't exist."
	ErrMsgInvalidSlotUser       = "Invalid equipment slot."
)
