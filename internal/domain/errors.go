package domain

import (
	"errors"
	"fmt"
)

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Character errors
	ErrMsgCharacterNotFound = "character not found"

	// Equipment errors
	ErrMsgEquipmentNotFound = "equipment not found"
	ErrMsgItemNotOwned      = "character does not own this item"
	ErrMsgSlotConflict      = "slot already has an equipped item"

	// Balance errors
	ErrMsgBalanceNotFound    = "balance not found"
	ErrMsgInsufficientFunds  = "insufficient funds"
	ErrMsgCurrencyNotFound   = "currency type not found"
	ErrMsgTransactionMissing = "transaction not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
	ErrMsgInvalidSlot  = "invalid equipment slot"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Character errors
	ErrCharacterNotFound = errors.New(ErrMsgCharacterNotFound)

	// Equipment errors
	ErrEquipmentNotFound = errors.New(ErrMsgEquipmentNotFound)
	ErrItemNotOwned      = errors.New(ErrMsgItemNotOwned)

	// Balance errors
	ErrBalanceNotFound     = errors.New(ErrMsgBalanceNotFound)
	ErrInsufficientFunds   = errors.New(ErrMsgInsufficientFunds)
	ErrCurrencyNotFound    = errors.New(ErrMsgCurrencyNotFound)
	ErrTransactionNotFound = errors.New(ErrMsgTransactionMissing)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
	ErrInvalidSlot  = errors.New(ErrMsgInvalidSlot)
)

// ErrSlotConflict is the sentinel all SlotConflictError values unwrap to.
var ErrSlotConflict = errors.New(ErrMsgSlotConflict)

// SlotConflictError reports that a character already has an equipped item in
// the named slot. It unwraps to ErrSlotConflict so callers can match with
// errors.Is while still surfacing the slot in user-facing messages.
type SlotConflictError struct {
	Slot EquipmentSlot
}

func (e *SlotConflictError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMsgSlotConflict, e.Slot)
}

func (e *SlotConflictError) Unwrap() error {
	return ErrSlotConflict
}
