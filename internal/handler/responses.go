package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/emberworks/gameledger/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent; all we can do is log.
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// The business error strings are an API contract; see errors.go.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	var slotConflict *domain.SlotConflictError
	if errors.As(err, &slotConflict) {
		return http.StatusBadRequest, fmt.Sprintf(ErrMsgSlotConflictUserFormat, slotConflict.Slot)
	}

	switch {
	case errors.Is(err, domain.ErrItemNotOwned):
		return http.StatusBadRequest, ErrMsgItemNotOwnedUser
	case errors.Is(err, domain.ErrCharacterNotFound):
		return http.StatusBadRequest, ErrMsgCharacterNotFoundUser
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgInsufficientFundsUser
	case errors.Is(err, domain.ErrBalanceNotFound):
		return http.StatusBadRequest, ErrMsgBalanceNotFoundUser
	case errors.Is(err, domain.ErrEquipmentNotFound):
		return http.StatusNotFound, ErrMsgEquipmentNotFoundUser
	case errors.Is(err, domain.ErrCurrencyNotFound):
		return http.StatusBadRequest, ErrMsgCurrencyNotFoundUser
	case errors.Is(err, domain.ErrTransactionNotFound):
		return http.StatusNotFound, ErrMsgTransactionNotFound
	case errors.Is(err, domain.ErrInvalidSlot):
		return http.StatusBadRequest, ErrMsgInvalidSlotUser
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequest
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
