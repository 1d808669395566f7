package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/emberworks/gameledger/internal/balance"
	"github.com/emberworks/gameledger/internal/domain"
	"github.com/emberworks/gameledger/internal/logger"
)

// CreateCurrencyTypeRequest is the body for POST /currency_type/
type CreateCurrencyTypeRequest struct {
	Name        string `json:"name" validate:"required,max=50"`
	Description string `json:"description" validate:"max=500"`
}

// HandleCreateCurrencyType adds a currency type
func HandleCreateCurrencyType(svc balance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateCurrencyTypeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode create currency type request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid create currency type request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		created, err := svc.CreateCurrencyType(r.Context(), req.Name, req.Description)
		if err != nil {
			log.Warn("Failed to create currency type", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleListCurrencyTypes lists currency reference data
func HandleListCurrencyTypes(svc balance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		types, err := svc.ListCurrencyTypes(r.Context())
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		if types == nil {
			types = []domain.CurrencyType{}
		}
		respondJSON(w, http.StatusOK, types)
	}
}

// HandleDeleteTransaction removes a ledger entry. Admin correction only.
func HandleDeleteTransaction(svc balance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
			return
		}

		if err := svc.DeleteTransaction(r.Context(), id); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Transaction deleted successfully"})
	}
}
