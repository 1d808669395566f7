package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/emberworks/gameledger/internal/balance"
	"github.com/emberworks/gameledger/internal/domain"
	"github.com/emberworks/gameledger/internal/logger"
)

// TopUpRequest is the body for POST /currency_balance/top_up_currency_balance/
type TopUpRequest struct {
	CharacterID    int64           `json:"character_id" validate:"required,gt=0"`
	CurrencyTypeID int64           `json:"currency_type_id" validate:"required,gt=0"`
	Amount         decimal.Decimal `json:"amount" validate:"required"`
}

// HandleTopUp credits a character's currency balance
func HandleTopUp(svc balance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req TopUpRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode top-up request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid top-up request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		bal, err := svc.TopUp(r.Context(), req.CharacterID, req.CurrencyTypeID, req.Amount)
		if err != nil {
			log.Warn("Top-up failed",
				"character_id", req.CharacterID,
				"currency_type_id", req.CurrencyTypeID,
				"error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, bal)
	}
}

// BalanceHistoryResponse wraps a transaction list
type BalanceHistoryResponse struct {
	Transactions []domain.Transaction `json:"transactions"`
}

// HandleBalanceHistory lists every transaction involving the balance's character
func HandleBalanceHistory(svc balance.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		balanceID, err := strconv.ParseInt(chi.URLParam(r, "balance_id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
			return
		}
		currencyTypeID, err := strconv.ParseInt(chi.URLParam(r, "currency_type_id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
			return
		}

		history, err := svc.CheckBalanceHistory(r.Context(), balanceID, currencyTypeID)
		if err != nil {
			log.Warn("Balance history lookup failed", "balance_id", balanceID, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		if history == nil {
			history = []domain.Transaction{}
		}
		respondJSON(w, http.StatusOK, BalanceHistoryResponse{Transactions: history})
	}
}
