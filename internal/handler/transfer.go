package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/emberworks/gameledger/internal/logger"
	"github.com/emberworks/gameledger/internal/transfer"
)

// TransferItemRequest is the body for POST /equipment/transfer_item/
type TransferItemRequest struct {
	CharacterFrom int64 `json:"character_from" validate:"required,gt=0"`
	CharacterTo   int64 `json:"character_to" validate:"required,gt=0"`
	ItemID        int64 `json:"item_id" validate:"required,gt=0"`
}

// HandleTransferItem moves an item between characters with fee settlement
func HandleTransferItem(svc transfer.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req TransferItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode transfer request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid transfer request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		if err := svc.TransferItem(r.Context(), req.CharacterFrom, req.CharacterTo, req.ItemID); err != nil {
			log.Warn("Transfer failed",
				"character_from", req.CharacterFrom,
				"character_to", req.CharacterTo,
				"item_id", req.ItemID,
				"error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item transferred successfully"})
	}
}
