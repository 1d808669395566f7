package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/emberworks/gameledger/internal/character"
	"github.com/emberworks/gameledger/internal/domain"
	"github.com/emberworks/gameledger/internal/logger"
)

// CreateInventoryItemRequest is the body for POST /inventory/
type CreateInventoryItemRequest struct {
	CharacterID int64  `json:"character_id" validate:"required,gt=0"`
	ItemName    string `json:"item_name" validate:"required,max=255"`
	ItemType    string `json:"item_type" validate:"required,max=50"`
	Quantity    int    `json:"quantity" validate:"required,gte=1"`
}

// HandleCreateInventoryItem adds a stackable item to a character's inventory
func HandleCreateInventoryItem(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateInventoryItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode create inventory request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid create inventory request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		created, err := svc.AddInventoryItem(r.Context(), &domain.InventoryItem{
			CharacterID: req.CharacterID,
			ItemName:    req.ItemName,
			ItemType:    req.ItemType,
			Quantity:    req.Quantity,
		})
		if err != nil {
			log.Warn("Failed to create inventory item", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleListInventory lists a character's inventory items
func HandleListInventory(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID, err := strconv.ParseInt(chi.URLParam(r, "character_id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
			return
		}

		items, err := svc.ListInventory(r.Context(), characterID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		if items == nil {
			items = []domain.InventoryItem{}
		}
		respondJSON(w, http.StatusOK, items)
	}
}
