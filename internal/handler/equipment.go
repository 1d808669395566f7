package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/emberworks/gameledger/internal/domain"
	"github.com/emberworks/gameledger/internal/equipment"
	"github.com/emberworks/gameledger/internal/logger"
	"github.com/emberworks/gameledger/internal/queue"
)

// CreateEquipmentRequest is the body for POST /equipment/
type CreateEquipmentRequest struct {
	Name           string          `json:"name" validate:"required,max=255"`
	Type           string          `json:"type" validate:"required,max=50"`
	CharacterID    int64           `json:"character_id" validate:"required,gt=0"`
	Power          int             `json:"power" validate:"gte=0"`
	Slot           string          `json:"slot" validate:"required,slot"`
	Equipped       bool            `json:"equipped"`
	Price          decimal.Decimal `json:"price"`
	CurrencyTypeID int64           `json:"currency_type_id" validate:"required,gt=0"`
	Quantity       int             `json:"quantity" validate:"gte=0"`
}

// UpdateEquipmentRequest is the body for PUT /equipment/{id}/. Absent fields
// are left unchanged.
type UpdateEquipmentRequest struct {
	Name     *string          `json:"name,omitempty" validate:"omitempty,max=255"`
	Type     *string          `json:"type,omitempty" validate:"omitempty,max=50"`
	Power    *int             `json:"power,omitempty" validate:"omitempty,gte=0"`
	Slot     *string          `json:"slot,omitempty" validate:"omitempty,slot"`
	Equipped *bool            `json:"equipped,omitempty"`
	Price    *decimal.Decimal `json:"price,omitempty"`
	Quantity *int             `json:"quantity,omitempty" validate:"omitempty,gte=0"`
}

// EquipItemRequest is the body for POST /equipment/equip_item/
type EquipItemRequest struct {
	Action      string `json:"action" validate:"required,oneof=equip unequip"`
	CharacterID int64  `json:"character_id" validate:"required,gt=0"`
	ItemID      int64  `json:"item_id" validate:"required,gt=0"`
}

// HandleCreateEquipment creates an equipment row. Asking for equipped=true
// while the slot is taken succeeds with equipped forced to false.
func HandleCreateEquipment(svc equipment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateEquipmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode create equipment request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid create equipment request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		created, err := svc.Create(r.Context(), equipment.CreateParams{
			Name:           req.Name,
			Type:           req.Type,
			CharacterID:    req.CharacterID,
			Power:          req.Power,
			Slot:           domain.EquipmentSlot(req.Slot),
			Equipped:       req.Equipped,
			Price:          req.Price,
			CurrencyTypeID: req.CurrencyTypeID,
			Quantity:       req.Quantity,
		})
		if err != nil {
			log.Warn("Failed to create equipment", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetEquipment retrieves one equipment row
func HandleGetEquipment(svc equipment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
			return
		}

		item, err := svc.Get(r.Context(), id)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, item)
	}
}

// HandleListEquipment lists a character's equipment
func HandleListEquipment(svc equipment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		characterID, err := strconv.ParseInt(chi.URLParam(r, "character_id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
			return
		}

		items, err := svc.ListByCharacter(r.Context(), characterID)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		if items == nil {
			items = []domain.Equipment{}
		}
		respondJSON(w, http.StatusOK, items)
	}
}

// HandleUpdateEquipment applies a partial edit. Unlike creation, equipping
// into an occupied slot here is a hard error.
func HandleUpdateEquipment(svc equipment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
			return
		}

		var req UpdateEquipmentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode update equipment request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid update equipment request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		params := equipment.UpdateParams{
			Name:     req.Name,
			Type:     req.Type,
			Power:    req.Power,
			Equipped: req.Equipped,
			Price:    req.Price,
			Quantity: req.Quantity,
		}
		if req.Slot != nil {
			slot := domain.EquipmentSlot(*req.Slot)
			params.Slot = &slot
		}

		updated, err := svc.Update(r.Context(), id, params)
		if err != nil {
			log.Warn("Failed to update equipment", "equipment_id", id, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleDeleteEquipment removes an equipment row
func HandleDeleteEquipment(svc equipment.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Equipment deleted successfully"})
	}
}

// HandleEquipItem enqueues an equip/unequip command for async processing
func HandleEquipItem(pub queue.Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req EquipItemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode equip item request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid equip item request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		cmd := equipment.Command{
			Action:      equipment.CommandAction(req.Action),
			CharacterID: req.CharacterID,
			ItemID:      req.ItemID,
		}
		if err := pub.PublishCommand(r.Context(), cmd); err != nil {
			log.Error("Failed to publish equip command", "error", err)
			respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
			return
		}

		respondJSON(w, http.StatusAccepted, SuccessResponse{Message: "Command accepted"})
	}
}
