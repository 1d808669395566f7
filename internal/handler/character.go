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

// CreateCharacterRequest is the body for POST /character/
type CreateCharacterRequest struct {
	Name   string `json:"name" validate:"required,max=255,excludesall=\x00\n\r\t"`
	UserID int64  `json:"user_id" validate:"required,gt=0"`
}

// UpdateCharacterRequest is the body for PUT /character/{id}/
type UpdateCharacterRequest struct {
	Name       *string `json:"name,omitempty" validate:"omitempty,max=255,excludesall=\x00\n\r\t"`
	Level      *int    `json:"level,omitempty" validate:"omitempty,gte=1"`
	Experience *int    `json:"experience,omitempty" validate:"omitempty,gte=0"`
}

// HandleCreateCharacter creates a character
func HandleCreateCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateCharacterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode create character request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid create character request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		created, err := svc.Create(r.Context(), req.Name, req.UserID)
		if err != nil {
			log.Warn("Failed to create character", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleGetCharacter retrieves one character
func HandleGetCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
			return
		}

		c, err := svc.Get(r.Context(), id)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, c)
	}
}

// HandleListCharacters lists characters with limit/offset paging
func HandleListCharacters(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

		characters, err := svc.List(r.Context(), limit, offset)
		if err != nil {
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		if characters == nil {
			characters = []domain.Character{}
		}
		respondJSON(w, http.StatusOK, characters)
	}
}

// HandleUpdateCharacter edits name, level or experience
func HandleUpdateCharacter(svc character.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidID)
			return
		}

		var req UpdateCharacterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode update character request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid update character request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		updated, err := svc.Update(r.Context(), id, character.UpdateParams{
			Name:       req.Name,
			Level:      req.Level,
			Experience: req.Experience,
		})
		if err != nil {
			log.Warn("Failed to update character", "character_id", id, "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}
		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleDeleteCharacter removes a character and everything it owns
func HandleDeleteCharacter(svc character.Service) http.HandlerFunc {
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
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Character deleted successfully"})
	}
}
