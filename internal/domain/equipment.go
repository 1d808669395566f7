package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EquipmentSlot is an attachment point on a character. At most one equipped
// item per slot per character.
type EquipmentSlot string

// Valid equipment slots
const (
	SlotHead   EquipmentSlot = "head"
	SlotChest  EquipmentSlot = "chest"
	SlotShoes  EquipmentSlot = "shoes"
	SlotWeapon EquipmentSlot = "weapon"
)

// ValidSlot reports whether s names a known slot.
func ValidSlot(s EquipmentSlot) bool {
	switch s {
	case SlotHead, SlotChest, SlotShoes, SlotWeapon:
		return true
	}
	return false
}

// Equipment is a stackable item owned by a character. Quantity 0 means the
// character no longer holds the item but the row persists (transfer
// decrements to 0 rather than deleting).
type Equipment struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	CharacterID    int64           `json:"character_id"`
	Power          int             `json:"power"`
	Slot           EquipmentSlot   `json:"slot"`
	Equipped       bool            `json:"equipped"`
	Price          decimal.Decimal `json:"price"`
	CurrencyTypeID int64           `json:"currency_type_id"`
	Quantity       int             `json:"quantity"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// SameIdentity reports whether other is the same logical item held by a
// possibly different character: matching name, type, slot, currency and
// power. Transfers stack onto an existing destination row when this holds.
func (e *Equipment) SameIdentity(other *Equipment) bool {
	return e.Name == other.Name &&
		e.Type == other.Type &&
		e.Slot == other.Slot &&
		e.CurrencyTypeID == other.CurrencyTypeID &&
		e.Power == other.Power
}
