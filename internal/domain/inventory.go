package domain

import "time"

// InventoryItem is a stackable non-equipment item held by a character.
type InventoryItem struct {
	ID          int64     `json:"id"`
	CharacterID int64     `json:"character_id"`
	ItemName    string    `json:"item_name"`
	ItemType    string    `json:"item_type"`
	Quantity    int       `json:"quantity"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
