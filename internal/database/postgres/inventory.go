package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emberworks/gameledger/internal/domain"
)

// CreateInventoryItem inserts a stackable inventory row
func (r *LedgerRepository) CreateInventoryItem(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	query := `
		INSERT INTO inventory (character_id, item_name, item_type, quantity)
		VALUES ($1, $2, $3, $4)
		RETURNING id, character_id, item_name, item_type, quantity, created_at, updated_at
	`
	created, err := scanInventoryItem(r.db.QueryRow(ctx, query,
		item.CharacterID, item.ItemName, item.ItemType, item.Quantity))
	if err != nil {
		return nil, fmt.Errorf("failed to insert inventory item: %w", err)
	}
	return created, nil
}

// ListInventoryByCharacter returns all inventory items held by a character
func (r *LedgerRepository) ListInventoryByCharacter(ctx context.Context, characterID int64) ([]domain.InventoryItem, error) {
	query := `
		SELECT id, character_id, item_name, item_type, quantity, created_at, updated_at
		FROM inventory WHERE character_id = $1 ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		it, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

func scanInventoryItem(row pgx.Row) (*domain.InventoryItem, error) {
	var it domain.InventoryItem
	err := row.Scan(&it.ID, &it.CharacterID, &it.ItemName, &it.ItemType, &it.Quantity, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
