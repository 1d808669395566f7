package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/emberworks/gameledger/internal/domain"
)

const equipmentColumns = `id, name, type, character_id, power, slot, equipped, price::text, currency_type_id, quantity, created_at, updated_at`

// CreateEquipment inserts a new equipment row
func (r *LedgerRepository) CreateEquipment(ctx context.Context, e *domain.Equipment) (*domain.Equipment, error) {
	return insertEquipment(ctx, r.db, e)
}

// GetEquipmentByID retrieves equipment by ID
func (r *LedgerRepository) GetEquipmentByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`
	e, err := scanEquipment(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEquipmentNotFound
		}
		return nil, err
	}
	return e, nil
}

// ListEquipmentByCharacter retrieves all equipment owned by a character
func (r *LedgerRepository) ListEquipmentByCharacter(ctx context.Context, characterID int64) ([]domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE character_id = $1 ORDER BY id`
	rows, err := r.db.Query(ctx, query, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	defer rows.Close()

	var items []domain.Equipment
	for rows.Next() {
		e, err := scanEquipmentRows(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	return items, rows.Err()
}

// UpdateEquipment persists all mutable equipment fields
func (r *LedgerRepository) UpdateEquipment(ctx context.Context, e *domain.Equipment) error {
	return updateEquipment(ctx, r.db, e)
}

// UpdateEquipment for Tx
func (t *LedgerTx) UpdateEquipment(ctx context.Context, e *domain.Equipment) error {
	return updateEquipment(ctx, t.tx, e)
}

func updateEquipment(ctx context.Context, q execer, e *domain.Equipment) error {
	query := `
		UPDATE equipment
		SET name = $1, type = $2, character_id = $3, power = $4, slot = $5,
		    equipped = $6, price = $7, currency_type_id = $8, quantity = $9,
		    updated_at = NOW()
		WHERE id = $10
	`
	tag, err := q.Exec(ctx, query,
		e.Name, e.Type, e.CharacterID, e.Power, string(e.Slot),
		e.Equipped, e.Price.String(), e.CurrencyTypeID, e.Quantity, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update equipment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEquipmentNotFound
	}
	return nil
}

// DeleteEquipment removes an equipment row
func (r *LedgerRepository) DeleteEquipment(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete equipment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEquipmentNotFound
	}
	return nil
}

// GetOwnedEquipmentForUpdate locks the equipment row owned by characterID
func (t *LedgerTx) GetOwnedEquipmentForUpdate(ctx context.Context, characterID, equipmentID int64) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1 AND character_id = $2 FOR UPDATE`
	e, err := scanEquipment(t.tx.QueryRow(ctx, query, equipmentID, characterID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotOwned
		}
		return nil, err
	}
	return e, nil
}

// GetEquipmentForUpdate locks an equipment row by ID
func (t *LedgerTx) GetEquipmentForUpdate(ctx context.Context, equipmentID int64) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1 FOR UPDATE`
	e, err := scanEquipment(t.tx.QueryRow(ctx, query, equipmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEquipmentNotFound
		}
		return nil, err
	}
	return e, nil
}

// HasEquippedInSlot reports whether another equipped item occupies the slot.
// FOR UPDATE serializes racing equip attempts on the same character+slot.
func (t *LedgerTx) HasEquippedInSlot(ctx context.Context, characterID int64, slot domain.EquipmentSlot, excludeID int64) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM equipment
			WHERE character_id = $1 AND slot = $2 AND equipped AND id <> $3
			FOR UPDATE
		)
	`
	var exists bool
	if err := t.tx.QueryRow(ctx, query, characterID, string(slot), excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check equipped slot: %w", err)
	}
	return exists, nil
}

// SetEquipped persists the equipped flag
func (t *LedgerTx) SetEquipped(ctx context.Context, equipmentID int64, equipped bool) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE equipment SET equipped = $1, updated_at = NOW() WHERE id = $2`,
		equipped, equipmentID)
	if err != nil {
		// A concurrent transaction equipped into the same slot between our
		// conflict scan and this write.
		if isSlotUniqueViolation(err) {
			return fmt.Errorf("%w: equipment %d", domain.ErrSlotConflict, equipmentID)
		}
		return fmt.Errorf("failed to set equipped flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEquipmentNotFound
	}
	return nil
}

// UpdateEquipmentQuantity persists a new stack quantity
func (t *LedgerTx) UpdateEquipmentQuantity(ctx context.Context, equipmentID int64, quantity int) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE equipment SET quantity = $1, updated_at = NOW() WHERE id = $2`,
		quantity, equipmentID)
	if err != nil {
		return fmt.Errorf("failed to update equipment quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEquipmentNotFound
	}
	return nil
}

// FindStackForUpdate locates and locks a destination row with the same
// identity characteristics as src. Returns (nil, nil) when no stack exists.
func (t *LedgerTx) FindStackForUpdate(ctx context.Context, characterID int64, src *domain.Equipment) (*domain.Equipment, error) {
	query := `SELECT ` + equipmentColumns + `
		FROM equipment
		WHERE character_id = $1 AND name = $2 AND type = $3 AND slot = $4
		  AND currency_type_id = $5 AND power = $6
		FOR UPDATE
	`
	e, err := scanEquipment(t.tx.QueryRow(ctx, query,
		characterID, src.Name, src.Type, string(src.Slot), src.CurrencyTypeID, src.Power))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

// CreateEquipment for Tx
func (t *LedgerTx) CreateEquipment(ctx context.Context, e *domain.Equipment) (*domain.Equipment, error) {
	return insertEquipment(ctx, t.tx, e)
}

// rowQuerier matches the QueryRow method shared by pools and transactions
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// execer matches the Exec method shared by pools and transactions
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func insertEquipment(ctx context.Context, q rowQuerier, e *domain.Equipment) (*domain.Equipment, error) {
	query := `
		INSERT INTO equipment (name, type, character_id, power, slot, equipped, price, currency_type_id, quantity)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + equipmentColumns
	row := q.QueryRow(ctx, query,
		e.Name, e.Type, e.CharacterID, e.Power, string(e.Slot),
		e.Equipped, e.Price.String(), e.CurrencyTypeID, e.Quantity)
	created, err := scanEquipment(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert equipment: %w", err)
	}
	return created, nil
}

func scanEquipment(row pgx.Row) (*domain.Equipment, error) {
	var (
		e        domain.Equipment
		slot     string
		rawPrice string
	)
	err := row.Scan(&e.ID, &e.Name, &e.Type, &e.CharacterID, &e.Power, &slot,
		&e.Equipped, &rawPrice, &e.CurrencyTypeID, &e.Quantity, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	e.Slot = domain.EquipmentSlot(slot)
	e.Price, err = parseDecimal(rawPrice)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEquipmentRows(rows pgx.Rows) (*domain.Equipment, error) {
	e, err := scanEquipment(rows)
	if err != nil {
		return nil, fmt.Errorf("failed to scan equipment: %w", err)
	}
	return e, nil
}
