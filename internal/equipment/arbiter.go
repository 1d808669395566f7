package equipment

import (
	"context"
	"errors"
	"fmt"

	"github.com/emberworks/gameledger/internal/domain"
	"github.com/emberworks/gameledger/internal/repository"
)

// Arbiter enforces slot exclusivity: at most one equipped item per
// (character, slot). Every code path that flips the equipped flag goes
// through SetEquipped so HTTP edits, equip-on-create and queue commands all
// share the same enforcement.
type Arbiter struct{}

// NewArbiter creates an equip arbiter
func NewArbiter() *Arbiter {
	return &Arbiter{}
}

// SetEquipped transitions the item's equipped flag inside the caller's
// transaction. Equipping fails with a SlotConflictError when another equipped
// item already occupies the slot; unequipping always succeeds. The conflict
// scan locks existing equipped rows in the slot; when the slot is empty the
// store's unique equipped-per-slot index rejects the losing concurrent
// write, which is reported as the same SlotConflictError.
func (a *Arbiter) SetEquipped(ctx context.Context, tx repository.LedgerTx, item *domain.Equipment, desired bool) error {
	if !desired {
		if err := tx.SetEquipped(ctx, item.ID, false); err != nil {
			return fmt.Errorf("failed to unequip item %d: %w", item.ID, err)
		}
		item.Equipped = false
		return nil
	}

	conflict, err := a.hasConflict(ctx, tx, item.CharacterID, item.Slot, item.ID)
	if err != nil {
		return err
	}
	if conflict {
		return &domain.SlotConflictError{Slot: item.Slot}
	}
	if err := tx.SetEquipped(ctx, item.ID, true); err != nil {
		// The scan cannot lock rows that don't exist yet, so a concurrent
		// equip into the same empty slot surfaces here instead: the store's
		// unique equipped-per-slot index rejects the second write.
		if errors.Is(err, domain.ErrSlotConflict) {
			return &domain.SlotConflictError{Slot: item.Slot}
		}
		return fmt.Errorf("failed to equip item %d: %w", item.ID, err)
	}
	item.Equipped = true
	return nil
}

// hasConflict is a pure check over the transactional state: does the
// character have a different equipped item in the slot.
func (a *Arbiter) hasConflict(ctx context.Context, tx repository.LedgerTx, characterID int64, slot domain.EquipmentSlot, excludeItemID int64) (bool, error) {
	conflict, err := tx.HasEquippedInSlot(ctx, characterID, slot, excludeItemID)
	if err != nil {
		return false, fmt.Errorf("failed to scan slot %s: %w", slot, err)
	}
	return conflict, nil
}
