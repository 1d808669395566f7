package equipment

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/emberworks/gameledger/internal/domain"
	"github.com/emberworks/gameledger/internal/logger"
	"github.com/emberworks/gameledger/internal/repository"
)

// CreateParams describes a new equipment row.
type CreateParams struct {
	Name           string
	Type           string
	CharacterID    int64
	Power          int
	Slot           domain.EquipmentSlot
	Equipped       bool
	Price          decimal.Decimal
	CurrencyTypeID int64
	Quantity       int
}

// UpdateParams carries a partial equipment edit. Nil fields are left
// untouched.
type UpdateParams struct {
	Name     *string
	Type     *string
	Power    *int
	Slot     *domain.EquipmentSlot
	Equipped *bool
	Price    *decimal.Decimal
	Quantity *int
}

// Service defines the interface for equipment operations
type Service interface {
	Create(ctx context.Context, params CreateParams) (*domain.Equipment, error)
	Get(ctx context.Context, id int64) (*domain.Equipment, error)
	ListByCharacter(ctx context.Context, characterID int64) ([]domain.Equipment, error)
	Update(ctx context.Context, id int64, params UpdateParams) (*domain.Equipment, error)
	Delete(ctx context.Context, id int64) error
	ApplyCommand(ctx context.Context, cmd Command) error
}

type service struct {
	repo    repository.Ledger
	arbiter *Arbiter
}

// NewService creates a new equipment service
func NewService(repo repository.Ledger, arbiter *Arbiter) Service {
	return &service{repo: repo, arbiter: arbiter}
}

// Create inserts a new equipment row. When the request asks for
// equipped=true and the slot is already taken, the item is created anyway
// with equipped forced to false. The edit path treats the same situation as
// a hard error; the creation path deliberately does not.
func (s *service) Create(ctx context.Context, params CreateParams) (*domain.Equipment, error) {
	log := logger.FromContext(ctx)

	if !domain.ValidSlot(params.Slot) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSlot, params.Slot)
	}
	if params.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", domain.ErrInvalidInput)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	if _, err := tx.GetCharacterByID(ctx, params.CharacterID); err != nil {
		return nil, err
	}

	created, err := tx.CreateEquipment(ctx, &domain.Equipment{
		Name:           params.Name,
		Type:           params.Type,
		CharacterID:    params.CharacterID,
		Power:          params.Power,
		Slot:           params.Slot,
		Equipped:       false,
		Price:          params.Price,
		CurrencyTypeID: params.CurrencyTypeID,
		Quantity:       params.Quantity,
	})
	if err != nil {
		return nil, err
	}

	if params.Equipped {
		err := s.arbiter.SetEquipped(ctx, tx, created, true)
		if err != nil && !errors.Is(err, domain.ErrSlotConflict) {
			return nil, err
		}
		if errors.Is(err, domain.ErrSlotConflict) {
			log.Info("slot occupied, created item unequipped",
				"character_id", params.CharacterID, "slot", params.Slot)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return created, nil
}

func (s *service) Get(ctx context.Context, id int64) (*domain.Equipment, error) {
	return s.repo.GetEquipmentByID(ctx, id)
}

func (s *service) ListByCharacter(ctx context.Context, characterID int64) ([]domain.Equipment, error) {
	if _, err := s.repo.GetCharacterByID(ctx, characterID); err != nil {
		return nil, err
	}
	return s.repo.ListEquipmentByCharacter(ctx, characterID)
}

// Update applies a partial edit. Turning equipped on while another item
// occupies the slot fails with a SlotConflictError and leaves every row
// unchanged.
func (s *service) Update(ctx context.Context, id int64, params UpdateParams) (*domain.Equipment, error) {
	if params.Slot != nil && !domain.ValidSlot(*params.Slot) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidSlot, *params.Slot)
	}
	if params.Quantity != nil && *params.Quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must not be negative", domain.ErrInvalidInput)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	item, err := tx.GetEquipmentForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		item.Name = *params.Name
	}
	if params.Type != nil {
		item.Type = *params.Type
	}
	if params.Power != nil {
		item.Power = *params.Power
	}
	if params.Slot != nil {
		item.Slot = *params.Slot
	}
	if params.Price != nil {
		item.Price = *params.Price
	}
	if params.Quantity != nil {
		item.Quantity = *params.Quantity
	}

	// Persist field edits first so a slot change is visible to the
	// conflict scan below.
	if err := tx.UpdateEquipment(ctx, item); err != nil {
		return nil, err
	}

	if params.Equipped != nil && *params.Equipped != item.Equipped {
		if err := s.arbiter.SetEquipped(ctx, tx, item, *params.Equipped); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return item, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteEquipment(ctx, id)
}

// ApplyCommand processes a queue equip/unequip command. Business-rule
// violations (item not owned, wrong current state, slot occupied) are logged
// and dropped; only infrastructure failures return an error so the consumer
// can retry the message.
func (s *service) ApplyCommand(ctx context.Context, cmd Command) error {
	log := logger.FromContext(ctx)

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	item, err := tx.GetOwnedEquipmentForUpdate(ctx, cmd.CharacterID, cmd.ItemID)
	if err != nil {
		if errors.Is(err, domain.ErrItemNotOwned) {
			log.Warn("command dropped: item not owned",
				"action", cmd.Action, "character_id", cmd.CharacterID, "item_id", cmd.ItemID)
			return nil
		}
		return err
	}

	switch cmd.Action {
	case ActionEquip:
		if item.Equipped {
			log.Warn("command dropped: item already equipped",
				"character_id", cmd.CharacterID, "item_id", cmd.ItemID)
			return nil
		}
		if err := s.arbiter.SetEquipped(ctx, tx, item, true); err != nil {
			if errors.Is(err, domain.ErrSlotConflict) {
				log.Warn("command dropped: slot occupied",
					"character_id", cmd.CharacterID, "item_id", cmd.ItemID, "slot", item.Slot)
				return nil
			}
			return err
		}
	case ActionUnequip:
		if !item.Equipped {
			log.Warn("command dropped: item not equipped",
				"character_id", cmd.CharacterID, "item_id", cmd.ItemID)
			return nil
		}
		if err := s.arbiter.SetEquipped(ctx, tx, item, false); err != nil {
			return err
		}
	default:
		log.Warn("command dropped: unknown action", "action", cmd.Action)
		return nil
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	log.Info("equip command applied",
		"action", cmd.Action, "character_id", cmd.CharacterID, "item_id", cmd.ItemID)
	return nil
}
