package character

import (
	"context"
	"fmt"

	"github.com/emberworks/gameledger/internal/domain"
	"github.com/emberworks/gameledger/internal/logger"
	"github.com/emberworks/gameledger/internal/repository"
)

// UpdateParams carries a partial character edit. Nil fields are left
// untouched.
type UpdateParams struct {
	Name       *string
	Level      *int
	Experience *int
}

// Service defines the interface for character operations
type Service interface {
	Create(ctx context.Context, name string, userID int64) (*domain.Character, error)
	Get(ctx context.Context, id int64) (*domain.Character, error)
	List(ctx context.Context, limit, offset int) ([]domain.Character, error)
	Update(ctx context.Context, id int64, params UpdateParams) (*domain.Character, error)
	Delete(ctx context.Context, id int64) error

	AddInventoryItem(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	ListInventory(ctx context.Context, characterID int64) ([]domain.InventoryItem, error)
}

type service struct {
	repo repository.Ledger
}

// NewService creates a new character service
func NewService(repo repository.Ledger) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, name string, userID int64) (*domain.Character, error) {
	if name == "" || len(name) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: invalid character name", domain.ErrInvalidInput)
	}

	created, err := s.repo.CreateCharacter(ctx, &domain.Character{
		Name:   name,
		UserID: userID,
		Level:  1,
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("character created", "character_id", created.ID, "name", name)
	return created, nil
}

func (s *service) Get(ctx context.Context, id int64) (*domain.Character, error) {
	return s.repo.GetCharacterByID(ctx, id)
}

func (s *service) List(ctx context.Context, limit, offset int) ([]domain.Character, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListCharacters(ctx, limit, offset)
}

func (s *service) Update(ctx context.Context, id int64, params UpdateParams) (*domain.Character, error) {
	c, err := s.repo.GetCharacterByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		if *params.Name == "" || len(*params.Name) > domain.MaxNameLength {
			return nil, fmt.Errorf("%w: invalid character name", domain.ErrInvalidInput)
		}
		c.Name = *params.Name
	}
	if params.Level != nil {
		if *params.Level < 1 {
			return nil, fmt.Errorf("%w: level must be at least 1", domain.ErrInvalidInput)
		}
		c.Level = *params.Level
	}
	if params.Experience != nil {
		if *params.Experience < 0 {
			return nil, fmt.Errorf("%w: experience must not be negative", domain.ErrInvalidInput)
		}
		c.Experience = *params.Experience
	}

	if err := s.repo.UpdateCharacter(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes the character. Owned equipment, inventory and balances go
// with it via the schema's cascade rules.
func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.DeleteCharacter(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("character deleted", "character_id", id)
	return nil
}

func (s *service) AddInventoryItem(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	if item.ItemName == "" || len(item.ItemName) > domain.MaxNameLength {
		return nil, fmt.Errorf("%w: invalid item name", domain.ErrInvalidInput)
	}
	if item.Quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", domain.ErrInvalidInput)
	}
	if _, err := s.repo.GetCharacterByID(ctx, item.CharacterID); err != nil {
		return nil, err
	}
	return s.repo.CreateInventoryItem(ctx, item)
}

func (s *service) ListInventory(ctx context.Context, characterID int64) ([]domain.InventoryItem, error) {
	if _, err := s.repo.GetCharacterByID(ctx, characterID); err != nil {
		return nil, err
	}
	return s.repo.ListInventoryByCharacter(ctx, characterID)
}
