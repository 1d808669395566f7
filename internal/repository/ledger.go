package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/emberworks/gameledger/internal/domain"
)

// Ledger defines the interface for character/equipment/balance persistence.
// Reads outside a transaction use the pool directly; every multi-row
// mutation goes through a LedgerTx.
type Ledger interface {
	// Characters
	CreateCharacter(ctx context.Context, c *domain.Character) (*domain.Character, error)
	GetCharacterByID(ctx context.Context, id int64) (*domain.Character, error)
	ListCharacters(ctx context.Context, limit, offset int) ([]domain.Character, error)
	UpdateCharacter(ctx context.Context, c *domain.Character) error
	DeleteCharacter(ctx context.Context, id int64) error
	GetCharacterOwner(ctx context.Context, characterID int64) (*domain.User, error)

	// Equipment
	CreateEquipment(ctx context.Context, e *domain.Equipment) (*domain.Equipment, error)
	GetEquipmentByID(ctx context.Context, id int64) (*domain.Equipment, error)
	ListEquipmentByCharacter(ctx context.Context, characterID int64) ([]domain.Equipment, error)
	UpdateEquipment(ctx context.Context, e *domain.Equipment) error
	DeleteEquipment(ctx context.Context, id int64) error

	// Currency types
	CreateCurrencyType(ctx context.Context, ct *domain.CurrencyType) (*domain.CurrencyType, error)
	GetCurrencyTypeByID(ctx context.Context, id int64) (*domain.CurrencyType, error)
	ListCurrencyTypes(ctx context.Context) ([]domain.CurrencyType, error)

	// Balances
	GetBalanceByID(ctx context.Context, id int64) (*domain.CurrencyBalance, error)
	GetBalance(ctx context.Context, characterID, currencyTypeID int64) (*domain.CurrencyBalance, error)

	// Transactions
	ListTransactionsForCharacter(ctx context.Context, characterID int64) ([]domain.Transaction, error)
	GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error

	// Inventory
	CreateInventoryItem(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	ListInventoryByCharacter(ctx context.Context, characterID int64) ([]domain.InventoryItem, error)

	BeginTx(ctx context.Context) (LedgerTx, error)
}

// LedgerTx defines the mutations available inside a storage transaction.
// The ForUpdate variants take row-level locks so concurrent transfers or
// equip requests against the same rows serialize at the database.
type LedgerTx interface {
	Tx

	GetCharacterByID(ctx context.Context, id int64) (*domain.Character, error)

	// GetOwnedEquipmentForUpdate resolves the equipment row owned by
	// characterID with the given id, locking it. Returns
	// domain.ErrItemNotOwned when absent.
	GetOwnedEquipmentForUpdate(ctx context.Context, characterID, equipmentID int64) (*domain.Equipment, error)

	GetEquipmentForUpdate(ctx context.Context, equipmentID int64) (*domain.Equipment, error)

	// HasEquippedInSlot reports whether the character has another equipped
	// item in the slot, excluding excludeID. The scan shares the
	// transaction so check-then-act stays consistent.
	HasEquippedInSlot(ctx context.Context, characterID int64, slot domain.EquipmentSlot, excludeID int64) (bool, error)

	SetEquipped(ctx context.Context, equipmentID int64, equipped bool) error
	UpdateEquipmentQuantity(ctx context.Context, equipmentID int64, quantity int) error

	// FindStackForUpdate locates a destination row matching the identity
	// characteristics of src owned by characterID, locking it. Returns
	// (nil, nil) when no stack exists.
	FindStackForUpdate(ctx context.Context, characterID int64, src *domain.Equipment) (*domain.Equipment, error)

	CreateEquipment(ctx context.Context, e *domain.Equipment) (*domain.Equipment, error)
	UpdateEquipment(ctx context.Context, e *domain.Equipment) error

	// GetOrCreateBalanceForUpdate returns the (character, currency) balance
	// row, creating it with a zero balance when absent, and locks it.
	GetOrCreateBalanceForUpdate(ctx context.Context, characterID, currencyTypeID int64) (*domain.CurrencyBalance, error)

	UpdateBalance(ctx context.Context, balanceID int64, balance decimal.Decimal) error

	CreateTransaction(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error)
}
