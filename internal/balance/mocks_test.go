package balance

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/emberworks/gameledger/internal/domain"
	"github.com/emberworks/gameledger/internal/repository"
)

// MockLedger implements repository.Ledger for testing
type MockLedger struct {
	mock.Mock
}

func (m *MockLedger) CreateCharacter(ctx context.Context, c *domain.Character) (*domain.Character, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockLedger) GetCharacterByID(ctx context.Context, id int64) (*domain.Character, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockLedger) ListCharacters(ctx context.Context, limit, offset int) ([]domain.Character, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Character), args.Error(1)
}

func (m *MockLedger) UpdateCharacter(ctx context.Context, c *domain.Character) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockLedger) DeleteCharacter(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLedger) GetCharacterOwner(ctx context.Context, characterID int64) (*domain.User, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockLedger) CreateEquipment(ctx context.Context, e *domain.Equipment) (*domain.Equipment, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockLedger) GetEquipmentByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockLedger) ListEquipmentByCharacter(ctx context.Context, characterID int64) ([]domain.Equipment, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Equipment), args.Error(1)
}

func (m *MockLedger) UpdateEquipment(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockLedger) DeleteEquipment(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLedger) CreateCurrencyType(ctx context.Context, ct *domain.CurrencyType) (*domain.CurrencyType, error) {
	args := m.Called(ctx, ct)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyType), args.Error(1)
}

func (m *MockLedger) GetCurrencyTypeByID(ctx context.Context, id int64) (*domain.CurrencyType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyType), args.Error(1)
}

func (m *MockLedger) ListCurrencyTypes(ctx context.Context) ([]domain.CurrencyType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyType), args.Error(1)
}

func (m *MockLedger) GetBalanceByID(ctx context.Context, id int64) (*domain.CurrencyBalance, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyBalance), args.Error(1)
}

func (m *MockLedger) GetBalance(ctx context.Context, characterID, currencyTypeID int64) (*domain.CurrencyBalance, error) {
	args := m.Called(ctx, characterID, currencyTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyBalance), args.Error(1)
}

func (m *MockLedger) ListTransactionsForCharacter(ctx context.Context, characterID int64) ([]domain.Transaction, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockLedger) GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockLedger) DeleteTransaction(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockLedger) CreateInventoryItem(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockLedger) ListInventoryByCharacter(ctx context.Context, characterID int64) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, characterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockLedger) BeginTx(ctx context.Context) (repository.LedgerTx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.LedgerTx), args.Error(1)
}

// MockLedgerTx implements repository.LedgerTx for testing
type MockLedgerTx struct {
	mock.Mock
}

func (m *MockLedgerTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockLedgerTx) GetCharacterByID(ctx context.Context, id int64) (*domain.Character, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Character), args.Error(1)
}

func (m *MockLedgerTx) GetOwnedEquipmentForUpdate(ctx context.Context, characterID, equipmentID int64) (*domain.Equipment, error) {
	args := m.Called(ctx, characterID, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockLedgerTx) GetEquipmentForUpdate(ctx context.Context, equipmentID int64) (*domain.Equipment, error) {
	args := m.Called(ctx, equipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockLedgerTx) HasEquippedInSlot(ctx context.Context, characterID int64, slot domain.EquipmentSlot, excludeID int64) (bool, error) {
	args := m.Called(ctx, characterID, slot, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerTx) SetEquipped(ctx context.Context, equipmentID int64, equipped bool) error {
	args := m.Called(ctx, equipmentID, equipped)
	return args.Error(0)
}

func (m *MockLedgerTx) UpdateEquipmentQuantity(ctx context.Context, equipmentID int64, quantity int) error {
	args := m.Called(ctx, equipmentID, quantity)
	return args.Error(0)
}

func (m *MockLedgerTx) FindStackForUpdate(ctx context.Context, characterID int64, src *domain.Equipment) (*domain.Equipment, error) {
	args := m.Called(ctx, characterID, src)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockLedgerTx) CreateEquipment(ctx context.Context, e *domain.Equipment) (*domain.Equipment, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Equipment), args.Error(1)
}

func (m *MockLedgerTx) UpdateEquipment(ctx context.Context, e *domain.Equipment) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockLedgerTx) GetOrCreateBalanceForUpdate(ctx context.Context, characterID, currencyTypeID int64) (*domain.CurrencyBalance, error) {
	args := m.Called(ctx, characterID, currencyTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyBalance), args.Error(1)
}

func (m *MockLedgerTx) UpdateBalance(ctx context.Context, balanceID int64, balance decimal.Decimal) error {
	args := m.Called(ctx, balanceID, balance)
	return args.Error(0)
}

func (m *MockLedgerTx) CreateTransaction(ctx context.Context, t *domain.Transaction) (*domain.Transaction, error) {
	args := m.Called(ctx, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
