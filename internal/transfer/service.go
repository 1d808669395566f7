package transfer

import (
	"context"
	"fmt"

	"github.com/emberworks/gameledger/internal/domain"
	"github.com/emberworks/gameledger/internal/logger"
	"github.com/emberworks/gameledger/internal/metrics"
	"github.com/emberworks/gameledger/internal/repository"
)

// Service defines the interface for item transfer operations
type Service interface {
	TransferItem(ctx context.Context, characterFrom, characterTo, itemID int64) error
}

type service struct {
	repo repository.Ledger
}

// NewService creates a new transfer service
func NewService(repo repository.Ledger) Service {
	return &service{repo: repo}
}

// TransferItem moves one unit of an item from characterFrom to characterTo
// inside a single storage transaction. The source item and source balance
// rows are locked for the duration, so concurrent transfers from the same
// character serialize at the database.
//
// The source balance is debited twice: once by price*0.85 (the transfer fee)
// and once by the full price. Both debits are longstanding documented
// behavior; see DESIGN.md before changing either.
func (s *service) TransferItem(ctx context.Context, characterFrom, characterTo, itemID int64) (err error) {
	log := logger.FromContext(ctx)
	defer func() {
		result := "success"
		if err != nil {
			result = "failure"
		}
		metrics.TransfersTotal.WithLabelValues(result).Inc()
	}()

	if characterFrom == characterTo {
		// A self-transfer would net zero item movement while still charging
		// the fee and the price.
		return fmt.Errorf("%w: cannot transfer an item to the same character", domain.ErrInvalidInput)
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	item, err := tx.GetOwnedEquipmentForUpdate(ctx, characterFrom, itemID)
	if err != nil {
		return err
	}
	if item.Quantity == 0 {
		return fmt.Errorf("%w: item %d has zero quantity", domain.ErrItemNotOwned, itemID)
	}

	if _, err := tx.GetCharacterByID(ctx, characterTo); err != nil {
		return err
	}

	balance, err := tx.GetOrCreateBalanceForUpdate(ctx, characterFrom, item.CurrencyTypeID)
	if err != nil {
		return err
	}

	if balance.Balance.LessThan(item.Price) {
		return fmt.Errorf("%w: balance %s below price %s",
			domain.ErrInsufficientFunds, balance.Balance, item.Price)
	}

	fee := item.Price.Mul(domain.TransferFeeRate)
	newBalance := balance.Balance.Sub(fee).Sub(item.Price)
	if err := tx.UpdateBalance(ctx, balance.ID, newBalance); err != nil {
		return err
	}

	if err := tx.UpdateEquipmentQuantity(ctx, item.ID, item.Quantity-1); err != nil {
		return err
	}

	stack, err := tx.FindStackForUpdate(ctx, characterTo, item)
	if err != nil {
		return err
	}
	if stack != nil {
		if err := tx.UpdateEquipmentQuantity(ctx, stack.ID, stack.Quantity+1); err != nil {
			return err
		}
	} else {
		// The received copy always arrives unequipped; the recipient may
		// already have an equipped item in that slot.
		_, err := tx.CreateEquipment(ctx, &domain.Equipment{
			Name:           item.Name,
			Type:           item.Type,
			CharacterID:    characterTo,
			Power:          item.Power,
			Slot:           item.Slot,
			Equipped:       false,
			Price:          item.Price,
			CurrencyTypeID: item.CurrencyTypeID,
			Quantity:       1,
		})
		if err != nil {
			return err
		}
	}

	_, err = tx.CreateTransaction(ctx, &domain.Transaction{
		TransactionType: domain.TransactionTypeOut,
		Amount:          fee,
		ItemID:          &item.ID,
		CurrencyTypeID:  item.CurrencyTypeID,
		CharacterFrom:   &characterFrom,
		CharacterTo:     &characterTo,
	})
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	log.Info("item transferred",
		"item_id", itemID,
		"character_from", characterFrom,
		"character_to", characterTo,
		"fee", fee.String())
	return nil
}
