package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/emberworks/gameledger/internal/domain"
)

const balanceColumns = `id, character_id, currency_type_id, balance::text, created_at, updated_at`

// GetBalanceByID retrieves a currency balance row by its primary key
func (r *LedgerRepository) GetBalanceByID(ctx context.Context, id int64) (*domain.CurrencyBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM currency_balances WHERE id = $1`
	b, err := scanBalance(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBalanceNotFound
		}
		return nil, err
	}
	return b, nil
}

// GetBalance retrieves the balance a character holds in a currency
func (r *LedgerRepository) GetBalance(ctx context.Context, characterID, currencyTypeID int64) (*domain.CurrencyBalance, error) {
	query := `SELECT ` + balanceColumns + ` FROM currency_balances WHERE character_id = $1 AND currency_type_id = $2`
	b, err := scanBalance(r.db.QueryRow(ctx, query, characterID, currencyTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBalanceNotFound
		}
		return nil, err
	}
	return b, nil
}

// GetOrCreateBalanceForUpdate returns the character's balance in a currency,
// creating a zero row when none exists, locked for the rest of the transaction.
func (t *LedgerTx) GetOrCreateBalanceForUpdate(ctx context.Context, characterID, currencyTypeID int64) (*domain.CurrencyBalance, error) {
	insert := `
		INSERT INTO currency_balances (character_id, currency_type_id, balance)
		VALUES ($1, $2, 0)
		ON CONFLICT (character_id, currency_type_id) DO NOTHING
	`
	if _, err := t.tx.Exec(ctx, insert, characterID, currencyTypeID); err != nil {
		return nil, fmt.Errorf("failed to ensure balance row: %w", err)
	}

	query := `SELECT ` + balanceColumns + ` FROM currency_balances WHERE character_id = $1 AND currency_type_id = $2 FOR UPDATE`
	b, err := scanBalance(t.tx.QueryRow(ctx, query, characterID, currencyTypeID))
	if err != nil {
		return nil, fmt.Errorf("failed to lock balance row: %w", err)
	}
	return b, nil
}

// UpdateBalance persists a new balance amount
func (t *LedgerTx) UpdateBalance(ctx context.Context, balanceID int64, amount decimal.Decimal) error {
	tag, err := t.tx.Exec(ctx,
		`UPDATE currency_balances SET balance = $1, updated_at = NOW() WHERE id = $2`,
		amount.String(), balanceID)
	if err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBalanceNotFound
	}
	return nil
}

func scanBalance(row pgx.Row) (*domain.CurrencyBalance, error) {
	var (
		b          domain.CurrencyBalance
		rawBalance string
	)
	err := row.Scan(&b.ID, &b.CharacterID, &b.CurrencyTypeID, &rawBalance, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	b.Balance, err = parseDecimal(rawBalance)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
