package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emberworks/gameledger/internal/domain"
)

const transactionColumns = `id, transaction_type, amount::text, item_id, currency_type_id, character_from, character_to, created_at`

// CreateTransaction records an audit entry within the transaction
func (t *LedgerTx) CreateTransaction(ctx context.Context, tr *domain.Transaction) (*domain.Transaction, error) {
	query := `
		INSERT INTO transactions (transaction_type, amount, item_id, currency_type_id, character_from, character_to)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + transactionColumns
	row := t.tx.QueryRow(ctx, query,
		nullableString(tr.TransactionType), tr.Amount.String(),
		tr.ItemID, tr.CurrencyTypeID, tr.CharacterFrom, tr.CharacterTo)
	created, err := scanTransaction(row)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}
	return created, nil
}

// ListTransactionsForCharacter returns every transaction where the character
// appears as sender or recipient, in insertion order.
func (r *LedgerRepository) ListTransactionsForCharacter(ctx context.Context, characterID int64) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE character_from = $1 OR character_to = $1
		ORDER BY id
	`
	rows, err := r.db.Query(ctx, query, characterID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var items []domain.Transaction
	for rows.Next() {
		tr, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		items = append(items, *tr)
	}
	return items, rows.Err()
}

// GetTransactionByID retrieves a single transaction
func (r *LedgerRepository) GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	tr, err := scanTransaction(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return tr, nil
}

// DeleteTransaction removes a transaction row
func (r *LedgerRepository) DeleteTransaction(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		tr        domain.Transaction
		txType    *string
		rawAmount string
	)
	err := row.Scan(&tr.ID, &txType, &rawAmount, &tr.ItemID, &tr.CurrencyTypeID,
		&tr.CharacterFrom, &tr.CharacterTo, &tr.CreatedAt)
	if err != nil {
		return nil, err
	}
	tr.TransactionType = derefString(txType)
	tr.Amount, err = parseDecimal(rawAmount)
	if err != nil {
		return nil, err
	}
	return &tr, nil
}
