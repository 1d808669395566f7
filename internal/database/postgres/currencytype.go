package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emberworks/gameledger/internal/domain"
)

// CreateCurrencyType inserts a new currency type
func (r *LedgerRepository) CreateCurrencyType(ctx context.Context, ct *domain.CurrencyType) (*domain.CurrencyType, error) {
	query := `
		INSERT INTO currency_types (name, description)
		VALUES ($1, $2)
		RETURNING id, name, COALESCE(description, ''), created_at, updated_at
	`
	created, err := scanCurrencyType(r.db.QueryRow(ctx, query, ct.Name, nullableString(ct.Description)))
	if err != nil {
		return nil, fmt.Errorf("failed to insert currency type: %w", err)
	}
	return created, nil
}

// GetCurrencyTypeByID retrieves a currency type
func (r *LedgerRepository) GetCurrencyTypeByID(ctx context.Context, id int64) (*domain.CurrencyType, error) {
	query := `SELECT id, name, COALESCE(description, ''), created_at, updated_at FROM currency_types WHERE id = $1`
	ct, err := scanCurrencyType(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCurrencyNotFound
		}
		return nil, err
	}
	return ct, nil
}

// ListCurrencyTypes returns all currency types
func (r *LedgerRepository) ListCurrencyTypes(ctx context.Context) ([]domain.CurrencyType, error) {
	query := `SELECT id, name, COALESCE(description, ''), created_at, updated_at FROM currency_types ORDER BY id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list currency types: %w", err)
	}
	defer rows.Close()

	var items []domain.CurrencyType
	for rows.Next() {
		ct, err := scanCurrencyType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan currency type: %w", err)
		}
		items = append(items, *ct)
	}
	return items, rows.Err()
}

func scanCurrencyType(row pgx.Row) (*domain.CurrencyType, error) {
	var ct domain.CurrencyType
	err := row.Scan(&ct.ID, &ct.Name, &ct.Description, &ct.CreatedAt, &ct.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &ct, nil
}
