package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/emberworks/gameledger/internal/domain"
)

// CreateCharacter inserts a new character
func (r *LedgerRepository) CreateCharacter(ctx context.Context, c *domain.Character) (*domain.Character, error) {
	query := `
		INSERT INTO characters (name, user_id, level, experience)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, user_id, level, experience, created_at, updated_at
	`
	row := r.db.QueryRow(ctx, query, c.Name, c.UserID, c.Level, c.Experience)
	return scanCharacter(row)
}

// GetCharacterByID retrieves a character by ID
func (r *LedgerRepository) GetCharacterByID(ctx context.Context, id int64) (*domain.Character, error) {
	query := `
		SELECT id, name, user_id, level, experience, created_at, updated_at
		FROM characters
		WHERE id = $1
	`
	c, err := scanCharacter(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, err
	}
	return c, nil
}

// ListCharacters retrieves characters with limit/offset pagination
func (r *LedgerRepository) ListCharacters(ctx context.Context, limit, offset int) ([]domain.Character, error) {
	query := `
		SELECT id, name, user_id, level, experience, created_at, updated_at
		FROM characters
		ORDER BY id
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	defer rows.Close()

	var characters []domain.Character
	for rows.Next() {
		c, err := scanCharacterRow(rows)
		if err != nil {
			return nil, err
		}
		characters = append(characters, *c)
	}
	return characters, rows.Err()
}

// UpdateCharacter updates a character's mutable fields
func (r *LedgerRepository) UpdateCharacter(ctx context.Context, c *domain.Character) error {
	query := `
		UPDATE characters
		SET name = $1, level = $2, experience = $3, updated_at = NOW()
		WHERE id = $4
	`
	tag, err := r.db.Exec(ctx, query, c.Name, c.Level, c.Experience, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

// DeleteCharacter removes a character; owned equipment, balances and
// inventory cascade at the schema level.
func (r *LedgerRepository) DeleteCharacter(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM characters WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCharacterNotFound
	}
	return nil
}

// GetCharacterOwner resolves the user owning a character
func (r *LedgerRepository) GetCharacterOwner(ctx context.Context, characterID int64) (*domain.User, error) {
	query := `
		SELECT u.id, u.username, u.email
		FROM users u
		JOIN characters c ON c.user_id = u.id
		WHERE c.id = $1
	`
	var u domain.User
	err := r.db.QueryRow(ctx, query, characterID).Scan(&u.ID, &u.Username, &u.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, fmt.Errorf("failed to get character owner: %w", err)
	}
	return &u, nil
}

// GetCharacterByID for Tx
func (t *LedgerTx) GetCharacterByID(ctx context.Context, id int64) (*domain.Character, error) {
	query := `
		SELECT id, name, user_id, level, experience, created_at, updated_at
		FROM characters
		WHERE id = $1
	`
	c, err := scanCharacter(t.tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCharacterNotFound
		}
		return nil, err
	}
	return c, nil
}

func scanCharacter(row pgx.Row) (*domain.Character, error) {
	var c domain.Character
	err := row.Scan(&c.ID, &c.Name, &c.UserID, &c.Level, &c.Experience, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCharacterRow(rows pgx.Rows) (*domain.Character, error) {
	var c domain.Character
	err := rows.Scan(&c.ID, &c.Name, &c.UserID, &c.Level, &c.Experience, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to scan character: %w", err)
	}
	return &c, nil
}
