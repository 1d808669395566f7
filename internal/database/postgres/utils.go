package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// isSlotUniqueViolation reports whether err is a unique violation of the
// partial index enforcing at most one equipped item per (character, slot).
func isSlotUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) &&
		pgErr.Code == "23505" &&
		pgErr.ConstraintName == "uniq_equipment_equipped_slot"
}

// parseDecimal converts a numeric column read as text into a decimal.
// Numeric columns are selected with an explicit ::text cast so the value
// survives the wire without float conversion.
func parseDecimal(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid numeric value %q: %w", raw, err)
	}
	return d, nil
}

// nullableString maps an empty string to nil for nullable text columns.
func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// derefString maps a nil pointer to the empty string.
func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
