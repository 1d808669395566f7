package domain

import "time"

// Character is a playable character owned by a user. It owns equipment,
// inventory rows and currency balances, and appears in transactions as
// source or destination.
type Character struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	UserID     int64     `json:"user_id"`
	Level      int       `json:"level"`
	Experience int       `json:"experience"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
