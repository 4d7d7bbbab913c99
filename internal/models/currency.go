package models

import (
	"time"

	"github.com/google/uuid"
)

// Currency is a user-defined auxiliary currency with a fixed exchange
// rate to the base currency (won). ExchangeRate is how many won one
// unit of the currency is worth; it must be positive.
type Currency struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	Name         string    `db:"name"`
	Symbol       string    `db:"symbol"`
	ExchangeRate float64   `db:"exchange_rate"`
	SortOrder    int       `db:"sort_order"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}
