package models

import (
	"time"

	"github.com/google/uuid"
)

// AssetCategory groups assets for display.
type AssetCategory struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	SortOrder int       `db:"sort_order"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Asset is a place money lives (a bank account, a wallet, a points
// balance). InitialBalance is denominated in the asset's own currency:
// the base currency when CurrencyID is nil, the referenced auxiliary
// currency otherwise. Assets are soft-deleted so historical
// transactions and transfers keep a valid reference.
type Asset struct {
	ID             uuid.UUID  `db:"id"`
	UserID         uuid.UUID  `db:"user_id"`
	CategoryID     uuid.UUID  `db:"category_id"`
	CurrencyID     *uuid.UUID `db:"currency_id"`
	Name           string     `db:"name"`
	InitialBalance int64      `db:"initial_balance"`
	SortOrder      int        `db:"sort_order"`
	IsDeleted      bool       `db:"is_deleted"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}
