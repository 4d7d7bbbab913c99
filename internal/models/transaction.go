package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction is a single income or expense entry. Amount and
// AdjustmentAmount are always stored in base currency. When the asset
// uses an auxiliary currency, OriginalAmount/OriginalAdjustmentAmount/
// OriginalCurrencyID/ExchangeRate additionally record the user-entered
// native figures and the rate applied at entry time. The rate is a
// snapshot: editing the currency later does not rewrite past entries.
type Transaction struct {
	ID                       uuid.UUID       `db:"id"`
	UserID                   uuid.UUID       `db:"user_id"`
	Type                     TransactionType `db:"type"`
	TransactionDate          time.Time       `db:"transaction_date"`
	AssetID                  uuid.UUID       `db:"asset_id"`
	CategoryID               uuid.UUID       `db:"category_id"`
	Amount                   int64           `db:"amount"`
	AdjustmentAmount         int64           `db:"adjustment_amount"`
	AdjustmentMemo           *string         `db:"adjustment_memo"`
	OriginalAmount           *int64          `db:"original_amount"`
	OriginalAdjustmentAmount *int64          `db:"original_adjustment_amount"`
	OriginalCurrencyID       *uuid.UUID      `db:"original_currency_id"`
	ExchangeRate             *float64        `db:"exchange_rate"`
	Title                    string          `db:"title"`
	Memo                     *string         `db:"memo"`
	SortOrder                int             `db:"sort_order"`
	CreatedAt                time.Time       `db:"created_at"`
	UpdatedAt                time.Time       `db:"updated_at"`
}
