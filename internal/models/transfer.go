package models

import (
	"time"

	"github.com/google/uuid"
)

// Transfer moves money from one asset to another. Amount is stored in
// base currency; when the source asset uses an auxiliary currency the
// original native figure and the rate snapshot are kept alongside.
// Each leg carries an optional adjustment (fee or bonus) with its own
// sign flag, independent of the other leg, so a transfer is not
// required to conserve amount across the two legs.
type Transfer struct {
	ID                   uuid.UUID  `db:"id"`
	UserID               uuid.UUID  `db:"user_id"`
	TransferDate         time.Time  `db:"transfer_date"`
	FromAssetID          uuid.UUID  `db:"from_asset_id"`
	ToAssetID            uuid.UUID  `db:"to_asset_id"`
	Amount               int64      `db:"amount"`
	OriginalAmount       *int64     `db:"original_amount"`
	OriginalCurrencyID   *uuid.UUID `db:"original_currency_id"`
	ExchangeRate         *float64   `db:"exchange_rate"`
	FromAdjustmentAmount int64      `db:"from_adjustment_amount"`
	FromAdjustmentIsPlus bool       `db:"from_adjustment_is_plus"`
	FromAdjustmentMemo   *string    `db:"from_adjustment_memo"`
	ToAdjustmentAmount   int64      `db:"to_adjustment_amount"`
	ToAdjustmentIsPlus   bool       `db:"to_adjustment_is_plus"`
	ToAdjustmentMemo     *string    `db:"to_adjustment_memo"`
	Title                *string    `db:"title"`
	Memo                 *string    `db:"memo"`
	SortOrder            int        `db:"sort_order"`
	CreatedAt            time.Time  `db:"created_at"`
	UpdatedAt            time.Time  `db:"updated_at"`
}
