package dto

import (
	"github.com/SpiritFlag/Moneybook/internal/ledger"
	"github.com/SpiritFlag/Moneybook/internal/models"
)

// TransactionRequest carries user-entered figures in the asset's own
// currency. For an auxiliary-currency asset the service converts them
// to base currency at the currency's current rate and stores the
// original figures alongside.
type TransactionRequest struct {
	Type             string `json:"type"`
	TransactionDate  string `json:"transaction_date"` // YYYY-MM-DD
	AssetID          string `json:"asset_id"`
	CategoryID       string `json:"category_id"`
	Amount           int64  `json:"amount"`
	AdjustmentAmount int64  `json:"adjustment_amount"`
	AdjustmentMemo   string `json:"adjustment_memo"`
	Title            string `json:"title"`
	Memo             string `json:"memo"`
}

type TransactionResponse struct {
	ID                       string   `json:"id"`
	Type                     string   `json:"type"`
	TransactionDate          string   `json:"transaction_date"`
	AssetID                  string   `json:"asset_id"`
	CategoryID               string   `json:"category_id"`
	Amount                   int64    `json:"amount"`
	AdjustmentAmount         int64    `json:"adjustment_amount"`
	AdjustmentMemo           *string  `json:"adjustment_memo,omitempty"`
	EffectiveAmount          int64    `json:"effective_amount"`
	OriginalAmount           *int64   `json:"original_amount,omitempty"`
	OriginalAdjustmentAmount *int64   `json:"original_adjustment_amount,omitempty"`
	OriginalCurrencyID       *string  `json:"original_currency_id,omitempty"`
	ExchangeRate             *float64 `json:"exchange_rate,omitempty"`
	Title                    string   `json:"title"`
	Memo                     *string  `json:"memo,omitempty"`
	SortOrder                int      `json:"sort_order"`
}

func NewTransactionResponse(tx *models.Transaction) TransactionResponse {
	resp := TransactionResponse{
		ID:                       tx.ID.String(),
		Type:                     string(tx.Type),
		TransactionDate:          tx.TransactionDate.Format("2006-01-02"),
		AssetID:                  tx.AssetID.String(),
		CategoryID:               tx.CategoryID.String(),
		Amount:                   tx.Amount,
		AdjustmentAmount:         tx.AdjustmentAmount,
		AdjustmentMemo:           tx.AdjustmentMemo,
		EffectiveAmount:          ledger.EffectiveAmount(tx.Amount, tx.AdjustmentAmount),
		OriginalAmount:           tx.OriginalAmount,
		OriginalAdjustmentAmount: tx.OriginalAdjustmentAmount,
		ExchangeRate:             tx.ExchangeRate,
		Title:                    tx.Title,
		Memo:                     tx.Memo,
		SortOrder:                tx.SortOrder,
	}
	if tx.OriginalCurrencyID != nil {
		s := tx.OriginalCurrencyID.String()
		resp.OriginalCurrencyID = &s
	}
	return resp
}

func NewTransactionResponses(txs []models.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txs))
	for i := range txs {
		out[i] = NewTransactionResponse(&txs[i])
	}
	return out
}
