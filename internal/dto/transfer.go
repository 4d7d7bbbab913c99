package dto

import (
	"github.com/SpiritFlag/Moneybook/internal/models"
)

type TransferRequest struct {
	TransferDate         string `json:"transfer_date"` // YYYY-MM-DD
	FromAssetID          string `json:"from_asset_id"`
	ToAssetID            string `json:"to_asset_id"`
	Amount               int64  `json:"amount"`
	FromAdjustmentAmount int64  `json:"from_adjustment_amount"`
	FromAdjustmentIsPlus bool   `json:"from_adjustment_is_plus"`
	FromAdjustmentMemo   string `json:"from_adjustment_memo"`
	ToAdjustmentAmount   int64  `json:"to_adjustment_amount"`
	ToAdjustmentIsPlus   bool   `json:"to_adjustment_is_plus"`
	ToAdjustmentMemo     string `json:"to_adjustment_memo"`
	Title                string `json:"title"`
	Memo                 string `json:"memo"`
}

type TransferResponse struct {
	ID                   string   `json:"id"`
	TransferDate         string   `json:"transfer_date"`
	FromAssetID          string   `json:"from_asset_id"`
	ToAssetID            string   `json:"to_asset_id"`
	Amount               int64    `json:"amount"`
	OriginalAmount       *int64   `json:"original_amount,omitempty"`
	OriginalCurrencyID   *string  `json:"original_currency_id,omitempty"`
	ExchangeRate         *float64 `json:"exchange_rate,omitempty"`
	FromAdjustmentAmount int64    `json:"from_adjustment_amount"`
	FromAdjustmentIsPlus bool     `json:"from_adjustment_is_plus"`
	FromAdjustmentMemo   *string  `json:"from_adjustment_memo,omitempty"`
	ToAdjustmentAmount   int64    `json:"to_adjustment_amount"`
	ToAdjustmentIsPlus   bool     `json:"to_adjustment_is_plus"`
	ToAdjustmentMemo     *string  `json:"to_adjustment_memo,omitempty"`
	Title                *string  `json:"title,omitempty"`
	Memo                 *string  `json:"memo,omitempty"`
	SortOrder            int      `json:"sort_order"`
}

func NewTransferResponse(tr *models.Transfer) TransferResponse {
	resp := TransferResponse{
		ID:                   tr.ID.String(),
		TransferDate:         tr.TransferDate.Format("2006-01-02"),
		FromAssetID:          tr.FromAssetID.String(),
		ToAssetID:            tr.ToAssetID.String(),
		Amount:               tr.Amount,
		OriginalAmount:       tr.OriginalAmount,
		ExchangeRate:         tr.ExchangeRate,
		FromAdjustmentAmount: tr.FromAdjustmentAmount,
		FromAdjustmentIsPlus: tr.FromAdjustmentIsPlus,
		FromAdjustmentMemo:   tr.FromAdjustmentMemo,
		ToAdjustmentAmount:   tr.ToAdjustmentAmount,
		ToAdjustmentIsPlus:   tr.ToAdjustmentIsPlus,
		ToAdjustmentMemo:     tr.ToAdjustmentMemo,
		Title:                tr.Title,
		Memo:                 tr.Memo,
		SortOrder:            tr.SortOrder,
	}
	if tr.OriginalCurrencyID != nil {
		s := tr.OriginalCurrencyID.String()
		resp.OriginalCurrencyID = &s
	}
	return resp
}

func NewTransferResponses(transfers []models.Transfer) []TransferResponse {
	out := make([]TransferResponse, len(transfers))
	for i := range transfers {
		out[i] = NewTransferResponse(&transfers[i])
	}
	return out
}
