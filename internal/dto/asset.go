package dto

import (
	"github.com/SpiritFlag/Moneybook/internal/models"
)

type AssetCategoryRequest struct {
	Name string `json:"name"`
}

type AssetCategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

func NewAssetCategoryResponse(c *models.AssetCategory) AssetCategoryResponse {
	return AssetCategoryResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		SortOrder: c.SortOrder,
	}
}

func NewAssetCategoryResponses(categories []models.AssetCategory) []AssetCategoryResponse {
	out := make([]AssetCategoryResponse, len(categories))
	for i := range categories {
		out[i] = NewAssetCategoryResponse(&categories[i])
	}
	return out
}

type AssetRequest struct {
	CategoryID     string  `json:"category_id"`
	CurrencyID     *string `json:"currency_id"`
	Name           string  `json:"name"`
	InitialBalance int64   `json:"initial_balance"`
}

type AssetResponse struct {
	ID             string  `json:"id"`
	CategoryID     string  `json:"category_id"`
	CurrencyID     *string `json:"currency_id,omitempty"`
	Name           string  `json:"name"`
	InitialBalance int64   `json:"initial_balance"`
	SortOrder      int     `json:"sort_order"`
}

// AssetBalanceResponse is an asset with its derived current balance,
// denominated in the asset's own currency.
type AssetBalanceResponse struct {
	AssetResponse
	CurrentBalance int64 `json:"current_balance"`
}

func NewAssetResponse(a *models.Asset) AssetResponse {
	resp := AssetResponse{
		ID:             a.ID.String(),
		CategoryID:     a.CategoryID.String(),
		Name:           a.Name,
		InitialBalance: a.InitialBalance,
		SortOrder:      a.SortOrder,
	}
	if a.CurrencyID != nil {
		s := a.CurrencyID.String()
		resp.CurrencyID = &s
	}
	return resp
}

func NewAssetResponses(assets []models.Asset) []AssetResponse {
	out := make([]AssetResponse, len(assets))
	for i := range assets {
		out[i] = NewAssetResponse(&assets[i])
	}
	return out
}

// AssetReorderRequest carries the new display order. CategoryID is set
// on entries dragged into another category.
type AssetReorderRequest struct {
	Assets []AssetOrderItem `json:"assets"`
}

type AssetOrderItem struct {
	ID         string  `json:"id"`
	SortOrder  int     `json:"sort_order"`
	CategoryID *string `json:"category_id,omitempty"`
}
