package dto

import (
	"github.com/SpiritFlag/Moneybook/internal/models"
)

type CurrencyRequest struct {
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	ExchangeRate float64 `json:"exchange_rate"`
}

type CurrencyResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Symbol       string  `json:"symbol"`
	ExchangeRate float64 `json:"exchange_rate"`
	SortOrder    int     `json:"sort_order"`
}

func NewCurrencyResponse(c *models.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:           c.ID.String(),
		Name:         c.Name,
		Symbol:       c.Symbol,
		ExchangeRate: c.ExchangeRate,
		SortOrder:    c.SortOrder,
	}
}

func NewCurrencyResponses(currencies []models.Currency) []CurrencyResponse {
	out := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		out[i] = NewCurrencyResponse(&currencies[i])
	}
	return out
}
