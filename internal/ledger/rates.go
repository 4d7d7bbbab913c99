package ledger

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/SpiritFlag/Moneybook/internal/models"
)

// ErrCurrencyNotFound is returned when a record references a currency
// id that is not in the rate table. Conversions never fall back to a
// 1:1 rate on a failed lookup; only a nil currency id means "already
// base currency".
var ErrCurrencyNotFound = errors.New("currency not found")

// Rates resolves currency ids to their current exchange rates.
type Rates map[uuid.UUID]float64

// NewRates builds a rate table from the user's currencies.
func NewRates(currencies []models.Currency) Rates {
	r := make(Rates, len(currencies))
	for _, c := range currencies {
		r[c.ID] = c.ExchangeRate
	}
	return r
}

// Rate returns the exchange rate for id. A nil id is the base currency
// and converts at 1.
func (r Rates) Rate(id *uuid.UUID) (float64, error) {
	if id == nil {
		return 1, nil
	}
	rate, ok := r[*id]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrCurrencyNotFound, id)
	}
	return rate, nil
}
