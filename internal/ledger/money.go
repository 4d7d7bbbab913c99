// Package ledger implements the balance and reconciliation arithmetic
// of the moneybook: effective amounts, currency conversion, asset
// balances and the unified date-grouped ledger view. Everything here
// is pure; repositories feed it rows and services hand the results to
// the HTTP layer.
package ledger

import (
	"github.com/shopspring/decimal"
)

// EffectiveAmount is the amount actually reflected in balances and
// summaries: the principal minus its adjustment (discount, deduction).
// The result is not clamped; an adjustment larger than the amount
// yields a negative effective amount.
func EffectiveAmount(amount, adjustment int64) int64 {
	return amount - adjustment
}

// ToBase converts a native-currency figure to base currency at
// the given rate, rounding half away from zero. Repeated conversions
// are not associative; callers convert once and keep the result.
func ToBase(x int64, rate float64) int64 {
	return decimal.NewFromInt(x).Mul(decimal.NewFromFloat(rate)).Round(0).IntPart()
}

// FromBase converts a base-currency figure back to a currency with the
// given rate, rounding half away from zero. ToBase and FromBase do not
// round-trip losslessly; that mirrors real exchange rounding and is
// not a bug.
func FromBase(x int64, rate float64) int64 {
	return decimal.NewFromInt(x).Div(decimal.NewFromFloat(rate)).Round(0).IntPart()
}
