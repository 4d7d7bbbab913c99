package ledger

import (
	"github.com/SpiritFlag/Moneybook/internal/models"
)

// ComputeBalance derives an asset's current balance, in the asset's
// own currency, from its initial balance plus every transaction and
// transfer touching it. Nothing is cached: the balance is recomputed
// from full history on every read, so it can never drift from the
// underlying ledger.
//
// Transactions on an auxiliary-currency asset keep their user-entered
// native figures; those are used directly, without re-applying the
// rate. Transfer amounts are stored in base currency and are converted
// into the asset's currency at its current rate. Per-leg transfer
// adjustments are bookkeeping on the transfer record and do not feed
// the running balance.
//
// The result may be negative; overdraft is permitted.
func ComputeBalance(asset models.Asset, txs []models.Transaction, transfers []models.Transfer, rates Rates) (int64, error) {
	rate, err := rates.Rate(asset.CurrencyID)
	if err != nil {
		return 0, err
	}

	balance := asset.InitialBalance

	for _, tx := range txs {
		if tx.AssetID != asset.ID {
			continue
		}
		amount := tx.Amount
		if tx.OriginalAmount != nil {
			amount = *tx.OriginalAmount
		}
		adjustment := tx.AdjustmentAmount
		if tx.OriginalAdjustmentAmount != nil {
			adjustment = *tx.OriginalAdjustmentAmount
		}
		eff := EffectiveAmount(amount, adjustment)
		if tx.Type == models.TypeIncome {
			balance += eff
		} else {
			balance -= eff
		}
	}

	for _, tr := range transfers {
		if tr.FromAssetID != asset.ID && tr.ToAssetID != asset.ID {
			continue
		}
		amount := tr.Amount
		if asset.CurrencyID != nil {
			amount = FromBase(tr.Amount, rate)
		}
		if tr.FromAssetID == asset.ID {
			balance -= amount
		}
		if tr.ToAssetID == asset.ID {
			balance += amount
		}
	}

	return balance, nil
}
