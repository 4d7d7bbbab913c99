package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/SpiritFlag/Moneybook/internal/models"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func ptr[T any](v T) *T { return &v }

func TestComputeBalance_TransactionsOnly(t *testing.T) {
	asset := models.Asset{ID: uuid.New(), InitialBalance: 0}
	other := uuid.New()

	txs := []models.Transaction{
		{AssetID: asset.ID, Type: models.TypeIncome, Amount: 5000},
		{AssetID: asset.ID, Type: models.TypeExpense, Amount: 1200, AdjustmentAmount: 200},
		{AssetID: other, Type: models.TypeIncome, Amount: 99999},
	}

	got, err := ComputeBalance(asset, txs, nil, Rates{})
	if err != nil {
		t.Fatalf("ComputeBalance() error = %v", err)
	}
	if want := int64(5000 - 1000); got != want {
		t.Errorf("ComputeBalance() = %d, want %d", got, want)
	}
}

func TestComputeBalance_InitialBalanceAndOverdraft(t *testing.T) {
	asset := models.Asset{ID: uuid.New(), InitialBalance: 300}
	txs := []models.Transaction{
		{AssetID: asset.ID, Type: models.TypeExpense, Amount: 1000},
	}

	got, err := ComputeBalance(asset, txs, nil, Rates{})
	if err != nil {
		t.Fatalf("ComputeBalance() error = %v", err)
	}
	if got != -700 {
		t.Errorf("ComputeBalance() = %d, want -700", got)
	}
}

// Transactions on an auxiliary-currency asset carry both the native
// originals and the converted base figures; the balance uses the
// native figures as entered.
func TestComputeBalance_NativeFiguresPreferred(t *testing.T) {
	currencyID := uuid.New()
	asset := models.Asset{ID: uuid.New(), CurrencyID: &currencyID, InitialBalance: 50}
	rates := Rates{currencyID: 21.5}

	txs := []models.Transaction{
		{
			AssetID:                  asset.ID,
			Type:                     models.TypeIncome,
			Amount:                   2150, // 100 * 21.5
			AdjustmentAmount:         215,
			OriginalAmount:           ptr(int64(100)),
			OriginalAdjustmentAmount: ptr(int64(10)),
			OriginalCurrencyID:       &currencyID,
			ExchangeRate:             ptr(21.5),
		},
	}

	got, err := ComputeBalance(asset, txs, nil, rates)
	if err != nil {
		t.Fatalf("ComputeBalance() error = %v", err)
	}
	if want := int64(50 + 90); got != want {
		t.Errorf("ComputeBalance() = %d, want %d", got, want)
	}
}

func TestComputeBalance_TransferConservation(t *testing.T) {
	a := models.Asset{ID: uuid.New(), InitialBalance: 10000}
	b := models.Asset{ID: uuid.New(), InitialBalance: 0}

	transfers := []models.Transfer{
		{FromAssetID: a.ID, ToAssetID: b.ID, Amount: 3000},
	}

	balA, err := ComputeBalance(a, nil, transfers, Rates{})
	if err != nil {
		t.Fatalf("ComputeBalance(a) error = %v", err)
	}
	balB, err := ComputeBalance(b, nil, transfers, Rates{})
	if err != nil {
		t.Fatalf("ComputeBalance(b) error = %v", err)
	}

	if balA != 7000 {
		t.Errorf("balance(a) = %d, want 7000", balA)
	}
	if balB != 3000 {
		t.Errorf("balance(b) = %d, want 3000", balB)
	}
}

// A transfer into an auxiliary-currency asset converts the base amount
// at the asset's current rate.
func TestComputeBalance_TransferIntoAuxiliaryCurrency(t *testing.T) {
	currencyID := uuid.New()
	won := models.Asset{ID: uuid.New(), InitialBalance: 5000}
	points := models.Asset{ID: uuid.New(), CurrencyID: &currencyID, InitialBalance: 0}
	rates := Rates{currencyID: 21.5}

	transfers := []models.Transfer{
		{FromAssetID: won.ID, ToAssetID: points.ID, Amount: 2150},
	}

	balWon, err := ComputeBalance(won, nil, transfers, rates)
	if err != nil {
		t.Fatalf("ComputeBalance(won) error = %v", err)
	}
	balPoints, err := ComputeBalance(points, nil, transfers, rates)
	if err != nil {
		t.Fatalf("ComputeBalance(points) error = %v", err)
	}

	if balWon != 2850 {
		t.Errorf("balance(won) = %d, want 2850", balWon)
	}
	if balPoints != 100 {
		t.Errorf("balance(points) = %d, want 100", balPoints)
	}
}

// Per-leg transfer adjustments are recorded but never folded into the
// running balance.
func TestComputeBalance_TransferLegAdjustmentsIgnored(t *testing.T) {
	a := models.Asset{ID: uuid.New(), InitialBalance: 10000}

	transfers := []models.Transfer{
		{
			FromAssetID:          a.ID,
			ToAssetID:            uuid.New(),
			Amount:               3000,
			FromAdjustmentAmount: 500,
			FromAdjustmentIsPlus: false,
		},
	}

	got, err := ComputeBalance(a, nil, transfers, Rates{})
	if err != nil {
		t.Fatalf("ComputeBalance() error = %v", err)
	}
	if got != 7000 {
		t.Errorf("ComputeBalance() = %d, want 7000", got)
	}
}

func TestComputeBalance_UnknownCurrencyFails(t *testing.T) {
	missing := uuid.New()
	asset := models.Asset{ID: uuid.New(), CurrencyID: &missing}

	_, err := ComputeBalance(asset, nil, nil, Rates{})
	if !errors.Is(err, ErrCurrencyNotFound) {
		t.Errorf("ComputeBalance() error = %v, want ErrCurrencyNotFound", err)
	}
}
