package ledger

import (
	"testing"

	"github.com/google/uuid"

	"github.com/SpiritFlag/Moneybook/internal/models"
)

func TestBuildView_MonthSummary(t *testing.T) {
	txs := []models.Transaction{
		{ID: uuid.New(), Type: models.TypeIncome, TransactionDate: day("2026-08-03"), Amount: 1000},
		{ID: uuid.New(), Type: models.TypeExpense, TransactionDate: day("2026-08-10"), Amount: 400, AdjustmentAmount: 50},
	}
	transfers := []models.Transfer{
		{ID: uuid.New(), TransferDate: day("2026-08-10"), FromAssetID: uuid.New(), ToAssetID: uuid.New(), Amount: 99999},
	}

	view := BuildView(txs, transfers, nil)

	want := Summary{Income: 1000, Expense: 350, Balance: 650}
	if view.Summary != want {
		t.Errorf("Summary = %+v, want %+v", view.Summary, want)
	}
}

func TestBuildView_GroupingAndOrder(t *testing.T) {
	txs := []models.Transaction{
		{ID: uuid.New(), Type: models.TypeExpense, TransactionDate: day("2026-08-05"), Amount: 100, SortOrder: 1},
		{ID: uuid.New(), Type: models.TypeIncome, TransactionDate: day("2026-08-05"), Amount: 200, SortOrder: 0},
		{ID: uuid.New(), Type: models.TypeExpense, TransactionDate: day("2026-08-20"), Amount: 300, SortOrder: 0},
	}
	transfers := []models.Transfer{
		{ID: uuid.New(), TransferDate: day("2026-08-05"), FromAssetID: uuid.New(), ToAssetID: uuid.New(), Amount: 500, SortOrder: 2},
	}

	view := BuildView(txs, transfers, nil)

	if len(view.Days) != 2 {
		t.Fatalf("len(Days) = %d, want 2", len(view.Days))
	}
	// Most recent date first.
	if view.Days[0].Date != "2026-08-20" || view.Days[1].Date != "2026-08-05" {
		t.Errorf("dates = %q, %q, want 2026-08-20, 2026-08-05", view.Days[0].Date, view.Days[1].Date)
	}

	group := view.Days[1]
	if len(group.Entries) != 3 {
		t.Fatalf("len(entries on 08-05) = %d, want 3", len(group.Entries))
	}
	wantKinds := []EntryKind{EntryIncome, EntryExpense, EntryTransfer}
	for i, e := range group.Entries {
		if e.Kind != wantKinds[i] {
			t.Errorf("entry[%d].Kind = %s, want %s", i, e.Kind, wantKinds[i])
		}
	}

	wantDay := Summary{Income: 200, Expense: 100, Balance: 100}
	if group.Summary != wantDay {
		t.Errorf("day summary = %+v, want %+v", group.Summary, wantDay)
	}
}

// Duplicate sort orders, left behind by a partially applied reorder
// batch, fall back to insertion order instead of corrupting the group.
func TestBuildView_DuplicateSortOrdersStable(t *testing.T) {
	first := uuid.New()
	second := uuid.New()
	txs := []models.Transaction{
		{ID: first, Type: models.TypeExpense, TransactionDate: day("2026-08-05"), Amount: 1, SortOrder: 0},
		{ID: second, Type: models.TypeExpense, TransactionDate: day("2026-08-05"), Amount: 2, SortOrder: 0},
	}

	view := BuildView(txs, nil, nil)
	entries := view.Days[0].Entries
	if entries[0].ID() != first || entries[1].ID() != second {
		t.Errorf("duplicate sort orders reordered entries")
	}
}

func TestBuildView_CategoryFilterExcludesTransfers(t *testing.T) {
	wanted := uuid.New()
	otherCat := uuid.New()
	expense := models.TypeExpense

	txs := []models.Transaction{
		{ID: uuid.New(), Type: models.TypeExpense, CategoryID: wanted, TransactionDate: day("2026-08-01"), Amount: 100},
		{ID: uuid.New(), Type: models.TypeExpense, CategoryID: otherCat, TransactionDate: day("2026-08-01"), Amount: 200},
		{ID: uuid.New(), Type: models.TypeIncome, CategoryID: wanted, TransactionDate: day("2026-08-01"), Amount: 300},
	}
	transfers := []models.Transfer{
		{ID: uuid.New(), TransferDate: day("2026-08-01"), FromAssetID: uuid.New(), ToAssetID: uuid.New(), Amount: 400},
	}

	view := BuildView(txs, transfers, &Filter{Type: &expense, CategoryID: &wanted})

	if len(view.Days) != 1 || len(view.Days[0].Entries) != 1 {
		t.Fatalf("filtered view has %d days, want exactly 1 day with 1 entry", len(view.Days))
	}
	entry := view.Days[0].Entries[0]
	if entry.Kind != EntryExpense || entry.Transaction.CategoryID != wanted {
		t.Errorf("filtered entry = %+v, want the wanted-category expense", entry)
	}
}

func TestBuildView_AssetFilterKeepsTouchingTransfers(t *testing.T) {
	assetID := uuid.New()
	txs := []models.Transaction{
		{ID: uuid.New(), Type: models.TypeIncome, AssetID: assetID, TransactionDate: day("2026-08-01"), Amount: 100},
		{ID: uuid.New(), Type: models.TypeIncome, AssetID: uuid.New(), TransactionDate: day("2026-08-01"), Amount: 200},
	}
	transfers := []models.Transfer{
		{ID: uuid.New(), TransferDate: day("2026-08-02"), FromAssetID: assetID, ToAssetID: uuid.New(), Amount: 300},
		{ID: uuid.New(), TransferDate: day("2026-08-02"), FromAssetID: uuid.New(), ToAssetID: assetID, Amount: 400},
		{ID: uuid.New(), TransferDate: day("2026-08-02"), FromAssetID: uuid.New(), ToAssetID: uuid.New(), Amount: 500},
	}

	view := BuildView(txs, transfers, &Filter{AssetID: &assetID})

	var total int
	for _, d := range view.Days {
		total += len(d.Entries)
	}
	if total != 3 {
		t.Errorf("asset-filtered view has %d entries, want 3", total)
	}
}

// Reassigning transactions to another category of the same type, the
// arithmetic half of delete-with-replacement, must leave every summary
// untouched: totals group by (day, type), never by category.
func TestBuildView_CategoryReassignmentKeepsSummaries(t *testing.T) {
	oldCat := uuid.New()
	replacement := uuid.New()
	otherCat := uuid.New()

	txs := []models.Transaction{
		{ID: uuid.New(), Type: models.TypeExpense, CategoryID: oldCat, TransactionDate: day("2026-08-03"), Amount: 700, AdjustmentAmount: 100},
		{ID: uuid.New(), Type: models.TypeExpense, CategoryID: oldCat, TransactionDate: day("2026-08-17"), Amount: 250},
		{ID: uuid.New(), Type: models.TypeExpense, CategoryID: otherCat, TransactionDate: day("2026-08-17"), Amount: 90},
		{ID: uuid.New(), Type: models.TypeIncome, CategoryID: uuid.New(), TransactionDate: day("2026-08-03"), Amount: 3000},
	}

	before := BuildView(txs, nil, nil)

	for i := range txs {
		if txs[i].CategoryID == oldCat {
			txs[i].CategoryID = replacement
		}
	}
	after := BuildView(txs, nil, nil)

	if after.Summary != before.Summary {
		t.Errorf("month summary changed: %+v -> %+v", before.Summary, after.Summary)
	}
	if len(after.Days) != len(before.Days) {
		t.Fatalf("day count changed: %d -> %d", len(before.Days), len(after.Days))
	}
	for i := range before.Days {
		if after.Days[i].Date != before.Days[i].Date || after.Days[i].Summary != before.Days[i].Summary {
			t.Errorf("day %s summary changed: %+v -> %+v",
				before.Days[i].Date, before.Days[i].Summary, after.Days[i].Summary)
		}
	}
}

func TestAssignOrder(t *testing.T) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	updates := AssignOrder(ids)
	if len(updates) != 3 {
		t.Fatalf("len(updates) = %d, want 3", len(updates))
	}
	for i, u := range updates {
		if u.ID != ids[i] || u.SortOrder != i {
			t.Errorf("updates[%d] = %+v, want {%s %d}", i, u, ids[i], i)
		}
	}
}
