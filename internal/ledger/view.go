package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/SpiritFlag/Moneybook/internal/models"
)

type EntryKind string

const (
	EntryIncome   EntryKind = "income"
	EntryExpense  EntryKind = "expense"
	EntryTransfer EntryKind = "transfer"
)

// Entry is one row of the unified ledger stream: either a transaction
// or a transfer, with the common projection (date, sort order, kind)
// lifted out. Exactly one of Transaction and Transfer is set,
// discriminated by Kind.
type Entry struct {
	Kind        EntryKind
	Date        time.Time
	SortOrder   int
	Transaction *models.Transaction
	Transfer    *models.Transfer

	seq int // insertion order, stable tie-break within a day
}

// ID returns the underlying record's id.
func (e Entry) ID() uuid.UUID {
	if e.Kind == EntryTransfer {
		return e.Transfer.ID
	}
	return e.Transaction.ID
}

// Filter narrows the ledger view. A category filter excludes transfers
// entirely (transfers have no category); an asset filter keeps
// transfers touching the asset on either leg.
type Filter struct {
	Type       *models.TransactionType
	CategoryID *uuid.UUID
	AssetID    *uuid.UUID
}

// Summary holds effective-amount totals in base currency. Transfers
// never contribute: a transfer is a reallocation, not income or
// expense.
type Summary struct {
	Income  int64 `json:"income"`
	Expense int64 `json:"expense"`
	Balance int64 `json:"balance"`
}

// DayGroup is all entries of one calendar day, ordered by manual sort
// order, with the day's own summary.
type DayGroup struct {
	Date    string
	Entries []Entry
	Summary Summary
}

// View is the date-grouped ledger with per-day and whole-window
// summaries. Days are ordered most recent first.
type View struct {
	Days    []DayGroup
	Summary Summary
}

const dayFormat = "2006-01-02"

// BuildView groups transactions and transfers into a single
// date-ordered stream, applies the filter, and computes summaries.
// Within a day, entries are ordered by sort order ascending; duplicate
// sort orders (a partially applied reorder) fall back to insertion
// order, so grouping never breaks.
func BuildView(txs []models.Transaction, transfers []models.Transfer, filter *Filter) View {
	var entries []Entry
	for i := range txs {
		tx := &txs[i]
		if filter != nil {
			if filter.Type != nil && tx.Type != *filter.Type {
				continue
			}
			if filter.CategoryID != nil && tx.CategoryID != *filter.CategoryID {
				continue
			}
			if filter.AssetID != nil && tx.AssetID != *filter.AssetID {
				continue
			}
		}
		entries = append(entries, Entry{
			Kind:        EntryKind(tx.Type),
			Date:        tx.TransactionDate,
			SortOrder:   tx.SortOrder,
			Transaction: tx,
			seq:         len(entries),
		})
	}
	for i := range transfers {
		tr := &transfers[i]
		if filter != nil {
			if filter.Type != nil || filter.CategoryID != nil {
				continue
			}
			if filter.AssetID != nil && tr.FromAssetID != *filter.AssetID && tr.ToAssetID != *filter.AssetID {
				continue
			}
		}
		entries = append(entries, Entry{
			Kind:      EntryTransfer,
			Date:      tr.TransferDate,
			SortOrder: tr.SortOrder,
			Transfer:  tr,
			seq:       len(entries),
		})
	}

	byDate := make(map[string][]Entry)
	for _, e := range entries {
		key := e.Date.Format(dayFormat)
		byDate[key] = append(byDate[key], e)
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	view := View{Days: make([]DayGroup, 0, len(dates))}
	for _, date := range dates {
		group := byDate[date]
		sort.SliceStable(group, func(i, j int) bool {
			if group[i].SortOrder != group[j].SortOrder {
				return group[i].SortOrder < group[j].SortOrder
			}
			return group[i].seq < group[j].seq
		})
		view.Days = append(view.Days, DayGroup{
			Date:    date,
			Entries: group,
			Summary: summarize(group),
		})
	}
	view.Summary = summarize(entries)
	return view
}

// summarize totals effective amounts over the base-currency figures.
func summarize(entries []Entry) Summary {
	var s Summary
	for _, e := range entries {
		switch e.Kind {
		case EntryIncome:
			s.Income += EffectiveAmount(e.Transaction.Amount, e.Transaction.AdjustmentAmount)
		case EntryExpense:
			s.Expense += EffectiveAmount(e.Transaction.Amount, e.Transaction.AdjustmentAmount)
		}
	}
	s.Balance = s.Income - s.Expense
	return s
}
