package dto

import (
	"github.com/SpiritFlag/Moneybook/internal/ledger"
)

// LedgerEntryResponse is one row of the unified stream. Exactly one of
// Transaction and Transfer is set, discriminated by Kind.
type LedgerEntryResponse struct {
	Kind        string               `json:"kind"`
	Transaction *TransactionResponse `json:"transaction,omitempty"`
	Transfer    *TransferResponse    `json:"transfer,omitempty"`
}

type LedgerDayResponse struct {
	Date    string                `json:"date"`
	Summary ledger.Summary        `json:"summary"`
	Entries []LedgerEntryResponse `json:"entries"`
}

type LedgerViewResponse struct {
	Summary ledger.Summary      `json:"summary"`
	Days    []LedgerDayResponse `json:"days"`
}

func NewLedgerViewResponse(view ledger.View) LedgerViewResponse {
	resp := LedgerViewResponse{
		Summary: view.Summary,
		Days:    make([]LedgerDayResponse, len(view.Days)),
	}
	for i, day := range view.Days {
		entries := make([]LedgerEntryResponse, len(day.Entries))
		for j, e := range day.Entries {
			entry := LedgerEntryResponse{Kind: string(e.Kind)}
			if e.Kind == ledger.EntryTransfer {
				tr := NewTransferResponse(e.Transfer)
				entry.Transfer = &tr
			} else {
				tx := NewTransactionResponse(e.Transaction)
				entry.Transaction = &tx
			}
			entries[j] = entry
		}
		resp.Days[i] = LedgerDayResponse{
			Date:    day.Date,
			Summary: day.Summary,
			Entries: entries,
		}
	}
	return resp
}

// ExportResponse is the bulk read-only dump served to external
// reporting tools behind the shared-secret key.
type ExportResponse struct {
	Transactions      []TransactionResponse   `json:"transactions"`
	Transfers         []TransferResponse      `json:"transfers"`
	IncomeCategories  []CategoryResponse      `json:"income_categories"`
	ExpenseCategories []CategoryResponse      `json:"expense_categories"`
	Assets            []AssetResponse         `json:"assets"`
	AssetCategories   []AssetCategoryResponse `json:"asset_categories"`
	Currencies        []CurrencyResponse      `json:"currencies"`
}
