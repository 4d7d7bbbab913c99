package repository

import (
	"testing"

	"github.com/SpiritFlag/Moneybook/internal/models"
)

func TestCategoryTable(t *testing.T) {
	tests := []struct {
		t    models.TransactionType
		want string
	}{
		{models.TypeIncome, "income_categories"},
		{models.TypeExpense, "expense_categories"},
	}
	for _, tt := range tests {
		if got := categoryTable(tt.t); got != tt.want {
			t.Errorf("categoryTable(%q) = %q, want %q", tt.t, got, tt.want)
		}
	}
}
