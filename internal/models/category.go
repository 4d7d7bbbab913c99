package models

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the two transaction types.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Category is an income or expense category. Income and expense
// categories live in disjoint namespaces: a transaction's category must
// belong to the namespace matching its type. Categories are
// soft-deleted; deleting one reassigns its transactions to a
// replacement category first.
type Category struct {
	ID        uuid.UUID       `db:"id"`
	UserID    uuid.UUID       `db:"user_id"`
	Type      TransactionType `db:"-"`
	Name      string          `db:"name"`
	Emoji     string          `db:"emoji"`
	SortOrder int             `db:"sort_order"`
	IsDeleted bool            `db:"is_deleted"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
}
