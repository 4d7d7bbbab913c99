package ledger

import (
	"github.com/google/uuid"
)

// OrderUpdate pairs a record id with its new display position.
type OrderUpdate struct {
	ID        uuid.UUID `json:"id"`
	SortOrder int       `json:"sort_order"`
}

// AssignOrder maps an ordered id list to zero-based sort orders. Sort
// order is a display nicety: balance computation never consults it,
// and the view tolerates duplicates left by a partially applied batch.
func AssignOrder(ids []uuid.UUID) []OrderUpdate {
	updates := make([]OrderUpdate, len(ids))
	for i, id := range ids {
		updates[i] = OrderUpdate{ID: id, SortOrder: i}
	}
	return updates
}
