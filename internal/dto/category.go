package dto

import (
	"github.com/SpiritFlag/Moneybook/internal/models"
)

type CategoryRequest struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

// CategoryDeleteRequest names the replacement category that inherits
// the deleted category's transactions.
type CategoryDeleteRequest struct {
	ReplacementID string `json:"replacement_id"`
}

type CategoryResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Name      string `json:"name"`
	Emoji     string `json:"emoji"`
	SortOrder int    `json:"sort_order"`
}

func NewCategoryResponse(c *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID.String(),
		Type:      string(c.Type),
		Name:      c.Name,
		Emoji:     c.Emoji,
		SortOrder: c.SortOrder,
	}
}

func NewCategoryResponses(categories []models.Category) []CategoryResponse {
	out := make([]CategoryResponse, len(categories))
	for i := range categories {
		out[i] = NewCategoryResponse(&categories[i])
	}
	return out
}

// ReorderRequest is the generic ordered id list for lists whose
// entries have no extra move semantics.
type ReorderRequest struct {
	IDs []string `json:"ids"`
}
