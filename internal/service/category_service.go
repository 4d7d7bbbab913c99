package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SpiritFlag/Moneybook/internal/dto"
	"github.com/SpiritFlag/Moneybook/internal/ledger"
	"github.com/SpiritFlag/Moneybook/internal/models"
	"github.com/SpiritFlag/Moneybook/internal/repository"
)

// CategoryService manages the income and expense category namespaces.
type CategoryService struct {
	categoryRepo *repository.CategoryRepository
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo *repository.CategoryRepository, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *CategoryService) List(ctx context.Context, userID uuid.UUID, t models.TransactionType) ([]models.Category, error) {
	if !t.Valid() {
		return nil, ErrInvalidType
	}
	return s.categoryRepo.ListByUser(ctx, userID, t)
}

func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, t models.TransactionType, req *dto.CategoryRequest) (*models.Category, error) {
	if !t.Valid() {
		return nil, ErrInvalidType
	}
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	emoji := req.Emoji
	if emoji == "" {
		if t == models.TypeIncome {
			emoji = "💰"
		} else {
			emoji = "📦"
		}
	}

	sortOrder, err := s.categoryRepo.NextSortOrder(ctx, userID, t)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	category := &models.Category{
		ID:        uuid.New(),
		UserID:    userID,
		Type:      t,
		Name:      req.Name,
		Emoji:     emoji,
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, userID uuid.UUID, t models.TransactionType, id uuid.UUID, req *dto.CategoryRequest) (*models.Category, error) {
	if !t.Valid() {
		return nil, ErrInvalidType
	}
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	category, err := s.categoryRepo.GetByID(ctx, userID, t, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	category.Name = req.Name
	if req.Emoji != "" {
		category.Emoji = req.Emoji
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete soft-deletes the category after reassigning its transactions
// to the replacement. Reassignment and flagging run in one datastore
// transaction, so per-month totals grouped by type are identical
// before and after: only the category label moves.
func (s *CategoryService) Delete(ctx context.Context, userID uuid.UUID, t models.TransactionType, id uuid.UUID, req *dto.CategoryDeleteRequest) error {
	if !t.Valid() {
		return ErrInvalidType
	}

	replacementID, err := parseID(req.ReplacementID)
	if err != nil {
		return err
	}
	if replacementID == id {
		return ErrReplacementSameAsOld
	}

	replacement, err := s.categoryRepo.GetByID(ctx, userID, t, replacementID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if replacement.IsDeleted {
		return ErrNotFound
	}

	if err := s.categoryRepo.SoftDeleteWithReassign(ctx, userID, t, id, replacementID); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *CategoryService) Reorder(ctx context.Context, userID uuid.UUID, t models.TransactionType, ids []string) error {
	if !t.Valid() {
		return ErrInvalidType
	}
	parsed, err := parseIDs(ids)
	if err != nil {
		return err
	}
	return s.categoryRepo.UpdateSortOrders(ctx, userID, t, ledger.AssignOrder(parsed))
}
