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

// AssetWithBalance pairs an asset with its derived current balance.
type AssetWithBalance struct {
	models.Asset
	Balance int64
}

type AssetService struct {
	assetRepo    *repository.AssetRepository
	categoryRepo *repository.AssetCategoryRepository
	currencyRepo *repository.CurrencyRepository
	txRepo       *repository.TransactionRepository
	transferRepo *repository.TransferRepository
	logger       *zap.Logger
}

func NewAssetService(
	assetRepo *repository.AssetRepository,
	categoryRepo *repository.AssetCategoryRepository,
	currencyRepo *repository.CurrencyRepository,
	txRepo *repository.TransactionRepository,
	transferRepo *repository.TransferRepository,
	logger *zap.Logger,
) *AssetService {
	return &AssetService{
		assetRepo:    assetRepo,
		categoryRepo: categoryRepo,
		currencyRepo: currencyRepo,
		txRepo:       txRepo,
		transferRepo: transferRepo,
		logger:       logger,
	}
}

func (s *AssetService) ListCategories(ctx context.Context, userID uuid.UUID) ([]models.AssetCategory, error) {
	return s.categoryRepo.ListByUser(ctx, userID)
}

func (s *AssetService) CreateCategory(ctx context.Context, userID uuid.UUID, req *dto.AssetCategoryRequest) (*models.AssetCategory, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	sortOrder, err := s.categoryRepo.NextSortOrder(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	category := &models.AssetCategory{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      req.Name,
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *AssetService) UpdateCategory(ctx context.Context, userID, id uuid.UUID, req *dto.AssetCategoryRequest) (*models.AssetCategory, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	category, err := s.categoryRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	category.Name = req.Name
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory refuses while the category still owns non-deleted
// assets.
func (s *AssetService) DeleteCategory(ctx context.Context, userID, id uuid.UUID) error {
	n, err := s.assetRepo.CountByCategory(ctx, userID, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrAssetCategoryInUse
	}

	if err := s.categoryRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *AssetService) ReorderCategories(ctx context.Context, userID uuid.UUID, ids []string) error {
	parsed, err := parseIDs(ids)
	if err != nil {
		return err
	}
	return s.categoryRepo.UpdateSortOrders(ctx, userID, ledger.AssignOrder(parsed))
}

func (s *AssetService) List(ctx context.Context, userID uuid.UUID) ([]models.Asset, error) {
	return s.assetRepo.ListByUser(ctx, userID)
}

// ListWithBalances derives every asset's current balance from full
// transaction and transfer history, nothing cached.
func (s *AssetService) ListWithBalances(ctx context.Context, userID uuid.UUID) ([]AssetWithBalance, error) {
	assets, err := s.assetRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	txs, err := s.txRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	transfers, err := s.transferRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	currencies, err := s.currencyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	rates := ledger.NewRates(currencies)
	out := make([]AssetWithBalance, len(assets))
	for i, asset := range assets {
		balance, err := ledger.ComputeBalance(asset, txs, transfers, rates)
		if err != nil {
			return nil, err
		}
		out[i] = AssetWithBalance{Asset: asset, Balance: balance}
	}
	return out, nil
}

func (s *AssetService) Create(ctx context.Context, userID uuid.UUID, req *dto.AssetRequest) (*models.Asset, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}
	categoryID, err := parseID(req.CategoryID)
	if err != nil {
		return nil, err
	}
	if _, err := s.categoryRepo.GetByID(ctx, userID, categoryID); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	currencyID, err := s.resolveCurrency(ctx, userID, req.CurrencyID)
	if err != nil {
		return nil, err
	}

	sortOrder, err := s.assetRepo.NextSortOrder(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	asset := &models.Asset{
		ID:             uuid.New(),
		UserID:         userID,
		CategoryID:     categoryID,
		CurrencyID:     currencyID,
		Name:           req.Name,
		InitialBalance: req.InitialBalance,
		SortOrder:      sortOrder,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.assetRepo.Create(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

func (s *AssetService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.AssetRequest) (*models.Asset, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	asset, err := s.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	categoryID, err := parseID(req.CategoryID)
	if err != nil {
		return nil, err
	}
	currencyID, err := s.resolveCurrency(ctx, userID, req.CurrencyID)
	if err != nil {
		return nil, err
	}

	asset.CategoryID = categoryID
	asset.CurrencyID = currencyID
	asset.Name = req.Name
	asset.InitialBalance = req.InitialBalance

	if err := s.assetRepo.Update(ctx, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// Delete soft-deletes: the asset disappears from lists but historical
// entries keep resolving.
func (s *AssetService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.assetRepo.SoftDelete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *AssetService) Reorder(ctx context.Context, userID uuid.UUID, req *dto.AssetReorderRequest) error {
	updates := make([]repository.AssetOrder, len(req.Assets))
	for i, item := range req.Assets {
		id, err := parseID(item.ID)
		if err != nil {
			return err
		}
		order := repository.AssetOrder{ID: id, SortOrder: item.SortOrder}
		if item.CategoryID != nil {
			categoryID, err := parseID(*item.CategoryID)
			if err != nil {
				return err
			}
			order.CategoryID = &categoryID
		}
		updates[i] = order
	}
	return s.assetRepo.UpdateSortOrders(ctx, userID, updates)
}

func (s *AssetService) get(ctx context.Context, userID, id uuid.UUID) (*models.Asset, error) {
	asset, err := s.assetRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return asset, nil
}

// resolveCurrency validates an optional currency reference. A nil id
// means the asset is denominated in base currency.
func (s *AssetService) resolveCurrency(ctx context.Context, userID uuid.UUID, raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := parseID(*raw)
	if err != nil {
		return nil, err
	}
	if _, err := s.currencyRepo.GetByID(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &id, nil
}
