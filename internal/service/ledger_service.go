package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SpiritFlag/Moneybook/internal/dto"
	"github.com/SpiritFlag/Moneybook/internal/ledger"
	"github.com/SpiritFlag/Moneybook/internal/models"
	"github.com/SpiritFlag/Moneybook/internal/repository"
)

const (
	exportTransactionLimit = 100
	exportTransferLimit    = 50
)

// LedgerService assembles the read-side views: the monthly book, the
// per-asset and per-category histories, and the bulk export.
type LedgerService struct {
	txRepo            *repository.TransactionRepository
	transferRepo      *repository.TransferRepository
	assetRepo         *repository.AssetRepository
	assetCategoryRepo *repository.AssetCategoryRepository
	categoryRepo      *repository.CategoryRepository
	currencyRepo      *repository.CurrencyRepository
	logger            *zap.Logger
}

func NewLedgerService(
	txRepo *repository.TransactionRepository,
	transferRepo *repository.TransferRepository,
	assetRepo *repository.AssetRepository,
	assetCategoryRepo *repository.AssetCategoryRepository,
	categoryRepo *repository.CategoryRepository,
	currencyRepo *repository.CurrencyRepository,
	logger *zap.Logger,
) *LedgerService {
	return &LedgerService{
		txRepo:            txRepo,
		transferRepo:      transferRepo,
		assetRepo:         assetRepo,
		assetCategoryRepo: assetCategoryRepo,
		categoryRepo:      categoryRepo,
		currencyRepo:      currencyRepo,
		logger:            logger,
	}
}

// MonthView returns the full ledger for one calendar month, days
// descending, with the month summary over transactions only.
func (s *LedgerService) MonthView(ctx context.Context, userID uuid.UUID, year int, month time.Month) (ledger.View, error) {
	txs, err := s.txRepo.ListByMonth(ctx, userID, year, month)
	if err != nil {
		return ledger.View{}, err
	}
	transfers, err := s.transferRepo.ListByMonth(ctx, userID, year, month)
	if err != nil {
		return ledger.View{}, err
	}
	return ledger.BuildView(txs, transfers, nil), nil
}

// AssetView returns the asset's whole history, transfers touching
// either leg included.
func (s *LedgerService) AssetView(ctx context.Context, userID uuid.UUID, assetID uuid.UUID) (ledger.View, error) {
	txs, err := s.txRepo.ListByAsset(ctx, userID, assetID)
	if err != nil {
		return ledger.View{}, err
	}
	transfers, err := s.transferRepo.ListByAsset(ctx, userID, assetID)
	if err != nil {
		return ledger.View{}, err
	}
	return ledger.BuildView(txs, transfers, &ledger.Filter{AssetID: &assetID}), nil
}

// CategoryView returns every transaction booked under one category.
// Transfers carry no category, so none appear.
func (s *LedgerService) CategoryView(ctx context.Context, userID uuid.UUID, t models.TransactionType, categoryID uuid.UUID) (ledger.View, error) {
	if !t.Valid() {
		return ledger.View{}, ErrInvalidType
	}
	txs, err := s.txRepo.ListByCategory(ctx, userID, categoryID, t)
	if err != nil {
		return ledger.View{}, err
	}
	return ledger.BuildView(txs, nil, &ledger.Filter{Type: &t, CategoryID: &categoryID}), nil
}

// Export collects the recent activity plus every reference record for
// external reporting tools.
func (s *LedgerService) Export(ctx context.Context, userID uuid.UUID) (*dto.ExportResponse, error) {
	txs, err := s.txRepo.ListRecent(ctx, userID, exportTransactionLimit)
	if err != nil {
		return nil, err
	}
	transfers, err := s.transferRepo.ListRecent(ctx, userID, exportTransferLimit)
	if err != nil {
		return nil, err
	}
	incomeCategories, err := s.categoryRepo.ListByUser(ctx, userID, models.TypeIncome)
	if err != nil {
		return nil, err
	}
	expenseCategories, err := s.categoryRepo.ListByUser(ctx, userID, models.TypeExpense)
	if err != nil {
		return nil, err
	}
	assets, err := s.assetRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	assetCategories, err := s.assetCategoryRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	currencies, err := s.currencyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dto.ExportResponse{
		Transactions:      dto.NewTransactionResponses(txs),
		Transfers:         dto.NewTransferResponses(transfers),
		IncomeCategories:  dto.NewCategoryResponses(incomeCategories),
		ExpenseCategories: dto.NewCategoryResponses(expenseCategories),
		Assets:            dto.NewAssetResponses(assets),
		AssetCategories:   dto.NewAssetCategoryResponses(assetCategories),
		Currencies:        dto.NewCurrencyResponses(currencies),
	}, nil
}
