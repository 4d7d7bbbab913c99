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

type TransactionService struct {
	txRepo       *repository.TransactionRepository
	assetRepo    *repository.AssetRepository
	categoryRepo *repository.CategoryRepository
	currencyRepo *repository.CurrencyRepository
	logger       *zap.Logger
}

func NewTransactionService(
	txRepo *repository.TransactionRepository,
	assetRepo *repository.AssetRepository,
	categoryRepo *repository.CategoryRepository,
	currencyRepo *repository.CurrencyRepository,
	logger *zap.Logger,
) *TransactionService {
	return &TransactionService{
		txRepo:       txRepo,
		assetRepo:    assetRepo,
		categoryRepo: categoryRepo,
		currencyRepo: currencyRepo,
		logger:       logger,
	}
}

func (s *TransactionService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	tx, err := s.txRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tx, nil
}

func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, req *dto.TransactionRequest) (*models.Transaction, error) {
	tx, err := s.build(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	sortOrder, err := s.txRepo.NextSortOrder(ctx, userID, tx.TransactionDate)
	if err != nil {
		return nil, err
	}
	tx.SortOrder = sortOrder

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *TransactionService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.TransactionRequest) (*models.Transaction, error) {
	existing, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	tx, err := s.build(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	tx.ID = existing.ID
	tx.SortOrder = existing.SortOrder
	tx.CreatedAt = existing.CreatedAt

	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (s *TransactionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.txRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *TransactionService) Reorder(ctx context.Context, userID uuid.UUID, ids []string) error {
	parsed, err := parseIDs(ids)
	if err != nil {
		return err
	}
	return s.txRepo.UpdateSortOrders(ctx, userID, ledger.AssignOrder(parsed))
}

// build validates the request and assembles the stored row. Amounts
// arrive in the asset's own currency; for an auxiliary-currency asset
// they are converted to base currency at the currency's current rate
// and the native figures are kept as the snapshot.
func (s *TransactionService) build(ctx context.Context, userID uuid.UUID, req *dto.TransactionRequest) (*models.Transaction, error) {
	t := models.TransactionType(req.Type)
	if !t.Valid() {
		return nil, ErrInvalidType
	}
	if req.Title == "" {
		return nil, ErrTitleRequired
	}
	if req.Amount <= 0 {
		return nil, ErrAmountNotPositive
	}
	// A larger adjustment than the amount is allowed and yields a
	// negative effective amount.
	if req.AdjustmentAmount < 0 {
		return nil, ErrNegativeAdjustment
	}

	date, err := parseDate(req.TransactionDate)
	if err != nil {
		return nil, err
	}

	assetID, err := parseID(req.AssetID)
	if err != nil {
		return nil, err
	}
	asset, err := s.assetRepo.GetByID(ctx, userID, assetID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if asset.IsDeleted {
		return nil, ErrNotFound
	}

	categoryID, err := parseID(req.CategoryID)
	if err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.GetByID(ctx, userID, t, categoryID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if category.IsDeleted {
		return nil, ErrNotFound
	}

	now := time.Now()
	tx := &models.Transaction{
		ID:               uuid.New(),
		UserID:           userID,
		Type:             t,
		TransactionDate:  date,
		AssetID:          assetID,
		CategoryID:       categoryID,
		Amount:           req.Amount,
		AdjustmentAmount: req.AdjustmentAmount,
		AdjustmentMemo:   optionalString(req.AdjustmentMemo),
		Title:            req.Title,
		Memo:             optionalString(req.Memo),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if asset.CurrencyID != nil {
		currency, err := s.currencyRepo.GetByID(ctx, userID, *asset.CurrencyID)
		if err != nil {
			if errors.Is(err, repository.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, err
		}

		original := req.Amount
		originalAdjustment := req.AdjustmentAmount
		tx.Amount = ledger.ToBase(original, currency.ExchangeRate)
		tx.AdjustmentAmount = ledger.ToBase(originalAdjustment, currency.ExchangeRate)
		tx.OriginalAmount = &original
		if originalAdjustment > 0 {
			tx.OriginalAdjustmentAmount = &originalAdjustment
		}
		tx.OriginalCurrencyID = asset.CurrencyID
		tx.ExchangeRate = &currency.ExchangeRate
	}

	return tx, nil
}
