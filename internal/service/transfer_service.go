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

type TransferService struct {
	transferRepo *repository.TransferRepository
	assetRepo    *repository.AssetRepository
	currencyRepo *repository.CurrencyRepository
	logger       *zap.Logger
}

func NewTransferService(
	transferRepo *repository.TransferRepository,
	assetRepo *repository.AssetRepository,
	currencyRepo *repository.CurrencyRepository,
	logger *zap.Logger,
) *TransferService {
	return &TransferService{
		transferRepo: transferRepo,
		assetRepo:    assetRepo,
		currencyRepo: currencyRepo,
		logger:       logger,
	}
}

func (s *TransferService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Transfer, error) {
	tr, err := s.transferRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return tr, nil
}

func (s *TransferService) Create(ctx context.Context, userID uuid.UUID, req *dto.TransferRequest) (*models.Transfer, error) {
	tr, err := s.build(ctx, userID, req)
	if err != nil {
		return nil, err
	}

	sortOrder, err := s.transferRepo.NextSortOrder(ctx, userID, tr.TransferDate)
	if err != nil {
		return nil, err
	}
	tr.SortOrder = sortOrder

	if err := s.transferRepo.Create(ctx, tr); err != nil {
		return nil, err
	}
	return tr, nil
}

func (s *TransferService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.TransferRequest) (*models.Transfer, error) {
	existing, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	tr, err := s.build(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	tr.ID = existing.ID
	tr.SortOrder = existing.SortOrder
	tr.CreatedAt = existing.CreatedAt

	if err := s.transferRepo.Update(ctx, tr); err != nil {
		return nil, err
	}
	return tr, nil
}

func (s *TransferService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.transferRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *TransferService) Reorder(ctx context.Context, userID uuid.UUID, ids []string) error {
	parsed, err := parseIDs(ids)
	if err != nil {
		return err
	}
	return s.transferRepo.UpdateSortOrders(ctx, userID, ledger.AssignOrder(parsed))
}

// build validates the request and assembles the stored row. The amount
// is entered in the source asset's currency; when that asset uses an
// auxiliary currency the amount is converted to base at the currency's
// current rate and the native figure kept as the snapshot.
func (s *TransferService) build(ctx context.Context, userID uuid.UUID, req *dto.TransferRequest) (*models.Transfer, error) {
	if req.Amount <= 0 {
		return nil, ErrAmountNotPositive
	}
	if req.FromAdjustmentAmount < 0 || req.ToAdjustmentAmount < 0 {
		return nil, ErrNegativeAdjustment
	}

	date, err := parseDate(req.TransferDate)
	if err != nil {
		return nil, err
	}

	fromID, err := parseID(req.FromAssetID)
	if err != nil {
		return nil, err
	}
	toID, err := parseID(req.ToAssetID)
	if err != nil {
		return nil, err
	}
	if fromID == toID {
		return nil, ErrSelfTransfer
	}

	from, err := s.asset(ctx, userID, fromID)
	if err != nil {
		return nil, err
	}
	if _, err := s.asset(ctx, userID, toID); err != nil {
		return nil, err
	}

	now := time.Now()
	tr := &models.Transfer{
		ID:                   uuid.New(),
		UserID:               userID,
		TransferDate:         date,
		FromAssetID:          fromID,
		ToAssetID:            toID,
		Amount:               req.Amount,
		FromAdjustmentAmount: req.FromAdjustmentAmount,
		FromAdjustmentIsPlus: req.FromAdjustmentIsPlus,
		FromAdjustmentMemo:   optionalString(req.FromAdjustmentMemo),
		ToAdjustmentAmount:   req.ToAdjustmentAmount,
		ToAdjustmentIsPlus:   req.ToAdjustmentIsPlus,
		ToAdjustmentMemo:     optionalString(req.ToAdjustmentMemo),
		Title:                optionalString(req.Title),
		Memo:                 optionalString(req.Memo),
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if from.CurrencyID != nil {
		currency, err := s.currencyRepo.GetByID(ctx, userID, *from.CurrencyID)
		if err != nil {
			if errors.Is(err, repository.ErrNoRows) {
				return nil, ErrNotFound
			}
			return nil, err
		}

		original := req.Amount
		tr.Amount = ledger.ToBase(original, currency.ExchangeRate)
		tr.OriginalAmount = &original
		tr.OriginalCurrencyID = from.CurrencyID
		tr.ExchangeRate = &currency.ExchangeRate
	}

	return tr, nil
}

func (s *TransferService) asset(ctx context.Context, userID, id uuid.UUID) (*models.Asset, error) {
	asset, err := s.assetRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if asset.IsDeleted {
		return nil, ErrNotFound
	}
	return asset, nil
}
