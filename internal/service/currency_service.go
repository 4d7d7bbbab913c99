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

type CurrencyService struct {
	currencyRepo *repository.CurrencyRepository
	assetRepo    *repository.AssetRepository
	logger       *zap.Logger
}

func NewCurrencyService(currencyRepo *repository.CurrencyRepository, assetRepo *repository.AssetRepository, logger *zap.Logger) *CurrencyService {
	return &CurrencyService{
		currencyRepo: currencyRepo,
		assetRepo:    assetRepo,
		logger:       logger,
	}
}

func (s *CurrencyService) List(ctx context.Context, userID uuid.UUID) ([]models.Currency, error) {
	return s.currencyRepo.ListByUser(ctx, userID)
}

func (s *CurrencyService) Create(ctx context.Context, userID uuid.UUID, req *dto.CurrencyRequest) (*models.Currency, error) {
	if err := validateCurrency(req); err != nil {
		return nil, err
	}

	sortOrder, err := s.currencyRepo.NextSortOrder(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	currency := &models.Currency{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         req.Name,
		Symbol:       req.Symbol,
		ExchangeRate: req.ExchangeRate,
		SortOrder:    sortOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.currencyRepo.Create(ctx, currency); err != nil {
		return nil, err
	}
	return currency, nil
}

func (s *CurrencyService) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req *dto.CurrencyRequest) (*models.Currency, error) {
	if err := validateCurrency(req); err != nil {
		return nil, err
	}

	currency, err := s.currencyRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	currency.Name = req.Name
	currency.Symbol = req.Symbol
	currency.ExchangeRate = req.ExchangeRate

	if err := s.currencyRepo.Update(ctx, currency); err != nil {
		return nil, err
	}
	return currency, nil
}

// Delete refuses while any non-deleted asset still uses the currency.
func (s *CurrencyService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	n, err := s.assetRepo.CountByCurrency(ctx, userID, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrCurrencyInUse
	}

	if err := s.currencyRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *CurrencyService) Reorder(ctx context.Context, userID uuid.UUID, ids []string) error {
	parsed, err := parseIDs(ids)
	if err != nil {
		return err
	}
	return s.currencyRepo.UpdateSortOrders(ctx, userID, ledger.AssignOrder(parsed))
}

func validateCurrency(req *dto.CurrencyRequest) error {
	if req.Name == "" || req.Symbol == "" {
		return ErrNameRequired
	}
	if req.ExchangeRate <= 0 {
		return ErrRateNotPositive
	}
	return nil
}
