package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/SpiritFlag/Moneybook/internal/ledger"
	"github.com/SpiritFlag/Moneybook/internal/models"
)

var transferColumns = []string{
	"id", "user_id", "transfer_date", "from_asset_id", "to_asset_id",
	"amount", "original_amount", "original_currency_id", "exchange_rate",
	"from_adjustment_amount", "from_adjustment_is_plus", "from_adjustment_memo",
	"to_adjustment_amount", "to_adjustment_is_plus", "to_adjustment_memo",
	"title", "memo", "sort_order", "created_at", "updated_at",
}

type TransferRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransferRepository(db *pgxpool.Pool, logger *zap.Logger) *TransferRepository {
	return &TransferRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransferRepository) Create(ctx context.Context, tr *models.Transfer) error {
	query := squirrel.Insert("transfers").
		Columns(transferColumns...).
		Values(
			tr.ID, tr.UserID, tr.TransferDate, tr.FromAssetID, tr.ToAssetID,
			tr.Amount, tr.OriginalAmount, tr.OriginalCurrencyID, tr.ExchangeRate,
			tr.FromAdjustmentAmount, tr.FromAdjustmentIsPlus, tr.FromAdjustmentMemo,
			tr.ToAdjustmentAmount, tr.ToAdjustmentIsPlus, tr.ToAdjustmentMemo,
			tr.Title, tr.Memo, tr.SortOrder, tr.CreatedAt, tr.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransferRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Transfer, error) {
	query := squirrel.Select(transferColumns...).
		From("transfers").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var tr models.Transfer
	err = r.db.QueryRow(ctx, sql, args...).Scan(transferScanTargets(&tr)...)
	if err != nil {
		return nil, err
	}

	return &tr, nil
}

func (r *TransferRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Transfer, error) {
	query := squirrel.Select(transferColumns...).
		From("transfers").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	return r.query(ctx, query)
}

func (r *TransferRepository) ListByMonth(ctx context.Context, userID uuid.UUID, year int, month time.Month) ([]models.Transfer, error) {
	start, end := monthRange(year, month)
	query := squirrel.Select(transferColumns...).
		From("transfers").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"transfer_date": start}).
		Where(squirrel.Lt{"transfer_date": end}).
		OrderBy("transfer_date DESC", "sort_order ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.query(ctx, query)
}

// ListByAsset returns transfers touching the asset on either leg.
func (r *TransferRepository) ListByAsset(ctx context.Context, userID, assetID uuid.UUID) ([]models.Transfer, error) {
	query := squirrel.Select(transferColumns...).
		From("transfers").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Or{
			squirrel.Eq{"from_asset_id": assetID},
			squirrel.Eq{"to_asset_id": assetID},
		}).
		OrderBy("transfer_date DESC", "sort_order ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.query(ctx, query)
}

func (r *TransferRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit uint64) ([]models.Transfer, error) {
	query := squirrel.Select(transferColumns...).
		From("transfers").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	return r.query(ctx, query)
}

func (r *TransferRepository) Update(ctx context.Context, tr *models.Transfer) error {
	query := squirrel.Update("transfers").
		Set("transfer_date", tr.TransferDate).
		Set("from_asset_id", tr.FromAssetID).
		Set("to_asset_id", tr.ToAssetID).
		Set("amount", tr.Amount).
		Set("original_amount", tr.OriginalAmount).
		Set("original_currency_id", tr.OriginalCurrencyID).
		Set("exchange_rate", tr.ExchangeRate).
		Set("from_adjustment_amount", tr.FromAdjustmentAmount).
		Set("from_adjustment_is_plus", tr.FromAdjustmentIsPlus).
		Set("from_adjustment_memo", tr.FromAdjustmentMemo).
		Set("to_adjustment_amount", tr.ToAdjustmentAmount).
		Set("to_adjustment_is_plus", tr.ToAdjustmentIsPlus).
		Set("to_adjustment_memo", tr.ToAdjustmentMemo).
		Set("title", tr.Title).
		Set("memo", tr.Memo).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": tr.ID, "user_id": tr.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}
	return nil
}

func (r *TransferRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := squirrel.Delete("transfers").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}
	return nil
}

func (r *TransferRepository) NextSortOrder(ctx context.Context, userID uuid.UUID, date time.Time) (int, error) {
	return nextSortOrder(ctx, r.db, "transfers", squirrel.Eq{"user_id": userID, "transfer_date": date})
}

func (r *TransferRepository) UpdateSortOrders(ctx context.Context, userID uuid.UUID, updates []ledger.OrderUpdate) error {
	return updateSortOrders(ctx, r.db, "transfers", userID, updates)
}

func (r *TransferRepository) query(ctx context.Context, query squirrel.SelectBuilder) ([]models.Transfer, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transfers []models.Transfer
	for rows.Next() {
		var tr models.Transfer
		if err := rows.Scan(transferScanTargets(&tr)...); err != nil {
			return nil, err
		}
		transfers = append(transfers, tr)
	}

	return transfers, rows.Err()
}

func transferScanTargets(tr *models.Transfer) []any {
	return []any{
		&tr.ID, &tr.UserID, &tr.TransferDate, &tr.FromAssetID, &tr.ToAssetID,
		&tr.Amount, &tr.OriginalAmount, &tr.OriginalCurrencyID, &tr.ExchangeRate,
		&tr.FromAdjustmentAmount, &tr.FromAdjustmentIsPlus, &tr.FromAdjustmentMemo,
		&tr.ToAdjustmentAmount, &tr.ToAdjustmentIsPlus, &tr.ToAdjustmentMemo,
		&tr.Title, &tr.Memo, &tr.SortOrder, &tr.CreatedAt, &tr.UpdatedAt,
	}
}
