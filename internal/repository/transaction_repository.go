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

var transactionColumns = []string{
	"id", "user_id", "type", "transaction_date", "asset_id", "category_id",
	"amount", "adjustment_amount", "adjustment_memo",
	"original_amount", "original_adjustment_amount", "original_currency_id", "exchange_rate",
	"title", "memo", "sort_order", "created_at", "updated_at",
}

type TransactionRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewTransactionRepository(db *pgxpool.Pool, logger *zap.Logger) *TransactionRepository {
	return &TransactionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *TransactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Insert("transactions").
		Columns(transactionColumns...).
		Values(
			tx.ID, tx.UserID, tx.Type, tx.TransactionDate, tx.AssetID, tx.CategoryID,
			tx.Amount, tx.AdjustmentAmount, tx.AdjustmentMemo,
			tx.OriginalAmount, tx.OriginalAdjustmentAmount, tx.OriginalCurrencyID, tx.ExchangeRate,
			tx.Title, tx.Memo, tx.SortOrder, tx.CreatedAt, tx.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *TransactionRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var tx models.Transaction
	err = r.db.QueryRow(ctx, sql, args...).Scan(transactionScanTargets(&tx)...)
	if err != nil {
		return nil, err
	}

	return &tx, nil
}

// ListByUser returns every transaction of the user. The balance engine
// always works over full history.
func (r *TransactionRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	return r.query(ctx, query)
}

// ListByMonth returns the transactions of one calendar month, newest
// date first, manual order within a date.
func (r *TransactionRepository) ListByMonth(ctx context.Context, userID uuid.UUID, year int, month time.Month) ([]models.Transaction, error) {
	start, end := monthRange(year, month)
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"transaction_date": start}).
		Where(squirrel.Lt{"transaction_date": end}).
		OrderBy("transaction_date DESC", "sort_order ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.query(ctx, query)
}

func (r *TransactionRepository) ListByAsset(ctx context.Context, userID, assetID uuid.UUID) ([]models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"user_id": userID, "asset_id": assetID}).
		OrderBy("transaction_date DESC", "sort_order ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.query(ctx, query)
}

func (r *TransactionRepository) ListByCategory(ctx context.Context, userID, categoryID uuid.UUID, t models.TransactionType) ([]models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"user_id": userID, "category_id": categoryID, "type": t}).
		OrderBy("transaction_date DESC", "sort_order ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.query(ctx, query)
}

// ListRecent returns the newest transactions for the bulk export.
func (r *TransactionRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit uint64) ([]models.Transaction, error) {
	query := squirrel.Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	return r.query(ctx, query)
}

func (r *TransactionRepository) Update(ctx context.Context, tx *models.Transaction) error {
	query := squirrel.Update("transactions").
		Set("type", tx.Type).
		Set("transaction_date", tx.TransactionDate).
		Set("asset_id", tx.AssetID).
		Set("category_id", tx.CategoryID).
		Set("amount", tx.Amount).
		Set("adjustment_amount", tx.AdjustmentAmount).
		Set("adjustment_memo", tx.AdjustmentMemo).
		Set("original_amount", tx.OriginalAmount).
		Set("original_adjustment_amount", tx.OriginalAdjustmentAmount).
		Set("original_currency_id", tx.OriginalCurrencyID).
		Set("exchange_rate", tx.ExchangeRate).
		Set("title", tx.Title).
		Set("memo", tx.Memo).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": tx.ID, "user_id": tx.UserID}).
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

func (r *TransactionRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := squirrel.Delete("transactions").
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

// NextSortOrder scopes manual ordering to a single day.
func (r *TransactionRepository) NextSortOrder(ctx context.Context, userID uuid.UUID, date time.Time) (int, error) {
	return nextSortOrder(ctx, r.db, "transactions", squirrel.Eq{"user_id": userID, "transaction_date": date})
}

func (r *TransactionRepository) UpdateSortOrders(ctx context.Context, userID uuid.UUID, updates []ledger.OrderUpdate) error {
	return updateSortOrders(ctx, r.db, "transactions", userID, updates)
}

func (r *TransactionRepository) query(ctx context.Context, query squirrel.SelectBuilder) ([]models.Transaction, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(transactionScanTargets(&tx)...); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

func transactionScanTargets(tx *models.Transaction) []any {
	return []any{
		&tx.ID, &tx.UserID, &tx.Type, &tx.TransactionDate, &tx.AssetID, &tx.CategoryID,
		&tx.Amount, &tx.AdjustmentAmount, &tx.AdjustmentMemo,
		&tx.OriginalAmount, &tx.OriginalAdjustmentAmount, &tx.OriginalCurrencyID, &tx.ExchangeRate,
		&tx.Title, &tx.Memo, &tx.SortOrder, &tx.CreatedAt, &tx.UpdatedAt,
	}
}

// monthRange is the half-open [first day, first day of next month)
// window.
func monthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
