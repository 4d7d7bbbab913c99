package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/SpiritFlag/Moneybook/internal/models"
)

var assetColumns = []string{"id", "user_id", "category_id", "currency_id", "name", "initial_balance", "sort_order", "is_deleted", "created_at", "updated_at"}

type AssetRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewAssetRepository(db *pgxpool.Pool, logger *zap.Logger) *AssetRepository {
	return &AssetRepository{
		db:     db,
		logger: logger,
	}
}

func (r *AssetRepository) Create(ctx context.Context, a *models.Asset) error {
	query := squirrel.Insert("assets").
		Columns(assetColumns...).
		Values(a.ID, a.UserID, a.CategoryID, a.CurrencyID, a.Name, a.InitialBalance, a.SortOrder, a.IsDeleted, a.CreatedAt, a.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// ListByUser returns the user's non-deleted assets in display order.
func (r *AssetRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Asset, error) {
	query := squirrel.Select(assetColumns...).
		From("assets").
		Where(squirrel.Eq{"user_id": userID, "is_deleted": false}).
		OrderBy("sort_order ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.list(ctx, query)
}

func (r *AssetRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Asset, error) {
	query := squirrel.Select(assetColumns...).
		From("assets").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var a models.Asset
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&a.ID, &a.UserID, &a.CategoryID, &a.CurrencyID, &a.Name, &a.InitialBalance, &a.SortOrder, &a.IsDeleted, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *AssetRepository) Update(ctx context.Context, a *models.Asset) error {
	query := squirrel.Update("assets").
		Set("category_id", a.CategoryID).
		Set("currency_id", a.CurrencyID).
		Set("name", a.Name).
		Set("initial_balance", a.InitialBalance).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": a.ID, "user_id": a.UserID}).
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

// SoftDelete flags the asset deleted. The row stays so historical
// transactions and transfers keep a valid reference.
func (r *AssetRepository) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	query := squirrel.Update("assets").
		Set("is_deleted", true).
		Set("updated_at", time.Now()).
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

// CountByCurrency counts non-deleted assets referencing a currency,
// used to block currency deletion.
func (r *AssetRepository) CountByCurrency(ctx context.Context, userID, currencyID uuid.UUID) (int, error) {
	return r.count(ctx, squirrel.Eq{"user_id": userID, "currency_id": currencyID, "is_deleted": false})
}

// CountByCategory counts non-deleted assets in an asset category, used
// to block category deletion.
func (r *AssetRepository) CountByCategory(ctx context.Context, userID, categoryID uuid.UUID) (int, error) {
	return r.count(ctx, squirrel.Eq{"user_id": userID, "category_id": categoryID, "is_deleted": false})
}

func (r *AssetRepository) NextSortOrder(ctx context.Context, userID, categoryID uuid.UUID) (int, error) {
	return nextSortOrder(ctx, r.db, "assets", squirrel.Eq{"user_id": userID, "category_id": categoryID})
}

// AssetOrder is one reorder entry. CategoryID is set when the drag
// moved the asset into another category.
type AssetOrder struct {
	ID         uuid.UUID
	SortOrder  int
	CategoryID *uuid.UUID
}

func (r *AssetRepository) UpdateSortOrders(ctx context.Context, userID uuid.UUID, updates []AssetOrder) error {
	if len(updates) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, u := range updates {
		query := squirrel.Update("assets").
			Set("sort_order", u.SortOrder).
			Set("updated_at", time.Now()).
			Where(squirrel.Eq{"id": u.ID, "user_id": userID})
		if u.CategoryID != nil {
			query = query.Set("category_id", *u.CategoryID)
		}

		sql, args, err := query.PlaceholderFormat(squirrel.Dollar).ToSql()
		if err != nil {
			return err
		}
		batch.Queue(sql, args...)
	}

	return r.db.SendBatch(ctx, batch).Close()
}

func (r *AssetRepository) list(ctx context.Context, query squirrel.SelectBuilder) ([]models.Asset, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		var a models.Asset
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.CategoryID, &a.CurrencyID, &a.Name, &a.InitialBalance, &a.SortOrder, &a.IsDeleted, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}

	return assets, rows.Err()
}

func (r *AssetRepository) count(ctx context.Context, scope squirrel.Eq) (int, error) {
	query := squirrel.Select("COUNT(*)").
		From("assets").
		Where(scope).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
