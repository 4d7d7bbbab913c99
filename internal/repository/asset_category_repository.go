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

var assetCategoryColumns = []string{"id", "user_id", "name", "sort_order", "created_at", "updated_at"}

type AssetCategoryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewAssetCategoryRepository(db *pgxpool.Pool, logger *zap.Logger) *AssetCategoryRepository {
	return &AssetCategoryRepository{
		db:     db,
		logger: logger,
	}
}

func (r *AssetCategoryRepository) Create(ctx context.Context, c *models.AssetCategory) error {
	query := squirrel.Insert("asset_categories").
		Columns(assetCategoryColumns...).
		Values(c.ID, c.UserID, c.Name, c.SortOrder, c.CreatedAt, c.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *AssetCategoryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.AssetCategory, error) {
	query := squirrel.Select(assetCategoryColumns...).
		From("asset_categories").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("sort_order ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.AssetCategory
	for rows.Next() {
		var c models.AssetCategory
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *AssetCategoryRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.AssetCategory, error) {
	query := squirrel.Select(assetCategoryColumns...).
		From("asset_categories").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var c models.AssetCategory
	err = r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.UserID, &c.Name, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *AssetCategoryRepository) Update(ctx context.Context, c *models.AssetCategory) error {
	query := squirrel.Update("asset_categories").
		Set("name", c.Name).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": c.ID, "user_id": c.UserID}).
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

// Delete removes the category. The service refuses the call while the
// category still owns non-deleted assets.
func (r *AssetCategoryRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := squirrel.Delete("asset_categories").
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

func (r *AssetCategoryRepository) NextSortOrder(ctx context.Context, userID uuid.UUID) (int, error) {
	return nextSortOrder(ctx, r.db, "asset_categories", squirrel.Eq{"user_id": userID})
}

func (r *AssetCategoryRepository) UpdateSortOrders(ctx context.Context, userID uuid.UUID, updates []ledger.OrderUpdate) error {
	return updateSortOrders(ctx, r.db, "asset_categories", userID, updates)
}
