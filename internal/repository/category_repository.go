package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/SpiritFlag/Moneybook/internal/ledger"
	"github.com/SpiritFlag/Moneybook/internal/models"
)

var categoryColumns = []string{"id", "user_id", "name", "emoji", "sort_order", "is_deleted", "created_at", "updated_at"}

// CategoryRepository serves both the income and the expense category
// namespaces; they live in separate tables with the same shape.
type CategoryRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCategoryRepository(db *pgxpool.Pool, logger *zap.Logger) *CategoryRepository {
	return &CategoryRepository{
		db:     db,
		logger: logger,
	}
}

func categoryTable(t models.TransactionType) string {
	if t == models.TypeIncome {
		return "income_categories"
	}
	return "expense_categories"
}

func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	query := squirrel.Insert(categoryTable(c.Type)).
		Columns(categoryColumns...).
		Values(c.ID, c.UserID, c.Name, c.Emoji, c.SortOrder, c.IsDeleted, c.CreatedAt, c.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CategoryRepository) ListByUser(ctx context.Context, userID uuid.UUID, t models.TransactionType) ([]models.Category, error) {
	query := squirrel.Select(categoryColumns...).
		From(categoryTable(t)).
		Where(squirrel.Eq{"user_id": userID, "is_deleted": false}).
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

	var categories []models.Category
	for rows.Next() {
		c := models.Category{Type: t}
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Emoji, &c.SortOrder, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *CategoryRepository) GetByID(ctx context.Context, userID uuid.UUID, t models.TransactionType, id uuid.UUID) (*models.Category, error) {
	query := squirrel.Select(categoryColumns...).
		From(categoryTable(t)).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	c := models.Category{Type: t}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&c.ID, &c.UserID, &c.Name, &c.Emoji, &c.SortOrder, &c.IsDeleted, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *CategoryRepository) Update(ctx context.Context, c *models.Category) error {
	query := squirrel.Update(categoryTable(c.Type)).
		Set("name", c.Name).
		Set("emoji", c.Emoji).
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

// SoftDeleteWithReassign reassigns every matching-type transaction of
// the category to the replacement, then flags the category deleted.
// Both steps run in one transaction so the ledger is never observed
// with transactions pointing at a deleted category, and grouped totals
// are unchanged before and after.
func (r *CategoryRepository) SoftDeleteWithReassign(ctx context.Context, userID uuid.UUID, t models.TransactionType, id, replacementID uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	reassign := squirrel.Update("transactions").
		Set("category_id", replacementID).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"category_id": id, "user_id": userID, "type": t}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := reassign.ToSql()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("reassign transactions: %w", err)
	}

	flag := squirrel.Update(categoryTable(t)).
		Set("is_deleted", true).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err = flag.ToSql()
	if err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("flag category deleted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return tx.Commit(ctx)
}

func (r *CategoryRepository) NextSortOrder(ctx context.Context, userID uuid.UUID, t models.TransactionType) (int, error) {
	return nextSortOrder(ctx, r.db, categoryTable(t), squirrel.Eq{"user_id": userID})
}

func (r *CategoryRepository) UpdateSortOrders(ctx context.Context, userID uuid.UUID, t models.TransactionType, updates []ledger.OrderUpdate) error {
	return updateSortOrders(ctx, r.db, categoryTable(t), userID, updates)
}
