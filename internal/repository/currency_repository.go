package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/SpiritFlag/Moneybook/internal/ledger"
	"github.com/SpiritFlag/Moneybook/internal/models"
)

// ErrNoRows is returned by Get* methods when no matching record
// exists. Callers decide whether that is "no data" or a hard failure.
var ErrNoRows = pgx.ErrNoRows

var currencyColumns = []string{"id", "user_id", "name", "symbol", "exchange_rate", "sort_order", "created_at", "updated_at"}

type CurrencyRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewCurrencyRepository(db *pgxpool.Pool, logger *zap.Logger) *CurrencyRepository {
	return &CurrencyRepository{
		db:     db,
		logger: logger,
	}
}

func (r *CurrencyRepository) Create(ctx context.Context, c *models.Currency) error {
	query := squirrel.Insert("currencies").
		Columns(currencyColumns...).
		Values(c.ID, c.UserID, c.Name, c.Symbol, c.ExchangeRate, c.SortOrder, c.CreatedAt, c.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *CurrencyRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Currency, error) {
	query := squirrel.Select(currencyColumns...).
		From("currencies").
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

	var currencies []models.Currency
	for rows.Next() {
		var c models.Currency
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.Name, &c.Symbol, &c.ExchangeRate, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, err
		}
		currencies = append(currencies, c)
	}

	return currencies, rows.Err()
}

func (r *CurrencyRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Currency, error) {
	query := squirrel.Select(currencyColumns...).
		From("currencies").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var c models.Currency
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&c.ID, &c.UserID, &c.Name, &c.Symbol, &c.ExchangeRate, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (r *CurrencyRepository) Update(ctx context.Context, c *models.Currency) error {
	query := squirrel.Update("currencies").
		Set("name", c.Name).
		Set("symbol", c.Symbol).
		Set("exchange_rate", c.ExchangeRate).
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

func (r *CurrencyRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := squirrel.Delete("currencies").
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

func (r *CurrencyRepository) NextSortOrder(ctx context.Context, userID uuid.UUID) (int, error) {
	return nextSortOrder(ctx, r.db, "currencies", squirrel.Eq{"user_id": userID})
}

// UpdateSortOrders applies a reorder batch. Each update is an
// independent statement in one pgx batch; a failed statement leaves
// the remaining rows with their old order, which the ledger view
// tolerates.
func (r *CurrencyRepository) UpdateSortOrders(ctx context.Context, userID uuid.UUID, updates []ledger.OrderUpdate) error {
	return updateSortOrders(ctx, r.db, "currencies", userID, updates)
}

// nextSortOrder returns one past the highest sort_order under the
// given scope, zero for an empty scope.
func nextSortOrder(ctx context.Context, db *pgxpool.Pool, table string, scope squirrel.Eq) (int, error) {
	query := squirrel.Select("sort_order").
		From(table).
		Where(scope).
		OrderBy("sort_order DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, err
	}

	var max int
	err = db.QueryRow(ctx, sql, args...).Scan(&max)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

func updateSortOrders(ctx context.Context, db *pgxpool.Pool, table string, userID uuid.UUID, updates []ledger.OrderUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, u := range updates {
		query := squirrel.Update(table).
			Set("sort_order", u.SortOrder).
			Set("updated_at", time.Now()).
			Where(squirrel.Eq{"id": u.ID, "user_id": userID}).
			PlaceholderFormat(squirrel.Dollar)

		sql, args, err := query.ToSql()
		if err != nil {
			return err
		}
		batch.Queue(sql, args...)
	}

	return db.SendBatch(ctx, batch).Close()
}
