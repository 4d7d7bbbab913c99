package main

import (
	"context"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/SpiritFlag/Moneybook/internal/models"
	"github.com/SpiritFlag/Moneybook/internal/repository"
	"github.com/SpiritFlag/Moneybook/pkg/auth"
	"github.com/SpiritFlag/Moneybook/pkg/config"
	"github.com/SpiritFlag/Moneybook/pkg/logger"
	"github.com/SpiritFlag/Moneybook/pkg/postgres"
)

const (
	demoEmail    = "demo@moneybook.local"
	demoPassword = "demo1234"
)

// Applies the schema and creates a demo user with a starter set of
// categories, a cash asset and an example auxiliary currency.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	appLogger.Info("Applying schema")
	if err := applyMigrations(ctx, db, appLogger); err != nil {
		appLogger.Fatal("Failed to apply migrations", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db, appLogger)
	currencyRepo := repository.NewCurrencyRepository(db, appLogger)
	assetCategoryRepo := repository.NewAssetCategoryRepository(db, appLogger)
	assetRepo := repository.NewAssetRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)

	if existing, err := userRepo.GetByEmail(ctx, demoEmail); err == nil && existing != nil {
		appLogger.Info("Demo user already exists, nothing to do",
			zap.String("email", demoEmail))
		return
	}

	appLogger.Info("Creating demo user", zap.String("email", demoEmail))

	hashed, err := auth.HashPassword(demoPassword)
	if err != nil {
		appLogger.Fatal("Failed to hash password", zap.Error(err))
	}

	now := time.Now()
	user := &models.User{
		ID:        uuid.New(),
		Username:  "demo",
		Email:     demoEmail,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		appLogger.Fatal("Failed to create demo user", zap.Error(err))
	}

	incomeNames := []struct{ name, emoji string }{
		{"Salary", "\U0001F4B5"},
		{"Interest", "\U0001F3E6"},
		{"Other", "\U0001F4B0"},
	}
	for i, c := range incomeNames {
		category := &models.Category{
			ID:        uuid.New(),
			UserID:    user.ID,
			Type:      models.TypeIncome,
			Name:      c.name,
			Emoji:     c.emoji,
			SortOrder: i,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := categoryRepo.Create(ctx, category); err != nil {
			appLogger.Fatal("Failed to create income category", zap.Error(err))
		}
	}

	expenseNames := []struct{ name, emoji string }{
		{"Food", "\U0001F35A"},
		{"Transport", "\U0001F68C"},
		{"Housing", "\U0001F3E0"},
		{"Leisure", "\U0001F3AE"},
		{"Other", "\U0001F4E6"},
	}
	for i, c := range expenseNames {
		category := &models.Category{
			ID:        uuid.New(),
			UserID:    user.ID,
			Type:      models.TypeExpense,
			Name:      c.name,
			Emoji:     c.emoji,
			SortOrder: i,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := categoryRepo.Create(ctx, category); err != nil {
			appLogger.Fatal("Failed to create expense category", zap.Error(err))
		}
	}

	assetCategory := &models.AssetCategory{
		ID:        uuid.New(),
		UserID:    user.ID,
		Name:      "Cash & Bank",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := assetCategoryRepo.Create(ctx, assetCategory); err != nil {
		appLogger.Fatal("Failed to create asset category", zap.Error(err))
	}

	cash := &models.Asset{
		ID:         uuid.New(),
		UserID:     user.ID,
		CategoryID: assetCategory.ID,
		Name:       "Cash",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := assetRepo.Create(ctx, cash); err != nil {
		appLogger.Fatal("Failed to create cash asset", zap.Error(err))
	}

	usd := &models.Currency{
		ID:           uuid.New(),
		UserID:       user.ID,
		Name:         "US Dollar",
		Symbol:       "$",
		ExchangeRate: 1350,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := currencyRepo.Create(ctx, usd); err != nil {
		appLogger.Fatal("Failed to create currency", zap.Error(err))
	}

	appLogger.Info("Seeding complete",
		zap.String("email", demoEmail),
		zap.String("password", demoPassword))
}

// applyMigrations runs every .sql file under migrations/ in name
// order. The statements are idempotent, so rerunning is safe.
func applyMigrations(ctx context.Context, db *pgxpool.Pool, appLogger *zap.Logger) error {
	dir := findMigrationsDir()
	if dir == "" {
		return errors.New("migrations directory not found")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".sql" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		sql, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		appLogger.Info("Applying migration", zap.String("file", entry.Name()))
		if _, err := db.Exec(ctx, string(sql)); err != nil {
			return err
		}
	}

	return nil
}

func findMigrationsDir() string {
	paths := []string{"migrations", "../migrations", "../../migrations"}
	for _, path := range paths {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}
	return ""
}
