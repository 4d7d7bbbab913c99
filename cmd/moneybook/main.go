package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/SpiritFlag/Moneybook/internal/api"
	"github.com/SpiritFlag/Moneybook/internal/api/handlers"
	"github.com/SpiritFlag/Moneybook/internal/repository"
	"github.com/SpiritFlag/Moneybook/internal/service"
	"github.com/SpiritFlag/Moneybook/pkg/auth"
	"github.com/SpiritFlag/Moneybook/pkg/config"
	"github.com/SpiritFlag/Moneybook/pkg/logger"
	"github.com/SpiritFlag/Moneybook/pkg/postgres"
)

// @title Moneybook API
// @version 1.0
// @description Personal household ledger: assets, categories, transactions, transfers and derived balances.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Moneybook service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, appLogger)
	currencyRepo := repository.NewCurrencyRepository(db, appLogger)
	assetCategoryRepo := repository.NewAssetCategoryRepository(db, appLogger)
	assetRepo := repository.NewAssetRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	transferRepo := repository.NewTransferRepository(db, appLogger)

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWT.SecretKey, cfg.JWT.Expiration, cfg.JWT.RefreshExp)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, appLogger)
	currencyService := service.NewCurrencyService(currencyRepo, assetRepo, appLogger)
	assetService := service.NewAssetService(assetRepo, assetCategoryRepo, currencyRepo, txRepo, transferRepo, appLogger)
	categoryService := service.NewCategoryService(categoryRepo, appLogger)
	txService := service.NewTransactionService(txRepo, assetRepo, categoryRepo, currencyRepo, appLogger)
	transferService := service.NewTransferService(transferRepo, assetRepo, currencyRepo, appLogger)
	ledgerService := service.NewLedgerService(txRepo, transferRepo, assetRepo, assetCategoryRepo, categoryRepo, currencyRepo, appLogger)

	// Initialize handlers
	h := api.Handlers{
		Auth:        handlers.NewAuthHandler(authService, appLogger),
		Currency:    handlers.NewCurrencyHandler(currencyService, appLogger),
		Asset:       handlers.NewAssetHandler(assetService, appLogger),
		Category:    handlers.NewCategoryHandler(categoryService, appLogger),
		Transaction: handlers.NewTransactionHandler(txService, appLogger),
		Transfer:    handlers.NewTransferHandler(transferService, appLogger),
		Ledger:      handlers.NewLedgerHandler(ledgerService, appLogger),
		Export:      handlers.NewExportHandler(ledgerService, cfg.Export.Key, appLogger),
	}

	// Setup router
	app := api.SetupRouter(h, jwtManager, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
