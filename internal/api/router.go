package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/SpiritFlag/Moneybook/internal/api/handlers"
	"github.com/SpiritFlag/Moneybook/pkg/auth"
	"github.com/SpiritFlag/Moneybook/pkg/middleware"
)

type Handlers struct {
	Auth        *handlers.AuthHandler
	Currency    *handlers.CurrencyHandler
	Asset       *handlers.AssetHandler
	Category    *handlers.CategoryHandler
	Transaction *handlers.TransactionHandler
	Transfer    *handlers.TransferHandler
	Ledger      *handlers.LedgerHandler
	Export      *handlers.ExportHandler
}

func SetupRouter(h Handlers, jwtManager *auth.JWTManager, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	// Auth routes (public)
	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)

	// Export endpoint (public, shared-key guarded)
	app.Get("/export", h.Export.Export)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	currencies := protected.Group("/currencies")
	currencies.Get("", h.Currency.List)
	currencies.Post("", h.Currency.Create)
	currencies.Put("/reorder", h.Currency.Reorder)
	currencies.Put("/:id", h.Currency.Update)
	currencies.Delete("/:id", h.Currency.Delete)

	assetCategories := protected.Group("/asset-categories")
	assetCategories.Get("", h.Asset.ListCategories)
	assetCategories.Post("", h.Asset.CreateCategory)
	assetCategories.Put("/reorder", h.Asset.ReorderCategories)
	assetCategories.Put("/:id", h.Asset.UpdateCategory)
	assetCategories.Delete("/:id", h.Asset.DeleteCategory)

	assets := protected.Group("/assets")
	assets.Get("", h.Asset.List)
	assets.Post("", h.Asset.Create)
	assets.Put("/reorder", h.Asset.Reorder)
	assets.Get("/:id/ledger", h.Ledger.Asset)
	assets.Put("/:id", h.Asset.Update)
	assets.Delete("/:id", h.Asset.Delete)

	categories := protected.Group("/categories/:type")
	categories.Get("", h.Category.List)
	categories.Post("", h.Category.Create)
	categories.Put("/reorder", h.Category.Reorder)
	categories.Get("/:id/ledger", h.Ledger.Category)
	categories.Put("/:id", h.Category.Update)
	categories.Delete("/:id", h.Category.Delete)

	transactions := protected.Group("/transactions")
	transactions.Post("", h.Transaction.Create)
	transactions.Put("/reorder", h.Transaction.Reorder)
	transactions.Get("/:id", h.Transaction.Get)
	transactions.Put("/:id", h.Transaction.Update)
	transactions.Delete("/:id", h.Transaction.Delete)

	transfers := protected.Group("/transfers")
	transfers.Post("", h.Transfer.Create)
	transfers.Put("/reorder", h.Transfer.Reorder)
	transfers.Get("/:id", h.Transfer.Get)
	transfers.Put("/:id", h.Transfer.Update)
	transfers.Delete("/:id", h.Transfer.Delete)

	protected.Get("/ledger", h.Ledger.Month)

	return app
}
