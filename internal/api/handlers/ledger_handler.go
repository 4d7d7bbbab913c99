package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/SpiritFlag/Moneybook/internal/dto"
	"github.com/SpiritFlag/Moneybook/internal/models"
	"github.com/SpiritFlag/Moneybook/internal/service"
)

type LedgerHandler struct {
	ledgerService *service.LedgerService
	logger        *zap.Logger
}

func NewLedgerHandler(ledgerService *service.LedgerService, logger *zap.Logger) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		logger:        logger,
	}
}

// Month godoc
// @Summary Monthly ledger
// @Description Transactions and transfers of one calendar month grouped by day, newest day first
// @Tags ledger
// @Produce json
// @Param year query int true "Year"
// @Param month query int true "Month 1-12"
// @Security Bearer
// @Success 200 {object} dto.LedgerViewResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/ledger [get]
func (h *LedgerHandler) Month(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	year := c.QueryInt("year")
	month := c.QueryInt("month")
	if year < 1 || month < 1 || month > 12 {
		return badRequest(c, "Valid year and month query parameters are required")
	}

	view, err := h.ledgerService.MonthView(c.Context(), userID, year, time.Month(month))
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.NewLedgerViewResponse(view))
}

// Asset godoc
// @Summary Asset history
// @Description Every transaction and transfer touching the asset, grouped by day
// @Tags ledger
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.LedgerViewResponse
// @Router /api/v1/assets/{id}/ledger [get]
func (h *LedgerHandler) Asset(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid asset id")
	}

	view, err := h.ledgerService.AssetView(c.Context(), userID, id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.NewLedgerViewResponse(view))
}

// Category godoc
// @Summary Category history
// @Description Every transaction booked under the category, grouped by day. Transfers never appear.
// @Tags ledger
// @Produce json
// @Param type path string true "income or expense"
// @Security Bearer
// @Success 200 {object} dto.LedgerViewResponse
// @Router /api/v1/categories/{type}/{id}/ledger [get]
func (h *LedgerHandler) Category(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	t := models.TransactionType(c.Params("type"))
	if !t.Valid() {
		return badRequest(c, "Type must be income or expense")
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid category id")
	}

	view, err := h.ledgerService.CategoryView(c.Context(), userID, t, id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.NewLedgerViewResponse(view))
}
