package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/SpiritFlag/Moneybook/internal/dto"
	"github.com/SpiritFlag/Moneybook/internal/service"
)

type CurrencyHandler struct {
	currencyService *service.CurrencyService
	logger          *zap.Logger
}

func NewCurrencyHandler(currencyService *service.CurrencyService, logger *zap.Logger) *CurrencyHandler {
	return &CurrencyHandler{
		currencyService: currencyService,
		logger:          logger,
	}
}

// List godoc
// @Summary List currencies
// @Tags currencies
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.CurrencyResponse
// @Router /api/v1/currencies [get]
func (h *CurrencyHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	currencies, err := h.currencyService.List(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.NewCurrencyResponses(currencies))
}

// Create godoc
// @Summary Create a currency
// @Description Register an auxiliary currency with its exchange rate to the base currency
// @Tags currencies
// @Accept json
// @Produce json
// @Security Bearer
// @Success 201 {object} dto.CurrencyResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/currencies [post]
func (h *CurrencyHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CurrencyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	currency, err := h.currencyService.Create(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewCurrencyResponse(currency))
}

// Update godoc
// @Summary Update a currency
// @Description Update name, symbol or exchange rate. Stored original figures on past records are unaffected.
// @Tags currencies
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.CurrencyResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/currencies/{id} [put]
func (h *CurrencyHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid currency id")
	}

	var req dto.CurrencyRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	currency, err := h.currencyService.Update(c.Context(), userID, id, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.NewCurrencyResponse(currency))
}

// Delete godoc
// @Summary Delete a currency
// @Description Fails with 409 while any asset still uses the currency
// @Tags currencies
// @Produce json
// @Security Bearer
// @Success 204
// @Failure 409 {object} map[string]string
// @Router /api/v1/currencies/{id} [delete]
func (h *CurrencyHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid currency id")
	}

	if err := h.currencyService.Delete(c.Context(), userID, id); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Reorder godoc
// @Summary Reorder currencies
// @Tags currencies
// @Accept json
// @Security Bearer
// @Success 204
// @Router /api/v1/currencies/reorder [put]
func (h *CurrencyHandler) Reorder(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.currencyService.Reorder(c.Context(), userID, req.IDs); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
