package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/SpiritFlag/Moneybook/internal/dto"
	"github.com/SpiritFlag/Moneybook/internal/service"
)

type TransactionHandler struct {
	txService *service.TransactionService
	logger    *zap.Logger
}

func NewTransactionHandler(txService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService: txService,
		logger:    logger,
	}
}

// Get godoc
// @Summary Get one transaction
// @Tags transactions
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/transactions/{id} [get]
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid transaction id")
	}

	tx, err := h.txService.Get(c.Context(), userID, id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.NewTransactionResponse(tx))
}

// Create godoc
// @Summary Record an income or expense
// @Description Figures are entered in the asset's currency and stored in base currency with the originals alongside
// @Tags transactions
// @Accept json
// @Produce json
// @Security Bearer
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	tx, err := h.txService.Create(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewTransactionResponse(tx))
}

// Update godoc
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/transactions/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid transaction id")
	}

	var req dto.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	tx, err := h.txService.Update(c.Context(), userID, id, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.NewTransactionResponse(tx))
}

// Delete godoc
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid transaction id")
	}

	if err := h.txService.Delete(c.Context(), userID, id); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Reorder godoc
// @Summary Reorder transactions within a day
// @Tags transactions
// @Accept json
// @Security Bearer
// @Success 204
// @Router /api/v1/transactions/reorder [put]
func (h *TransactionHandler) Reorder(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.txService.Reorder(c.Context(), userID, req.IDs); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
