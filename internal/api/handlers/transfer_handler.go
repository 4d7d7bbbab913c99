package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/SpiritFlag/Moneybook/internal/dto"
	"github.com/SpiritFlag/Moneybook/internal/service"
)

type TransferHandler struct {
	transferService *service.TransferService
	logger          *zap.Logger
}

func NewTransferHandler(transferService *service.TransferService, logger *zap.Logger) *TransferHandler {
	return &TransferHandler{
		transferService: transferService,
		logger:          logger,
	}
}

// Get godoc
// @Summary Get one transfer
// @Tags transfers
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.TransferResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/transfers/{id} [get]
func (h *TransferHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid transfer id")
	}

	tr, err := h.transferService.Get(c.Context(), userID, id)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.NewTransferResponse(tr))
}

// Create godoc
// @Summary Move money between two assets
// @Description The amount is entered in the source asset's currency; each leg may carry its own fee or bonus adjustment
// @Tags transfers
// @Accept json
// @Produce json
// @Security Bearer
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/transfers [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	tr, err := h.transferService.Create(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewTransferResponse(tr))
}

// Update godoc
// @Summary Update a transfer
// @Tags transfers
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.TransferResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/transfers/{id} [put]
func (h *TransferHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid transfer id")
	}

	var req dto.TransferRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	tr, err := h.transferService.Update(c.Context(), userID, id, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.NewTransferResponse(tr))
}

// Delete godoc
// @Summary Delete a transfer
// @Tags transfers
// @Produce json
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/transfers/{id} [delete]
func (h *TransferHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid transfer id")
	}

	if err := h.transferService.Delete(c.Context(), userID, id); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Reorder godoc
// @Summary Reorder transfers within a day
// @Tags transfers
// @Accept json
// @Security Bearer
// @Success 204
// @Router /api/v1/transfers/reorder [put]
func (h *TransferHandler) Reorder(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.transferService.Reorder(c.Context(), userID, req.IDs); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
