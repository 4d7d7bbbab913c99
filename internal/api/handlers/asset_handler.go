package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/SpiritFlag/Moneybook/internal/dto"
	"github.com/SpiritFlag/Moneybook/internal/service"
)

type AssetHandler struct {
	assetService *service.AssetService
	logger       *zap.Logger
}

func NewAssetHandler(assetService *service.AssetService, logger *zap.Logger) *AssetHandler {
	return &AssetHandler{
		assetService: assetService,
		logger:       logger,
	}
}

// ListCategories godoc
// @Summary List asset categories
// @Tags assets
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.AssetCategoryResponse
// @Router /api/v1/asset-categories [get]
func (h *AssetHandler) ListCategories(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	categories, err := h.assetService.ListCategories(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.NewAssetCategoryResponses(categories))
}

// CreateCategory godoc
// @Summary Create an asset category
// @Tags assets
// @Accept json
// @Produce json
// @Security Bearer
// @Success 201 {object} dto.AssetCategoryResponse
// @Router /api/v1/asset-categories [post]
func (h *AssetHandler) CreateCategory(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.AssetCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	category, err := h.assetService.CreateCategory(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewAssetCategoryResponse(category))
}

// UpdateCategory godoc
// @Summary Rename an asset category
// @Tags assets
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.AssetCategoryResponse
// @Router /api/v1/asset-categories/{id} [put]
func (h *AssetHandler) UpdateCategory(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid category id")
	}

	var req dto.AssetCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	category, err := h.assetService.UpdateCategory(c.Context(), userID, id, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.NewAssetCategoryResponse(category))
}

// DeleteCategory godoc
// @Summary Delete an asset category
// @Description Fails with 409 while the category still owns assets
// @Tags assets
// @Produce json
// @Security Bearer
// @Success 204
// @Failure 409 {object} map[string]string
// @Router /api/v1/asset-categories/{id} [delete]
func (h *AssetHandler) DeleteCategory(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid category id")
	}

	if err := h.assetService.DeleteCategory(c.Context(), userID, id); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ReorderCategories godoc
// @Summary Reorder asset categories
// @Tags assets
// @Accept json
// @Security Bearer
// @Success 204
// @Router /api/v1/asset-categories/reorder [put]
func (h *AssetHandler) ReorderCategories(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.assetService.ReorderCategories(c.Context(), userID, req.IDs); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// List godoc
// @Summary List assets with current balances
// @Description Balances are derived from transactions and transfers, denominated in each asset's own currency
// @Tags assets
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.AssetBalanceResponse
// @Router /api/v1/assets [get]
func (h *AssetHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	assets, err := h.assetService.ListWithBalances(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	out := make([]dto.AssetBalanceResponse, len(assets))
	for i := range assets {
		out[i] = dto.AssetBalanceResponse{
			AssetResponse:  dto.NewAssetResponse(&assets[i].Asset),
			CurrentBalance: assets[i].Balance,
		}
	}

	return c.JSON(out)
}

// Create godoc
// @Summary Create an asset
// @Tags assets
// @Accept json
// @Produce json
// @Security Bearer
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} map[string]string
// @Router /api/v1/assets [post]
func (h *AssetHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.AssetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	asset, err := h.assetService.Create(c.Context(), userID, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewAssetResponse(asset))
}

// Update godoc
// @Summary Update an asset
// @Tags assets
// @Accept json
// @Produce json
// @Security Bearer
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/assets/{id} [put]
func (h *AssetHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid asset id")
	}

	var req dto.AssetRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	asset, err := h.assetService.Update(c.Context(), userID, id, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.NewAssetResponse(asset))
}

// Delete godoc
// @Summary Delete an asset
// @Description Soft delete. The asset's transactions and transfers remain on record.
// @Tags assets
// @Produce json
// @Security Bearer
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/assets/{id} [delete]
func (h *AssetHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid asset id")
	}

	if err := h.assetService.Delete(c.Context(), userID, id); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Reorder godoc
// @Summary Reorder assets
// @Description Accepts explicit sort orders and optional moves between categories
// @Tags assets
// @Accept json
// @Security Bearer
// @Success 204
// @Router /api/v1/assets/reorder [put]
func (h *AssetHandler) Reorder(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.AssetReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.assetService.Reorder(c.Context(), userID, &req); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
