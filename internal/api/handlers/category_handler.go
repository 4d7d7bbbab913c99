package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/SpiritFlag/Moneybook/internal/dto"
	"github.com/SpiritFlag/Moneybook/internal/models"
	"github.com/SpiritFlag/Moneybook/internal/service"
)

// CategoryHandler serves both category namespaces. The :type path
// segment selects income or expense.
type CategoryHandler struct {
	categoryService *service.CategoryService
	logger          *zap.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

func categoryType(c *fiber.Ctx) (models.TransactionType, bool) {
	t := models.TransactionType(c.Params("type"))
	return t, t.Valid()
}

// List godoc
// @Summary List categories of one type
// @Tags categories
// @Produce json
// @Param type path string true "income or expense"
// @Security Bearer
// @Success 200 {array} dto.CategoryResponse
// @Router /api/v1/categories/{type} [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	t, ok := categoryType(c)
	if !ok {
		return badRequest(c, "Type must be income or expense")
	}

	categories, err := h.categoryService.List(c.Context(), userID, t)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.NewCategoryResponses(categories))
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param type path string true "income or expense"
// @Security Bearer
// @Success 201 {object} dto.CategoryResponse
// @Router /api/v1/categories/{type} [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	t, ok := categoryType(c)
	if !ok {
		return badRequest(c, "Type must be income or expense")
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	category, err := h.categoryService.Create(c.Context(), userID, t, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.NewCategoryResponse(category))
}

// Update godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param type path string true "income or expense"
// @Security Bearer
// @Success 200 {object} dto.CategoryResponse
// @Router /api/v1/categories/{type}/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	t, ok := categoryType(c)
	if !ok {
		return badRequest(c, "Type must be income or expense")
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid category id")
	}

	var req dto.CategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	category, err := h.categoryService.Update(c.Context(), userID, t, id, &req)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(dto.NewCategoryResponse(category))
}

// Delete godoc
// @Summary Delete a category, reassigning its transactions
// @Description The category's transactions move to the named replacement before the soft delete
// @Tags categories
// @Accept json
// @Produce json
// @Param type path string true "income or expense"
// @Security Bearer
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /api/v1/categories/{type}/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	t, ok := categoryType(c)
	if !ok {
		return badRequest(c, "Type must be income or expense")
	}

	id, err := paramID(c, "id")
	if err != nil {
		return badRequest(c, "Invalid category id")
	}

	var req dto.CategoryDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.categoryService.Delete(c.Context(), userID, t, id, &req); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Reorder godoc
// @Summary Reorder categories of one type
// @Tags categories
// @Accept json
// @Param type path string true "income or expense"
// @Security Bearer
// @Success 204
// @Router /api/v1/categories/{type}/reorder [put]
func (h *CategoryHandler) Reorder(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return unauthorized(c)
	}

	t, ok := categoryType(c)
	if !ok {
		return badRequest(c, "Type must be income or expense")
	}

	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.categoryService.Reorder(c.Context(), userID, t, req.IDs); err != nil {
		return respondError(c, h.logger, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
