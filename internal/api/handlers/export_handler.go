package handlers

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/SpiritFlag/Moneybook/internal/service"
)

// ExportHandler serves the bulk read-only dump to external reporting
// tools. Access is guarded by a shared secret instead of a user token;
// an empty configured key disables the endpoint entirely.
type ExportHandler struct {
	ledgerService *service.LedgerService
	exportKey     string
	logger        *zap.Logger
}

func NewExportHandler(ledgerService *service.LedgerService, exportKey string, logger *zap.Logger) *ExportHandler {
	return &ExportHandler{
		ledgerService: ledgerService,
		exportKey:     exportKey,
		logger:        logger,
	}
}

// Export godoc
// @Summary Export recent activity and all reference records
// @Tags export
// @Produce json
// @Param key query string true "Shared export key"
// @Param user query string true "User id"
// @Success 200 {object} dto.ExportResponse
// @Failure 401 {object} map[string]string
// @Router /export [get]
func (h *ExportHandler) Export(c *fiber.Ctx) error {
	key := c.Query("key")
	if h.exportKey == "" ||
		subtle.ConstantTimeCompare([]byte(key), []byte(h.exportKey)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Invalid export key",
		})
	}

	userID, err := uuid.Parse(c.Query("user"))
	if err != nil {
		return badRequest(c, "Valid user query parameter is required")
	}

	resp, err := h.ledgerService.Export(c.Context(), userID)
	if err != nil {
		return respondError(c, h.logger, err)
	}

	return c.JSON(resp)
}
