package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/places-directory/internal/pkg/utils"
	"github.com/places-directory/internal/usecase"
	"go.uber.org/zap"
)

type AdminHandler struct {
	adminUC *usecase.AdminUseCase
	logger  *zap.Logger
}

func NewAdminHandler(adminUC *usecase.AdminUseCase, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{
		adminUC: adminUC,
		logger:  logger,
	}
}

// ClearAllData godoc
// @Summary Clear all directory data
// @Description Deletes all companies, individuals and places, owners first.
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/admin/clear-all-data [delete]
func (h *AdminHandler) ClearAllData(c *fiber.Ctx) error {
	if err := h.adminUC.ClearAllData(c.Context()); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"message": "All data cleared successfully"}, nil)
}
