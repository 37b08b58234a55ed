package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/places-directory/internal/pkg/utils"
	"github.com/places-directory/internal/usecase"
	"go.uber.org/zap"
)

type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStats godoc
// @Summary Directory statistics
// @Description Returns aggregate counts over places and owners, served from cache when fresh.
// @Tags Stats
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.DirectoryStats}
// @Failure 403 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.statsUC.GetStats(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}
