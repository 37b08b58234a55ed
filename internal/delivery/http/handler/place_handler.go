package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/places-directory/internal/pkg/utils"
	"github.com/places-directory/internal/pkg/validator"
	"github.com/places-directory/internal/usecase"
	"github.com/places-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

type PlaceHandler struct {
	nearbyUC *usecase.NearbyUseCase
	logger   *zap.Logger
}

func NewPlaceHandler(nearbyUC *usecase.NearbyUseCase, logger *zap.Logger) *PlaceHandler {
	return &PlaceHandler{
		nearbyUC: nearbyUC,
		logger:   logger,
	}
}

// Nearby godoc
// @Summary Find places within a radius
// @Description Returns places within the given radius of the query point, nearest first, with owner data denormalized into each row.
// @Tags Places
// @Produce json
// @Param lat query number true "Latitude in degrees"
// @Param lng query number true "Longitude in degrees"
// @Param radius query number true "Radius in meters (0 matches exact positions only)"
// @Param categories query string false "Comma-separated category filter (DIGITAL_FACTORY, ROBOSMITH, TECHNO_FARMER)"
// @Success 200 {object} utils.SuccessResponse{data=dto.NearbyResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/places/nearby [get]
func (h *PlaceHandler) Nearby(c *fiber.Ctx) error {
	req := dto.NearbyRequest{
		Lat:    c.QueryFloat("lat"),
		Lng:    c.QueryFloat("lng"),
		Radius: c.QueryFloat("radius"),
	}
	if raw := c.Query("categories"); raw != "" {
		for _, cat := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(cat); trimmed != "" {
				req.Categories = append(req.Categories, trimmed)
			}
		}
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.nearbyUC.Nearby(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}
