package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/places-directory/internal/pkg/errors"
	"github.com/places-directory/internal/pkg/utils"
	"github.com/places-directory/internal/pkg/validator"
	"github.com/places-directory/internal/usecase"
	"github.com/places-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

type IndividualHandler struct {
	individualUC *usecase.IndividualUseCase
	logger       *zap.Logger
}

func NewIndividualHandler(individualUC *usecase.IndividualUseCase, logger *zap.Logger) *IndividualHandler {
	return &IndividualHandler{
		individualUC: individualUC,
		logger:       logger,
	}
}

// Create godoc
// @Summary Create an individual with their place
// @Description Creates a new place and an individual owning it in a single transaction.
// @Tags Individuals
// @Accept json
// @Produce json
// @Param request body dto.CreateIndividualRequest true "Individual with embedded place"
// @Success 200 {object} utils.SuccessResponse{data=dto.OwnerCreatedResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/individuals [post]
func (h *IndividualHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateIndividualRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.individualUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Update godoc
// @Summary Update an individual
// @Description Updates owner fields only; the linked place is not modified.
// @Tags Individuals
// @Accept json
// @Produce json
// @Param id path int true "Individual ID"
// @Param request body dto.UpdateIndividualRequest true "Owner fields"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/individuals/{id} [put]
func (h *IndividualHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.SendError(c, errors.ErrValidation)
	}

	var req dto.UpdateIndividualRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.individualUC.Update(c.Context(), int64(id), req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"message": "Individual updated successfully"}, nil)
}

// Delete godoc
// @Summary Delete an individual
// @Description Deletes the individual and their place in a single transaction.
// @Tags Individuals
// @Produce json
// @Param id path int true "Individual ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/individuals/{id} [delete]
func (h *IndividualHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.SendError(c, errors.ErrValidation)
	}

	if err := h.individualUC.Delete(c.Context(), int64(id)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"message": "Individual deleted successfully"}, nil)
}
