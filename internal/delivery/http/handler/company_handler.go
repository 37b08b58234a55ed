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

type CompanyHandler struct {
	companyUC *usecase.CompanyUseCase
	logger    *zap.Logger
}

func NewCompanyHandler(companyUC *usecase.CompanyUseCase, logger *zap.Logger) *CompanyHandler {
	return &CompanyHandler{
		companyUC: companyUC,
		logger:    logger,
	}
}

// Create godoc
// @Summary Create a company with its place
// @Description Creates a new place and a company owning it in a single transaction.
// @Tags Companies
// @Accept json
// @Produce json
// @Param request body dto.CreateCompanyRequest true "Company with embedded place"
// @Success 200 {object} utils.SuccessResponse{data=dto.OwnerCreatedResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/companies [post]
func (h *CompanyHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.companyUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Update godoc
// @Summary Update a company
// @Description Updates owner fields only; the linked place is not modified.
// @Tags Companies
// @Accept json
// @Produce json
// @Param id path int true "Company ID"
// @Param request body dto.UpdateCompanyRequest true "Owner fields"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/companies/{id} [put]
func (h *CompanyHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.SendError(c, errors.ErrValidation)
	}

	var req dto.UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrValidation)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.companyUC.Update(c.Context(), int64(id), req); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"message": "Company updated successfully"}, nil)
}

// Delete godoc
// @Summary Delete a company
// @Description Deletes the company and its place in a single transaction.
// @Tags Companies
// @Produce json
// @Param id path int true "Company ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/v1/companies/{id} [delete]
func (h *CompanyHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.SendError(c, errors.ErrValidation)
	}

	if err := h.companyUC.Delete(c.Context(), int64(id)); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"message": "Company deleted successfully"}, nil)
}
