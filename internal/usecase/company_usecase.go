package usecase

import (
	"context"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"github.com/places-directory/internal/pkg/errors"
	"github.com/places-directory/internal/pkg/utils"
	"github.com/places-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

type CompanyUseCase struct {
	companies repository.CompanyRepository
	notifier  *changeNotifier
	logger    *zap.Logger
}

func NewCompanyUseCase(
	companies repository.CompanyRepository,
	cache repository.CacheRepository,
	stream repository.StreamRepository,
	logger *zap.Logger,
) *CompanyUseCase {
	return &CompanyUseCase{
		companies: companies,
		notifier:  newChangeNotifier(cache, stream, logger),
		logger:    logger,
	}
}

// Create inserts the place and its company owner in one transaction.
func (uc *CompanyUseCase) Create(ctx context.Context, req dto.CreateCompanyRequest) (*dto.OwnerCreatedResponse, error) {
	place, err := placeFromInput(req.Place)
	if err != nil {
		return nil, err
	}

	company := &domain.Company{
		Name:    req.Name,
		Website: req.Website,
		Email:   req.Email,
	}

	if err := uc.companies.CreateWithPlace(ctx, company, place); err != nil {
		uc.logger.Error("Failed to create company", zap.Error(err))
		return nil, err
	}

	uc.notifier.PlaceChanged(ctx, domain.EventPlaceCreated, place.ID, domain.OwnerTypeCompany)

	uc.logger.Info("Company created",
		zap.Int64("company_id", company.ID),
		zap.Int64("place_id", place.ID))

	return &dto.OwnerCreatedResponse{
		ID:      company.ID,
		PlaceID: company.PlaceID,
	}, nil
}

// Update mutates owner fields only; the linked place is left untouched.
func (uc *CompanyUseCase) Update(ctx context.Context, id int64, req dto.UpdateCompanyRequest) error {
	company, err := uc.companies.GetByID(ctx, id)
	if err != nil {
		return err
	}

	company.Name = req.Name
	company.Website = req.Website
	company.Email = req.Email

	if err := uc.companies.Update(ctx, company); err != nil {
		uc.logger.Error("Failed to update company", zap.Int64("id", id), zap.Error(err))
		return err
	}

	uc.notifier.PlaceChanged(ctx, domain.EventPlaceUpdated, company.PlaceID, domain.OwnerTypeCompany)
	return nil
}

// Delete removes the company and its place in one transaction.
func (uc *CompanyUseCase) Delete(ctx context.Context, id int64) error {
	placeID, err := uc.companies.DeleteWithPlace(ctx, id)
	if err != nil {
		if err != errors.ErrCompanyNotFound {
			uc.logger.Error("Failed to delete company", zap.Int64("id", id), zap.Error(err))
		}
		return err
	}

	uc.notifier.PlaceChanged(ctx, domain.EventPlaceDeleted, placeID, domain.OwnerTypeCompany)
	return nil
}

// placeFromInput validates the embedded place payload and converts it to
// the domain type.
func placeFromInput(in dto.PlaceInput) (*domain.Place, error) {
	if len(in.Position) != 2 || !utils.ValidateCoordinates(in.Lat(), in.Lng()) {
		return nil, errors.ErrInvalidCoordinates
	}

	category := domain.Category(in.Category)
	if !category.Valid() {
		return nil, errors.ErrValidation.WithDetails(map[string]interface{}{
			"category": in.Category,
		})
	}

	return &domain.Place{
		Lat:      in.Lat(),
		Lng:      in.Lng(),
		Title:    in.Title,
		Address:  in.Address,
		Category: category,
	}, nil
}
