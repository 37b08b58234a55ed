package usecase

import (
	"context"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"github.com/places-directory/internal/pkg/errors"
	"github.com/places-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

type IndividualUseCase struct {
	individuals repository.IndividualRepository
	notifier    *changeNotifier
	logger      *zap.Logger
}

func NewIndividualUseCase(
	individuals repository.IndividualRepository,
	cache repository.CacheRepository,
	stream repository.StreamRepository,
	logger *zap.Logger,
) *IndividualUseCase {
	return &IndividualUseCase{
		individuals: individuals,
		notifier:    newChangeNotifier(cache, stream, logger),
		logger:      logger,
	}
}

// Create inserts the place and its individual owner in one transaction.
func (uc *IndividualUseCase) Create(ctx context.Context, req dto.CreateIndividualRequest) (*dto.OwnerCreatedResponse, error) {
	place, err := placeFromInput(req.Place)
	if err != nil {
		return nil, err
	}

	individual := &domain.Individual{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}

	if err := uc.individuals.CreateWithPlace(ctx, individual, place); err != nil {
		uc.logger.Error("Failed to create individual", zap.Error(err))
		return nil, err
	}

	uc.notifier.PlaceChanged(ctx, domain.EventPlaceCreated, place.ID, domain.OwnerTypeIndividual)

	uc.logger.Info("Individual created",
		zap.Int64("individual_id", individual.ID),
		zap.Int64("place_id", place.ID))

	return &dto.OwnerCreatedResponse{
		ID:      individual.ID,
		PlaceID: individual.PlaceID,
	}, nil
}

// Update mutates owner fields only; the linked place is left untouched.
func (uc *IndividualUseCase) Update(ctx context.Context, id int64, req dto.UpdateIndividualRequest) error {
	individual, err := uc.individuals.GetByID(ctx, id)
	if err != nil {
		return err
	}

	individual.FirstName = req.FirstName
	individual.LastName = req.LastName
	individual.Email = req.Email

	if err := uc.individuals.Update(ctx, individual); err != nil {
		uc.logger.Error("Failed to update individual", zap.Int64("id", id), zap.Error(err))
		return err
	}

	uc.notifier.PlaceChanged(ctx, domain.EventPlaceUpdated, individual.PlaceID, domain.OwnerTypeIndividual)
	return nil
}

// Delete removes the individual and its place in one transaction.
func (uc *IndividualUseCase) Delete(ctx context.Context, id int64) error {
	placeID, err := uc.individuals.DeleteWithPlace(ctx, id)
	if err != nil {
		if err != errors.ErrIndividualNotFound {
			uc.logger.Error("Failed to delete individual", zap.Int64("id", id), zap.Error(err))
		}
		return err
	}

	uc.notifier.PlaceChanged(ctx, domain.EventPlaceDeleted, placeID, domain.OwnerTypeIndividual)
	return nil
}
