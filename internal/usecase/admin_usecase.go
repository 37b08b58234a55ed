package usecase

import (
	"context"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"go.uber.org/zap"
)

type AdminUseCase struct {
	places   repository.PlaceRepository
	notifier *changeNotifier
	logger   *zap.Logger
}

func NewAdminUseCase(
	places repository.PlaceRepository,
	cache repository.CacheRepository,
	stream repository.StreamRepository,
	logger *zap.Logger,
) *AdminUseCase {
	return &AdminUseCase{
		places:   places,
		notifier: newChangeNotifier(cache, stream, logger),
		logger:   logger,
	}
}

// ClearAllData wipes companies, individuals and places, owners first.
func (uc *AdminUseCase) ClearAllData(ctx context.Context) error {
	if err := uc.places.ClearAll(ctx); err != nil {
		uc.logger.Error("Failed to clear directory data", zap.Error(err))
		return err
	}

	uc.notifier.PlaceChanged(ctx, domain.EventDataCleared, 0, "")
	uc.logger.Info("All directory data cleared")
	return nil
}
