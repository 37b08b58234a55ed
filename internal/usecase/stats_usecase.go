package usecase

import (
	"context"
	"time"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"go.uber.org/zap"
)

type StatsUseCase struct {
	stats    repository.StatsRepository
	cache    repository.CacheRepository
	logger   *zap.Logger
	cacheTTL time.Duration
}

func NewStatsUseCase(
	stats repository.StatsRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		stats:    stats,
		cache:    cache,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

// GetStats serves the cached aggregate counts, recomputing on a miss.
func (uc *StatsUseCase) GetStats(ctx context.Context) (*domain.DirectoryStats, error) {
	cached, err := uc.cache.GetStats(ctx)
	if err != nil {
		uc.logger.Warn("Stats cache lookup failed", zap.Error(err))
	}
	if cached != nil {
		return cached, nil
	}

	return uc.RefreshStats(ctx)
}

// RefreshStats recomputes the counts from the store and repopulates the
// cache. The stats worker calls this on every place event.
func (uc *StatsUseCase) RefreshStats(ctx context.Context) (*domain.DirectoryStats, error) {
	stats, err := uc.stats.GetStats(ctx)
	if err != nil {
		uc.logger.Error("Failed to compute directory stats", zap.Error(err))
		return nil, err
	}

	if err := uc.cache.SetStats(ctx, stats, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache directory stats", zap.Error(err))
	}

	return stats, nil
}
