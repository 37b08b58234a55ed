package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/pkg/errors"
	"github.com/places-directory/internal/usecase"
)

func sampleStats() *domain.DirectoryStats {
	return &domain.DirectoryStats{
		TotalPlaces: 4,
		PlacesByCategory: map[string]int{
			"DIGITAL_FACTORIES": 2,
			"ROBOSMITHS":        1,
			"TECHNO_FARMERS":    1,
		},
		TotalCompanies:   2,
		TotalIndividuals: 2,
	}
}

func TestStatsUseCase_GetStats(t *testing.T) {
	ctx := context.Background()

	t.Run("serves from cache", func(t *testing.T) {
		stats := &MockStatsRepository{}
		cache := &MockCacheRepository{}
		cache.On("GetStats", ctx).Return(sampleStats(), nil)

		uc := usecase.NewStatsUseCase(stats, cache, zap.NewNop(), time.Minute)
		got, err := uc.GetStats(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 4, got.TotalPlaces)
		stats.AssertNotCalled(t, "GetStats", mock.Anything)
	})

	t.Run("recomputes on cache miss", func(t *testing.T) {
		stats := &MockStatsRepository{}
		cache := &MockCacheRepository{}
		cache.On("GetStats", ctx).Return(nil, nil)
		stats.On("GetStats", ctx).Return(sampleStats(), nil)
		cache.On("SetStats", ctx, mock.Anything, time.Minute).Return(nil)

		uc := usecase.NewStatsUseCase(stats, cache, zap.NewNop(), time.Minute)
		got, err := uc.GetStats(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 2, got.TotalCompanies)
		cache.AssertExpectations(t)
	})

	t.Run("cache write failure is non-fatal", func(t *testing.T) {
		stats := &MockStatsRepository{}
		cache := &MockCacheRepository{}
		cache.On("GetStats", ctx).Return(nil, nil)
		stats.On("GetStats", ctx).Return(sampleStats(), nil)
		cache.On("SetStats", ctx, mock.Anything, time.Minute).Return(errors.ErrCacheError)

		uc := usecase.NewStatsUseCase(stats, cache, zap.NewNop(), time.Minute)
		got, err := uc.GetStats(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		stats := &MockStatsRepository{}
		cache := &MockCacheRepository{}
		cache.On("GetStats", ctx).Return(nil, nil)
		stats.On("GetStats", ctx).Return(nil, errors.ErrDatabaseError)

		uc := usecase.NewStatsUseCase(stats, cache, zap.NewNop(), time.Minute)
		_, err := uc.GetStats(ctx)

		assert.ErrorIs(t, err, errors.ErrDatabaseError)
	})
}
