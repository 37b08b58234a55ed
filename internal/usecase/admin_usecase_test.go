package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/pkg/errors"
	"github.com/places-directory/internal/usecase"
)

func TestAdminUseCase_ClearAllData(t *testing.T) {
	ctx := context.Background()

	t.Run("clears everything and notifies", func(t *testing.T) {
		places := &MockPlaceRepository{}
		cache := &MockCacheRepository{}
		stream := &MockStreamRepository{}

		places.On("ClearAll", ctx).Return(nil)
		cache.On("BumpDataVersion", ctx).Return(nil)
		stream.On("PublishToStream", ctx, domain.PlaceEventsStream, mock.MatchedBy(func(data interface{}) bool {
			event, ok := data.(domain.PlaceEvent)
			return ok && event.Type == domain.EventDataCleared
		})).Return(nil)

		uc := usecase.NewAdminUseCase(places, cache, stream, zap.NewNop())
		assert.NoError(t, uc.ClearAllData(ctx))
		places.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("propagates store failure", func(t *testing.T) {
		places := &MockPlaceRepository{}
		cache := &MockCacheRepository{}
		places.On("ClearAll", ctx).Return(errors.ErrDatabaseError)

		uc := usecase.NewAdminUseCase(places, cache, &MockStreamRepository{}, zap.NewNop())
		err := uc.ClearAllData(ctx)

		assert.ErrorIs(t, err, errors.ErrDatabaseError)
		cache.AssertNotCalled(t, "BumpDataVersion", mock.Anything)
	})
}
