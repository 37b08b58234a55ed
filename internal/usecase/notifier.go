package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"go.uber.org/zap"
)

// changeNotifier fans out the side effects of a committed mutation: it
// bumps the cache data version (invalidating nearby results) and
// publishes a place event for background consumers. Both are best effort;
// a failure is logged and never fails the request.
type changeNotifier struct {
	cache  repository.CacheRepository
	stream repository.StreamRepository
	logger *zap.Logger
}

func newChangeNotifier(
	cache repository.CacheRepository,
	stream repository.StreamRepository,
	logger *zap.Logger,
) *changeNotifier {
	return &changeNotifier{
		cache:  cache,
		stream: stream,
		logger: logger,
	}
}

func (n *changeNotifier) PlaceChanged(ctx context.Context, eventType string, placeID int64, ownerType string) {
	if err := n.cache.BumpDataVersion(ctx); err != nil {
		n.logger.Warn("Failed to bump data version", zap.Error(err))
	}

	event := domain.PlaceEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		PlaceID:    placeID,
		OwnerType:  ownerType,
		OccurredAt: time.Now().UTC(),
	}
	if err := n.stream.PublishToStream(ctx, domain.PlaceEventsStream, event); err != nil {
		n.logger.Warn("Failed to publish place event",
			zap.String("type", eventType),
			zap.Int64("place_id", placeID),
			zap.Error(err))
	}
}
