package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"github.com/places-directory/internal/usecase"
	"go.uber.org/zap"
)

// Worker keeps the cached directory statistics in sync by recomputing
// them whenever a place event arrives. Events of the same burst collapse
// into a single refresh.
type Worker struct {
	streamRepo    repository.StreamRepository
	statsUC       *usecase.StatsUseCase
	consumerGroup string
	consumerName  string
	maxRetries    int
	logger        *zap.Logger
}

func NewWorker(
	streamRepo repository.StreamRepository,
	statsUC *usecase.StatsUseCase,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *Worker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &Worker{
		streamRepo:    streamRepo,
		statsUC:       statsUC,
		consumerGroup: consumerGroup,
		consumerName:  consumerName,
		maxRetries:    maxRetries,
		logger:        logger,
	}
}

// Start consumes place events until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("Starting stats worker",
		zap.String("consumer_group", w.consumerGroup),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.PlaceEventsStream, w.consumerGroup); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	messages, err := w.streamRepo.ConsumeStream(ctx, domain.PlaceEventsStream, w.consumerGroup, w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stats worker stopped")
			return ctx.Err()

		case msg, ok := <-messages:
			if !ok {
				w.logger.Info("Event stream closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

func (w *Worker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	var event domain.PlaceEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		w.logger.Warn("Failed to parse place event, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		// Ack malformed messages so they do not clog the group
		_ = w.streamRepo.AckMessage(ctx, domain.PlaceEventsStream, w.consumerGroup, msg.ID)
		return
	}

	w.logger.Debug("Place event received",
		zap.String("type", event.Type),
		zap.Int64("place_id", event.PlaceID))

	var err error
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if _, err = w.statsUC.RefreshStats(ctx); err == nil {
			break
		}
		w.logger.Warn("Stats refresh failed",
			zap.Int("attempt", attempt),
			zap.Error(err))
		time.Sleep(time.Duration(attempt) * time.Second)
	}

	if err != nil {
		// Leave the message pending; it will be retried on the next read
		w.logger.Error("Giving up on stats refresh for now",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		return
	}

	if err := w.streamRepo.AckMessage(ctx, domain.PlaceEventsStream, w.consumerGroup, msg.ID); err != nil {
		w.logger.Warn("Failed to ack place event",
			zap.String("message_id", msg.ID),
			zap.Error(err))
	}
}
