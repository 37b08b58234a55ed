package repository

import (
	"context"

	"github.com/places-directory/internal/domain"
)

// StreamRepository defines redis stream access for place events.
type StreamRepository interface {
	// PublishToStream serializes data as JSON and appends it to the stream.
	PublishToStream(ctx context.Context, stream string, data interface{}) error

	// CreateConsumerGroup creates the consumer group, creating the stream
	// if needed. Safe to call when the group already exists.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeStream delivers unread messages until ctx is cancelled.
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	// AckMessage acknowledges a processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error
}
