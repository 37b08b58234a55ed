package stats_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/usecase"
	"github.com/places-directory/internal/worker/stats"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

// MockStatsRepository is a mock of StatsRepository
type MockStatsRepository struct {
	mock.Mock
}

func (m *MockStatsRepository) GetStats(ctx context.Context) (*domain.DirectoryStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DirectoryStats), args.Error(1)
}

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) DataVersion(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCacheRepository) BumpDataVersion(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockCacheRepository) GetNearby(ctx context.Context, version int64, lat, lng, radius float64) ([]byte, error) {
	args := m.Called(ctx, version, lat, lng, radius)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) SetNearby(ctx context.Context, version int64, lat, lng, radius float64, data []byte, ttl time.Duration) error {
	args := m.Called(ctx, version, lat, lng, radius, data, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetStats(ctx context.Context) (*domain.DirectoryStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DirectoryStats), args.Error(1)
}

func (m *MockCacheRepository) SetStats(ctx context.Context, stats *domain.DirectoryStats, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

func TestWorker_RefreshesStatsOnEvent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := &MockStreamRepository{}
	statsRepo := &MockStatsRepository{}
	cache := &MockCacheRepository{}

	messages := make(chan domain.StreamMessage, 2)

	stream.On("CreateConsumerGroup", mock.Anything, domain.PlaceEventsStream, "test-group").Return(nil)
	stream.On("ConsumeStream", mock.Anything, domain.PlaceEventsStream, "test-group", mock.Anything).
		Return((<-chan domain.StreamMessage)(messages), nil)
	stream.On("AckMessage", mock.Anything, domain.PlaceEventsStream, "test-group", "1-0").Return(nil)
	stream.On("AckMessage", mock.Anything, domain.PlaceEventsStream, "test-group", "2-0").Return(nil)

	statsRepo.On("GetStats", mock.Anything).Return(&domain.DirectoryStats{TotalPlaces: 1}, nil)
	cache.On("SetStats", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	event, err := json.Marshal(domain.PlaceEvent{
		EventID:    "evt-1",
		Type:       domain.EventPlaceCreated,
		PlaceID:    1,
		OwnerType:  domain.OwnerTypeCompany,
		OccurredAt: time.Now().UTC(),
	})
	assert.NoError(t, err)

	messages <- domain.StreamMessage{ID: "1-0", Data: string(event)}
	// Malformed payloads are acked and skipped
	messages <- domain.StreamMessage{ID: "2-0", Data: "{not json"}
	close(messages)

	statsUC := usecase.NewStatsUseCase(statsRepo, cache, zap.NewNop(), time.Minute)
	worker := stats.NewWorker(stream, statsUC, "test-group", 1, zap.NewNop())

	err = worker.Start(ctx)
	assert.NoError(t, err)

	stream.AssertExpectations(t)
	statsRepo.AssertNumberOfCalls(t, "GetStats", 1)
}
