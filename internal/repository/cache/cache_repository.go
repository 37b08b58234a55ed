package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	dataVersionKey = "places:data_version"
	statsKey       = "places:stats"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

func (r *cacheRepository) DataVersion(ctx context.Context) (int64, error) {
	val, err := r.client.Get(ctx, dataVersionKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		r.logger.Error("Failed to get data version", zap.Error(err))
		return 0, fmt.Errorf("cache get error: %w", err)
	}

	return val, nil
}

func (r *cacheRepository) BumpDataVersion(ctx context.Context) error {
	err := r.client.Incr(ctx, dataVersionKey).Err()
	if err != nil {
		r.logger.Error("Failed to bump data version", zap.Error(err))
		return fmt.Errorf("cache incr error: %w", err)
	}

	r.logger.Debug("Data version bumped")
	return nil
}

func nearbyKey(version int64, lat, lng, radius float64) string {
	return fmt.Sprintf("nearby:%d:%.6f:%.6f:%.1f", version, lat, lng, radius)
}

func (r *cacheRepository) GetNearby(ctx context.Context, version int64, lat, lng, radius float64) ([]byte, error) {
	return r.Get(ctx, nearbyKey(version, lat, lng, radius))
}

func (r *cacheRepository) SetNearby(ctx context.Context, version int64, lat, lng, radius float64, data []byte, ttl time.Duration) error {
	return r.Set(ctx, nearbyKey(version, lat, lng, radius), data, ttl)
}

func (r *cacheRepository) GetStats(ctx context.Context) (*domain.DirectoryStats, error) {
	data, err := r.Get(ctx, statsKey)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var stats domain.DirectoryStats
	if err := json.Unmarshal(data, &stats); err != nil {
		r.logger.Error("Failed to unmarshal stats from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}

	return &stats, nil
}

func (r *cacheRepository) SetStats(ctx context.Context, stats *domain.DirectoryStats, ttl time.Duration) error {
	data, err := json.Marshal(stats)
	if err != nil {
		r.logger.Error("Failed to marshal stats", zap.Error(err))
		return fmt.Errorf("marshal stats: %w", err)
	}

	return r.Set(ctx, statsKey, data, ttl)
}
