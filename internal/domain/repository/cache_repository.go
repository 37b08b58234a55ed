package repository

import (
	"context"
	"time"

	"github.com/places-directory/internal/domain"
)

// CacheRepository defines the redis-backed cache. Nearby results are keyed
// by a data version that every mutation bumps, so stale entries simply
// stop being addressed and age out via TTL.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)

	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	Delete(ctx context.Context, key string) error

	Exists(ctx context.Context, key string) (bool, error)

	// DataVersion returns the current directory version (0 when unset).
	DataVersion(ctx context.Context) (int64, error)

	// BumpDataVersion invalidates all versioned cache entries.
	BumpDataVersion(ctx context.Context) error

	GetNearby(ctx context.Context, version int64, lat, lng, radius float64) ([]byte, error)

	SetNearby(ctx context.Context, version int64, lat, lng, radius float64, data []byte, ttl time.Duration) error

	GetStats(ctx context.Context) (*domain.DirectoryStats, error)

	SetStats(ctx context.Context, stats *domain.DirectoryStats, ttl time.Duration) error
}
