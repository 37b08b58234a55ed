package repository

import (
	"context"

	"github.com/places-directory/internal/domain"
)

// APIKeyRepository defines the static access allowlist. FindActive is the
// hot path; the remaining methods back the keygen admin tool.
type APIKeyRepository interface {
	// FindActive reports whether the key exists AND is active. A missing
	// key and an inactive key are indistinguishable to the caller.
	FindActive(ctx context.Context, key string) (bool, error)

	Create(ctx context.Context, apiKey *domain.APIKey) error

	List(ctx context.Context) ([]*domain.APIKey, error)

	SetActive(ctx context.Context, key string, active bool) error

	Delete(ctx context.Context, key string) error
}
