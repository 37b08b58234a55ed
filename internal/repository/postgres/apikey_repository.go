package postgres

import (
	"context"

	"github.com/places-directory/internal/domain"
	"github.com/places-directory/internal/domain/repository"
	"github.com/places-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

type apiKeyRepository struct {
	db     *DB
	logger *zap.Logger
}

func NewAPIKeyRepository(db *DB) repository.APIKeyRepository {
	return &apiKeyRepository{
		db:     db,
		logger: db.logger,
	}
}

func (r *apiKeyRepository) FindActive(ctx context.Context, key string) (bool, error) {
	var active bool
	err := r.db.GetContext(ctx, &active, `
		SELECT EXISTS (
			SELECT 1 FROM api_keys WHERE api_key = $1 AND is_active = TRUE
		)`, key,
	)
	if err != nil {
		r.logger.Error("Failed to look up API key", zap.Error(err))
		return false, errors.ErrDatabaseError
	}

	return active, nil
}

func (r *apiKeyRepository) Create(ctx context.Context, apiKey *domain.APIKey) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO api_keys (api_key, description, is_active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		apiKey.Key, apiKey.Description, apiKey.IsActive,
	).Scan(&apiKey.ID, &apiKey.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create API key", zap.Error(err))
		return errors.ErrDatabaseError
	}

	return nil
}

func (r *apiKeyRepository) List(ctx context.Context) ([]*domain.APIKey, error) {
	var keys []*domain.APIKey
	err := r.db.SelectContext(ctx, &keys, `
		SELECT id, api_key, description, is_active, created_at
		FROM api_keys
		ORDER BY id`,
	)
	if err != nil {
		r.logger.Error("Failed to list API keys", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return keys, nil
}

func (r *apiKeyRepository) SetActive(ctx context.Context, key string, active bool) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE api_keys SET is_active = $1 WHERE api_key = $2", active, key,
	)
	if err != nil {
		r.logger.Error("Failed to update API key status", zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrAPIKeyNotFound
	}

	return nil
}

func (r *apiKeyRepository) Delete(ctx context.Context, key string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM api_keys WHERE api_key = $1", key)
	if err != nil {
		r.logger.Error("Failed to delete API key", zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrAPIKeyNotFound
	}

	return nil
}
