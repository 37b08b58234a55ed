package usecase

import (
	"context"

	"github.com/places-directory/internal/domain/repository"
	"github.com/places-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

// AuthUseCase is the access gate: every operation runs only after a
// presented key is found active in the allowlist.
type AuthUseCase struct {
	keys   repository.APIKeyRepository
	logger *zap.Logger
}

func NewAuthUseCase(keys repository.APIKeyRepository, logger *zap.Logger) *AuthUseCase {
	return &AuthUseCase{
		keys:   keys,
		logger: logger,
	}
}

// Authorize returns ErrForbidden unless the key exists and is active. The
// denial is uniform: an unknown key and a deactivated key produce the
// exact same error.
func (uc *AuthUseCase) Authorize(ctx context.Context, presentedKey string) error {
	if presentedKey == "" {
		return errors.ErrForbidden
	}

	active, err := uc.keys.FindActive(ctx, presentedKey)
	if err != nil {
		uc.logger.Error("API key lookup failed", zap.Error(err))
		return err
	}
	if !active {
		return errors.ErrForbidden
	}

	return nil
}
