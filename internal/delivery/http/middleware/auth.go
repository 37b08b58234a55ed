package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/places-directory/internal/pkg/errors"
	"github.com/places-directory/internal/pkg/utils"
	"github.com/places-directory/internal/usecase"
	"go.uber.org/zap"
)

// HeaderAPIKey carries the presented key.
const HeaderAPIKey = "X-API-Key"

// APIKeyAuth gates every directory operation behind the static allowlist.
// The handler chain is never reached on denial, so a rejected request has
// no side effects. Store failures surface as such instead of leaking a
// forbidden/error distinction for bad keys.
func APIKeyAuth(authUC *usecase.AuthUseCase, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get(HeaderAPIKey)

		if err := authUC.Authorize(c.Context(), key); err != nil {
			if err == errors.ErrForbidden {
				logger.Debug("Request denied", zap.String("path", c.Path()))
			}
			return utils.SendError(c, err)
		}

		return c.Next()
	}
}
