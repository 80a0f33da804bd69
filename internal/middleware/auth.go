package middleware

import (
	"strings"

	"github.com/charity-platform/backend/internal/auth"
	"github.com/charity-platform/backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const (
	CtxUsername = "username"
	CtxIsAdmin  = "is_admin"
)

// AdminMiddleware guards the privileged-only operations: it requires a
// valid bearer token whose claims carry the admin flag. Everything else on
// the API stays open.
func AdminMiddleware(cfg *config.Config, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin access required"})
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "invalid authorization format"})
		}

		claims, err := auth.ParseJWT(cfg.JWTSecret, tokenStr)
		if err != nil {
			log.Debug("jwt parse error", zap.Error(err))
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "invalid or expired token"})
		}
		if !claims.IsAdmin {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin access required"})
		}

		c.Locals(CtxUsername, claims.Username)
		c.Locals(CtxIsAdmin, claims.IsAdmin)

		return c.Next()
	}
}
