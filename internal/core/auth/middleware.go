package auth

import (
	"cargo-tracker/internal/core/apperr"
	"cargo-tracker/internal/core/logger"
	"cargo-tracker/internal/core/respond"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var (
	errUnauthenticated = apperr.Unauthenticated("authentication required")
	errInvalidToken    = apperr.Unauthenticated("invalid or expired credentials")
	errForbidden       = apperr.Forbidden("insufficient permissions")
)

// Authenticate resolves the caller when credentials are present.
// It never rejects: public routes stay reachable with a stale cookie.
func Authenticate(r *Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p, err := r.Resolve(c)
		switch {
		case err == nil:
			WithPrincipal(c, p)
		case IsInvalid(err):
			c.Locals("auth_error", err)
			logger.Get().Debug("Rejected credentials",
				zap.String("ray_id", respond.RayID(c)),
				zap.Error(err),
			)
		}
		return c.Next()
	}
}

// RequireAuth rejects anonymous callers with 401.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if FromCtx(c) == nil {
			return respond.Error(c, unauthenticatedError(c))
		}
		return c.Next()
	}
}

// RequireRole rejects anonymous callers with 401 and callers lacking every role with 403.
func RequireRole(roles ...Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := FromCtx(c)
		if p == nil {
			return respond.Error(c, unauthenticatedError(c))
		}
		if !p.HasRole(roles...) {
			return respond.Error(c, errForbidden, zap.String("role", string(p.Role)))
		}
		return c.Next()
	}
}

func unauthenticatedError(c *fiber.Ctx) error {
	if err, ok := c.Locals("auth_error").(error); ok && err != nil {
		return errInvalidToken
	}
	return errUnauthenticated
}
