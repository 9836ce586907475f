package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/fleetline/dispatch/internal/pkg/jwt"
	"github.com/fleetline/dispatch/internal/pkg/models"
	"github.com/fleetline/dispatch/internal/utils"
)

const callerContextKey = "caller"

// CallerResolver resolves a verified token's user id against the identity
// store. A token whose user no longer exists must not authenticate.
type CallerResolver interface {
	ResolveCaller(ctx context.Context, userID string) (*models.CallerIdentity, error)
}

// JWTAuthMiddleware creates a middleware for bearer-token authentication.
// The embedded role claim is never trusted on its own: the caller identity
// is always re-resolved from the identity store.
func JWTAuthMiddleware(config models.JWTConfig, resolver CallerResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "No token provided")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid or expired token")
			}

			caller, err := resolver.ResolveCaller(c.Request().Context(), claims.UserID)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(callerContextKey, caller)
			c.Set("user_id", caller.UserID)

			return next(c)
		}
	}
}

// AdminOnly gates a route to admin-role callers
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			caller, ok := CallerFromContext(c)
			if !ok {
				return utils.UnauthorizedResponse(c, "No token provided")
			}
			if caller.Role != models.RoleAdmin {
				return utils.ForbiddenResponse(c, "Admin access required")
			}
			return next(c)
		}
	}
}

// CallerFromContext extracts the authenticated caller set by the JWT middleware
func CallerFromContext(c echo.Context) (*models.CallerIdentity, bool) {
	caller, ok := c.Get(callerContextKey).(*models.CallerIdentity)
	return caller, ok
}
