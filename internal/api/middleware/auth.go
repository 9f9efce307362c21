package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fieldline/crm-api/internal/core/domain"
	"github.com/fieldline/crm-api/internal/core/ports"
	"github.com/fieldline/crm-api/pkg/token"
)

// ContextUserKey is the echo context key under which the authenticated
// identity is stored.
const ContextUserKey = "user"

// Auth validates the bearer token and resolves it to a live user record,
// attaching the identity to the request context. A valid token whose user
// has since been deleted is rejected.
func Auth(tokens *token.Manager, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "No token provided")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid or expired token")
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			c.Set(ContextUserKey, domain.AuthUser{
				ID:    user.ID,
				Email: user.Email,
				Role:  user.Role,
			})

			return next(c)
		}
	}
}
