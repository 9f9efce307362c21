package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fieldline/crm-api/internal/core/domain"
)

// RBAC enforces role-based access control. The allow-set is built once per
// route; requests without an attached identity are rejected even though the
// Auth middleware should always run first.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := c.Get(ContextUserKey).(domain.AuthUser)
			if !ok {
				return echo.NewHTTPError(http.StatusForbidden, "User not authenticated")
			}
			if _, ok := allowed[user.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "Insufficient permissions")
			}
			return next(c)
		}
	}
}
