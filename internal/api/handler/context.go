package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fieldline/crm-api/internal/api/middleware"
	"github.com/fieldline/crm-api/internal/core/domain"
)

// currentUser extracts the identity injected by the Auth middleware.
// A missing identity means the middleware did not run on this route.
func currentUser(c echo.Context) (domain.AuthUser, error) {
	user, ok := c.Get(middleware.ContextUserKey).(domain.AuthUser)
	if !ok {
		return domain.AuthUser{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
