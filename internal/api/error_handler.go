package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fieldline/crm-api/internal/api/handler"
	"github.com/fieldline/crm-api/internal/core/domain"
)

// errorEnvelope is the canonical error body for all API failures.
type errorEnvelope struct {
	Error      string   `json:"error"`
	StatusCode int      `json:"statusCode"`
	Details    []string `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error kinds to their HTTP status codes.
//   - Renders validation failures with the full per-field details list.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg, details := resolveError(err, log, c)
		_ = c.JSON(code, errorEnvelope{Error: msg, StatusCode: code, Details: details})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string, []string) {
	// Validation failures carry the complete list of collected violations.
	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, "Validation failed", ve.Details
	}

	// Echo's own errors (bind failures, 404 from router, middleware rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), nil
	}

	// Domain error kinds carry their own client-facing message.
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, err.Error(), nil
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, err.Error(), nil
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, err.Error(), nil
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, err.Error(), nil
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error", nil
}
