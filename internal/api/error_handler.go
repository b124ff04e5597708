package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/neemaflex/platform-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Detail string `json:"detail"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"detail": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Detail: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	var ice *domain.InvalidCategoriesError
	if errors.As(err, &ice) {
		return http.StatusBadRequest, ice.Error()
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidPhone):
		return http.StatusBadRequest, "Invalid phone number format"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "Email already registered"
	case errors.Is(err, domain.ErrPhoneTaken):
		return http.StatusBadRequest, "Phone number already registered"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "Incorrect email or password"
	case errors.Is(err, domain.ErrInactiveUser):
		return http.StatusBadRequest, "Inactive user"
	case errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized, "Could not validate credentials"
	case errors.Is(err, domain.ErrTokenUserNotFound):
		return http.StatusUnauthorized, "User not found"
	case errors.Is(err, domain.ErrTooManyAttempts):
		return http.StatusTooManyRequests, "Too many login attempts"
	case errors.Is(err, domain.ErrProviderExists):
		return http.StatusBadRequest, "Service provider profile already exists"
	case errors.Is(err, domain.ErrProviderNotFound):
		return http.StatusNotFound, "Service provider profile not found"
	case errors.Is(err, domain.ErrProviderRoleRequired):
		return http.StatusForbidden, "Only service providers can access this endpoint"
	case errors.Is(err, domain.ErrProviderCreateNotAllowed):
		return http.StatusForbidden, "Only service providers can create provider profiles"
	case errors.Is(err, domain.ErrAdminRoleRequired):
		return http.StatusForbidden, "Admin access required"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "User not found"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Internal server error"
}
