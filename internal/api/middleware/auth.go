package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/neemaflex/platform-api/internal/api/metrics"
	"github.com/neemaflex/platform-api/internal/core/domain"
	"github.com/neemaflex/platform-api/internal/core/ports"
)

// userContextKey is where Auth stores the resolved *domain.User.
const userContextKey = "current_user"

// Auth validates the bearer token and resolves the stored user record.
// The caller's identity is re-resolved on every request; nothing is
// cached beyond the request's lifetime.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}

			subject, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			user, err := users.FindByID(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "Could not validate credentials")
				}
				return err
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// ActiveUser rejects callers whose account has been deactivated. It must
// run after Auth.
func ActiveUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}
			if !user.IsActive {
				return echo.NewHTTPError(http.StatusBadRequest, "Inactive user")
			}
			return next(c)
		}
	}
}

// CurrentUser returns the user resolved by Auth, or nil when the
// middleware has not run.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}

// SetCurrentUser injects a user into the request context. Test helper.
func SetCurrentUser(c echo.Context, user *domain.User) {
	c.Set(userContextKey, user)
}
