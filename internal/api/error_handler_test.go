package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/neemaflex/platform-api/internal/core/domain"
)

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		code   int
		detail string
	}{
		{"invalid phone", domain.ErrInvalidPhone, http.StatusBadRequest, "Invalid phone number format"},
		{"email taken", domain.ErrEmailTaken, http.StatusBadRequest, "Email already registered"},
		{"phone taken", domain.ErrPhoneTaken, http.StatusBadRequest, "Phone number already registered"},
		{"bad credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "Incorrect email or password"},
		{"inactive", domain.ErrInactiveUser, http.StatusBadRequest, "Inactive user"},
		{"invalid token", domain.ErrInvalidToken, http.StatusUnauthorized, "Could not validate credentials"},
		{"refreshed user gone", domain.ErrTokenUserNotFound, http.StatusUnauthorized, "User not found"},
		{"throttled", domain.ErrTooManyAttempts, http.StatusTooManyRequests, "Too many login attempts"},
		{"provider exists", domain.ErrProviderExists, http.StatusBadRequest, "Service provider profile already exists"},
		{"provider missing", domain.ErrProviderNotFound, http.StatusNotFound, "Service provider profile not found"},
		{"provider role", domain.ErrProviderRoleRequired, http.StatusForbidden, "Only service providers can access this endpoint"},
		{"provider create role", domain.ErrProviderCreateNotAllowed, http.StatusForbidden, "Only service providers can create provider profiles"},
		{"admin role", domain.ErrAdminRoleRequired, http.StatusForbidden, "Admin access required"},
		{"user missing", domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := NewHTTPErrorHandler(zerolog.Nop())
			handler(tc.err, c)

			if rec.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, rec.Code)
			}
			var resp map[string]string
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if resp["detail"] != tc.detail {
				t.Fatalf("expected detail %q, got %q", tc.detail, resp["detail"])
			}
		})
	}
}

func TestHTTPErrorHandler_WrappedConflict(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// a repository-wrapped phone conflict must still surface as 400,
	// never as an internal error
	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(fmt.Errorf("update user: %w", domain.ErrPhoneTaken), c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["detail"] != "Phone number already registered" {
		t.Fatalf("expected conflict detail, got %q", resp["detail"])
	}
}

func TestHTTPErrorHandler_InvalidCategories(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(&domain.InvalidCategoriesError{Categories: []string{"plumbing", "magic"}}, c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["detail"] != "invalid service categories: plumbing magic" {
		t.Fatalf("expected offending categories listed, got %q", resp["detail"])
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated"), c)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_Unknown(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewHTTPErrorHandler(zerolog.Nop())
	handler(errMongoDown, c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp map[string]string
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["detail"] != "Internal server error" {
		t.Fatalf("internal cause leaked: %q", resp["detail"])
	}
}

var errMongoDown = errTest("connection refused")

type errTest string

func (e errTest) Error() string { return string(e) }
