package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/neemaflex/platform-api/internal/core/domain"
	"github.com/neemaflex/platform-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, input ports.RegisterInput) (*ports.TokenPair, error)
	loginFn    func(ctx context.Context, email, password string) (*ports.TokenPair, error)
	refreshFn  func(ctx context.Context, refreshToken string) (string, error)
}

func (s *stubAuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.TokenPair, error) {
	return s.registerFn(ctx, input)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return s.refreshFn(ctx, refreshToken)
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

const registerBody = `{"email":"a@x.com","phone":"+12025550123","first_name":"Ada","last_name":"Lovelace","role":"customer","password":"longenough1"}`

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(_ context.Context, input ports.RegisterInput) (*ports.TokenPair, error) {
			if input.Email != "a@x.com" || input.Role != "customer" {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.TokenPair{
				AccessToken:  "access",
				RefreshToken: "refresh",
				User:         &domain.User{ID: "user-1", Email: input.Email, Role: input.Role, KYCStatus: domain.KYCPending},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/register", registerBody)
	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "access" || resp["refresh_token"] != "refresh" || resp["token_type"] != "bearer" {
		t.Fatalf("unexpected token payload: %+v", resp)
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["kyc_status"] != "pending" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
	if _, leaked := user["hashed_password"]; leaked {
		t.Fatalf("hashed_password leaked to caller")
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.TokenPair, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub)

	body := `{"email":"a@x.com","phone":"+12025550123","first_name":"A","last_name":"B","role":"customer","password":"short"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register", body)

	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_BadRole(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.TokenPair, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	body := `{"email":"a@x.com","phone":"+12025550123","first_name":"A","last_name":"B","role":"superuser","password":"longenough1"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register", body)

	err := h.Register(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_DuplicateEmailPassthrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		registerFn: func(context.Context, ports.RegisterInput) (*ports.TokenPair, error) {
			return nil, domain.ErrEmailTaken
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/register", registerBody)
	if err := h.Register(c); !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, email, password string) (*ports.TokenPair, error) {
			if email != "a@x.com" || password != "longenough1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &ports.TokenPair{
				AccessToken:  "access",
				RefreshToken: "refresh",
				User:         &domain.User{ID: "user-1", Email: email},
			}, nil
		},
	})

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"longenough1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_BadCredentialsPassthrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.TokenPair, error) {
			return nil, domain.ErrInvalidCredentials
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login", `{"email":"a@x.com","password":"badpass12"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (*ports.TokenPair, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/login", "{")
	err := h.Login(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Refresh_Success(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		refreshFn: func(_ context.Context, token string) (string, error) {
			if token != "refresh-token" {
				t.Fatalf("unexpected token: %s", token)
			}
			return "new-access", nil
		},
	})

	c, rec := newTestContext(t, http.MethodPost, "/api/auth/refresh", `{"refresh_token":"refresh-token"}`)
	if err := h.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["access_token"] != "new-access" || resp["token_type"] != "bearer" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if _, present := resp["refresh_token"]; present {
		t.Fatalf("refresh response must not include a refresh token")
	}
}

func TestAuthHandler_Refresh_InvalidPassthrough(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		refreshFn: func(context.Context, string) (string, error) {
			return "", domain.ErrInvalidToken
		},
	})

	c, _ := newTestContext(t, http.MethodPost, "/api/auth/refresh", `{"refresh_token":"expired"}`)
	if err := h.Refresh(c); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken to propagate, got %v", err)
	}
}
