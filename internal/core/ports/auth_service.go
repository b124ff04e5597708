package ports

import (
	"context"

	"github.com/neemaflex/platform-api/internal/core/domain"
)

// RegisterInput carries the fields required to create an account.
type RegisterInput struct {
	Email     string
	Phone     string
	FirstName string
	LastName  string
	Role      string
	Password  string
}

// TokenPair is the result of a successful registration or login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	User         *domain.User
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*TokenPair, error)
	Login(ctx context.Context, email, password string) (*TokenPair, error)
	// Refresh mints a new access token from a valid refresh token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	IssueAccess(subject string) (string, error)
	IssueRefresh(subject string) (string, error)
	// Verify returns the subject claim, or domain.ErrInvalidToken on any
	// signature, format, or expiry failure.
	Verify(token string) (string, error)
}

// LoginThrottle limits repeated failed login attempts per email.
type LoginThrottle interface {
	TooMany(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
