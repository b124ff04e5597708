package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/neemaflex/platform-api/internal/core/domain"
	"github.com/neemaflex/platform-api/internal/core/ports"
)

// AuthService implements registration, login, and token refresh.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenService
	throttle ports.LoginThrottle
	logger   zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, throttle ports.LoginThrottle, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, throttle: throttle, logger: logger}
}

// Register validates the phone format, rejects duplicate email or phone,
// hashes the password, persists the user, and issues both tokens.
//
// Uniqueness here is check-then-insert; the Mongo repository backs it
// with unique indexes so a concurrent duplicate surfaces as the same
// conflict error.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.TokenPair, error) {
	if !domain.ValidPhone(input.Phone) {
		return nil, domain.ErrInvalidPhone
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if _, err := s.users.FindByPhone(ctx, input.Phone); err == nil {
		return nil, domain.ErrPhoneTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:             uuid.NewString(),
		Email:          input.Email,
		Phone:          input.Phone,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Role:           input.Role,
		IsActive:       true,
		IsVerified:     false,
		KYCStatus:      domain.KYCPending,
		CreatedAt:      now,
		UpdatedAt:      now,
		HashedPassword: string(hash),
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user registered")

	return s.tokenPair(user)
}

// Login authenticates by email and password. Unknown email and wrong
// password produce the same error so the response never reveals whether
// an account exists.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, error) {
	if throttled, err := s.throttle.TooMany(ctx, email); err != nil {
		// throttle failures never block authentication
		s.logger.Warn().Err(err).Msg("login throttle check failed")
	} else if throttled {
		return nil, domain.ErrTooManyAttempts
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = s.throttle.RecordFailure(ctx, email)
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		_ = s.throttle.RecordFailure(ctx, email)
		return nil, domain.ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, domain.ErrInactiveUser
	}

	_ = s.throttle.Reset(ctx, email)

	return s.tokenPair(user)
}

// Refresh verifies the refresh token and mints a new access token for its
// subject. Nothing structural distinguishes a refresh token from an
// access token; only signature and expiry are checked.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	subject, err := s.tokens.Verify(refreshToken)
	if err != nil {
		return "", domain.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrTokenUserNotFound
		}
		return "", err
	}

	return s.tokens.IssueAccess(user.ID)
}

func (s *AuthService) tokenPair(user *domain.User) (*ports.TokenPair, error) {
	access, err := s.tokens.IssueAccess(user.ID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefresh(user.ID)
	if err != nil {
		return nil, err
	}
	return &ports.TokenPair{AccessToken: access, RefreshToken: refresh, User: user}, nil
}
