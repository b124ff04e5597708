package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/neemaflex/platform-api/internal/core/domain"
)

const (
	defaultAccessTTL = 30 * time.Minute
	refreshTTL       = 7 * 24 * time.Hour
)

// TokenService issues and verifies HS256-signed bearer tokens carrying a
// subject and an expiry claim. Tokens are stateless: there is no
// server-side revocation, a token stays valid until its own expiry.
type TokenService struct {
	secret    []byte
	accessTTL time.Duration
}

func NewTokenService(secret string, accessTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	return &TokenService{secret: []byte(secret), accessTTL: accessTTL}
}

func (s *TokenService) IssueAccess(subject string) (string, error) {
	return s.sign(subject, s.accessTTL)
}

func (s *TokenService) IssueRefresh(subject string) (string, error) {
	return s.sign(subject, refreshTTL)
}

func (s *TokenService) sign(subject string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify returns the subject of a valid token. Every failure mode
// (bad signature, malformed payload, missing subject, expired) collapses
// into domain.ErrInvalidToken so callers cannot distinguish them.
func (s *TokenService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", domain.ErrInvalidToken
	}
	return sub, nil
}
