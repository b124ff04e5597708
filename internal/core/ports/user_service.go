package ports

import (
	"context"

	"github.com/neemaflex/platform-api/internal/core/domain"
)

type UserService interface {
	UpdateProfile(ctx context.Context, userID string, update domain.UserUpdate) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}
