package ports

import (
	"context"

	"github.com/neemaflex/platform-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) error
	// UpdateFields merges the given fields into the user document and
	// refreshes updated_at, returning the updated record.
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*domain.User, error)
	FindAll(ctx context.Context, limit int64) ([]domain.User, error)
}
