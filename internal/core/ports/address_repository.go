package ports

import (
	"context"

	"github.com/neemaflex/platform-api/internal/core/domain"
)

// AddressRepository defines persistence operations for mailing addresses.
type AddressRepository interface {
	Insert(ctx context.Context, address *domain.Address) error
	FindAllByUserID(ctx context.Context, userID string, limit int64) ([]domain.Address, error)
	// UnsetDefaultForUser clears is_default on every address the user owns.
	UnsetDefaultForUser(ctx context.Context, userID string) error
}
