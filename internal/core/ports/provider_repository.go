package ports

import (
	"context"

	"github.com/neemaflex/platform-api/internal/core/domain"
)

// ProviderRepository defines persistence operations for service-provider
// profiles.
type ProviderRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.ServiceProvider, error)
	Insert(ctx context.Context, provider *domain.ServiceProvider) error
	FindAll(ctx context.Context, limit int64) ([]domain.ServiceProvider, error)
}
