package ports

import (
	"context"

	"github.com/neemaflex/platform-api/internal/core/domain"
)

// CreateProviderInput carries the fields of a new provider profile.
type CreateProviderInput struct {
	BusinessName      string
	BusinessLicense   string
	ServiceCategories []string
	Description       string
}

type ProviderService interface {
	Create(ctx context.Context, user *domain.User, input CreateProviderInput) (*domain.ServiceProvider, error)
	GetByUser(ctx context.Context, user *domain.User) (*domain.ServiceProvider, error)
	ListProviders(ctx context.Context) ([]domain.ServiceProvider, error)
}
