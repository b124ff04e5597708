package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/neemaflex/platform-api/internal/core/domain"
	"github.com/neemaflex/platform-api/internal/core/ports"
)

const listProvidersLimit = 1000

// ProviderService implements service-provider profile creation and lookup.
type ProviderService struct {
	providers ports.ProviderRepository
	logger    zerolog.Logger
}

func NewProviderService(providers ports.ProviderRepository, logger zerolog.Logger) *ProviderService {
	return &ProviderService{providers: providers, logger: logger}
}

// Create registers the one provider profile a service_provider user may
// own. Categories outside the fixed enumeration are rejected with the
// offending entries listed.
func (s *ProviderService) Create(ctx context.Context, user *domain.User, input ports.CreateProviderInput) (*domain.ServiceProvider, error) {
	if user.Role != domain.RoleServiceProvider {
		return nil, domain.ErrProviderCreateNotAllowed
	}

	if _, err := s.providers.FindByUserID(ctx, user.ID); err == nil {
		return nil, domain.ErrProviderExists
	} else if !errors.Is(err, domain.ErrProviderNotFound) {
		return nil, err
	}

	if invalid := domain.InvalidCategories(input.ServiceCategories); len(invalid) > 0 {
		return nil, &domain.InvalidCategoriesError{Categories: invalid}
	}

	provider := &domain.ServiceProvider{
		ID:                 uuid.NewString(),
		UserID:             user.ID,
		BusinessName:       input.BusinessName,
		BusinessLicense:    input.BusinessLicense,
		ServiceCategories:  input.ServiceCategories,
		Description:        input.Description,
		Rating:             0,
		TotalRatings:       0,
		IsAvailable:        true,
		VerificationStatus: domain.KYCPending,
		CreatedAt:          time.Now().UTC(),
	}

	if err := s.providers.Insert(ctx, provider); err != nil {
		return nil, err
	}

	s.logger.Info().Str("provider_id", provider.ID).Str("user_id", user.ID).Msg("provider profile created")
	return provider, nil
}

func (s *ProviderService) GetByUser(ctx context.Context, user *domain.User) (*domain.ServiceProvider, error) {
	if user.Role != domain.RoleServiceProvider {
		return nil, domain.ErrProviderRoleRequired
	}
	return s.providers.FindByUserID(ctx, user.ID)
}

func (s *ProviderService) ListProviders(ctx context.Context) ([]domain.ServiceProvider, error) {
	return s.providers.FindAll(ctx, listProvidersLimit)
}
