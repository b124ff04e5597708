package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/neemaflex/platform-api/internal/core/domain"
	"github.com/neemaflex/platform-api/internal/core/ports"
)

const listAddressesLimit = 100

// AddressService implements address creation and per-owner listing.
type AddressService struct {
	addresses ports.AddressRepository
	logger    zerolog.Logger
}

func NewAddressService(addresses ports.AddressRepository, logger zerolog.Logger) *AddressService {
	return &AddressService{addresses: addresses, logger: logger}
}

// Create inserts a new address for the user. When the new address is the
// default, every other default of that user is cleared first; the clear
// must complete before the insert is issued so at most one default
// survives.
func (s *AddressService) Create(ctx context.Context, userID string, input ports.CreateAddressInput) (*domain.Address, error) {
	if input.IsDefault {
		if err := s.addresses.UnsetDefaultForUser(ctx, userID); err != nil {
			return nil, err
		}
	}

	address := &domain.Address{
		ID:            uuid.NewString(),
		UserID:        userID,
		Label:         input.Label,
		StreetAddress: input.StreetAddress,
		City:          input.City,
		State:         input.State,
		PostalCode:    input.PostalCode,
		Country:       input.Country,
		Latitude:      input.Latitude,
		Longitude:     input.Longitude,
		IsDefault:     input.IsDefault,
	}

	if err := s.addresses.Insert(ctx, address); err != nil {
		return nil, err
	}

	s.logger.Info().Str("address_id", address.ID).Str("user_id", userID).Bool("default", address.IsDefault).Msg("address created")
	return address, nil
}

func (s *AddressService) ListByUser(ctx context.Context, userID string) ([]domain.Address, error) {
	return s.addresses.FindAllByUserID(ctx, userID, listAddressesLimit)
}
