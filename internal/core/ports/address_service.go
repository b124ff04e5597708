package ports

import (
	"context"

	"github.com/neemaflex/platform-api/internal/core/domain"
)

// CreateAddressInput carries the fields of a new address.
type CreateAddressInput struct {
	Label         string
	StreetAddress string
	City          string
	State         string
	PostalCode    string
	Country       string
	Latitude      *float64
	Longitude     *float64
	IsDefault     bool
}

type AddressService interface {
	Create(ctx context.Context, userID string, input CreateAddressInput) (*domain.Address, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Address, error)
}
