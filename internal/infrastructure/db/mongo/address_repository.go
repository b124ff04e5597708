package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/neemaflex/platform-api/internal/core/domain"
)

const addressesCollection = "addresses"

type AddressRepository struct {
	col *mongo.Collection
}

func NewAddressRepository(db *mongo.Database) *AddressRepository {
	return &AddressRepository{col: db.Collection(addressesCollection)}
}

func (r *AddressRepository) Insert(ctx context.Context, address *domain.Address) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, address); err != nil {
		return fmt.Errorf("insert address: %w", err)
	}
	return nil
}

func (r *AddressRepository) FindAllByUserID(ctx context.Context, userID string, limit int64) ([]domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"user_id": userID}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer cur.Close(ctx)

	var addresses []domain.Address
	if err := cur.All(ctx, &addresses); err != nil {
		return nil, fmt.Errorf("decode addresses: %w", err)
	}
	return addresses, nil
}

// UnsetDefaultForUser bulk-clears is_default on every address the user
// owns. Callers issue this before inserting a new default address.
func (r *AddressRepository) UnsetDefaultForUser(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.UpdateMany(ctx, bson.M{"user_id": userID}, bson.M{"$set": bson.M{"is_default": false}})
	if err != nil {
		return fmt.Errorf("unset default addresses: %w", err)
	}
	return nil
}
