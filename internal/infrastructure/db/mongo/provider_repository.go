package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/neemaflex/platform-api/internal/core/domain"
)

const providersCollection = "service_providers"

type ProviderRepository struct {
	col *mongo.Collection
}

func NewProviderRepository(db *mongo.Database) *ProviderRepository {
	return &ProviderRepository{col: db.Collection(providersCollection)}
}

func (r *ProviderRepository) FindByUserID(ctx context.Context, userID string) (*domain.ServiceProvider, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.ServiceProvider
	if err := r.col.FindOne(ctx, bson.M{"user_id": userID}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrProviderNotFound
		}
		return nil, fmt.Errorf("find provider: %w", err)
	}
	return &p, nil
}

func (r *ProviderRepository) Insert(ctx context.Context, provider *domain.ServiceProvider) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.InsertOne(ctx, provider); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrProviderExists
		}
		return fmt.Errorf("insert provider: %w", err)
	}
	return nil
}

func (r *ProviderRepository) FindAll(ctx context.Context, limit int64) ([]domain.ServiceProvider, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list providers: %w", err)
	}
	defer cur.Close(ctx)

	var providers []domain.ServiceProvider
	if err := cur.All(ctx, &providers); err != nil {
		return nil, fmt.Errorf("decode providers: %w", err)
	}
	return providers, nil
}
