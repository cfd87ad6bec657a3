// Package redis stores cart snapshots as single Redis string values, one key
// per cart. Carts are the only last-writer-wins data in the system, so a
// plain SET per mutation is the whole consistency story.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/kbeautyshop/storefront_backend/internal/adapters/snapshot"
	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
	portsrepo "github.com/kbeautyshop/storefront_backend/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// keyPrefix versions the key namespace together with the snapshot schema.
const keyPrefix = "cart:v2:"

type SnapshotRepository struct {
	client *redis.Client
}

func NewSnapshotRepository(client *redis.Client) *SnapshotRepository {
	return &SnapshotRepository{client: client}
}

var _ portsrepo.CartSnapshotRepositoryFacade = (*SnapshotRepository)(nil)

func (r *SnapshotRepository) LoadCart(ctx context.Context, cartKey string) (*domain.Cart, error) {
	raw, err := r.client.Get(ctx, keyPrefix+cartKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.NewCart(), nil
		}
		return nil, fmt.Errorf("failed to load cart snapshot: %w", err)
	}
	return snapshot.Decode(raw), nil
}

func (r *SnapshotRepository) SaveCart(ctx context.Context, cartKey string, cart *domain.Cart) error {
	raw, err := snapshot.Encode(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart snapshot: %w", err)
	}
	if err := r.client.Set(ctx, keyPrefix+cartKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	return nil
}

func (r *SnapshotRepository) DeleteCart(ctx context.Context, cartKey string) error {
	if err := r.client.Del(ctx, keyPrefix+cartKey).Err(); err != nil {
		return fmt.Errorf("failed to delete cart snapshot: %w", err)
	}
	return nil
}
