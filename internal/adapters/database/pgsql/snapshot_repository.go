package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kbeautyshop/storefront_backend/internal/adapters/snapshot"
	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
	portsrepo "github.com/kbeautyshop/storefront_backend/internal/core/ports/repositories"
)

// SnapshotRepository stores cart snapshots as one jsonb row per cart key.
type SnapshotRepository struct {
	db *pgxpool.Pool
}

func NewSnapshotRepository(db *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

var _ portsrepo.CartSnapshotRepositoryFacade = (*SnapshotRepository)(nil)

func (r *SnapshotRepository) LoadCart(ctx context.Context, cartKey string) (*domain.Cart, error) {
	query := `
        SELECT snapshot
        FROM cart_snapshots
        WHERE cart_key = $1;
    `
	var raw []byte
	err := r.db.QueryRow(ctx, query, cartKey).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
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

	query := `
        INSERT INTO cart_snapshots (cart_key, snapshot, updated_at)
        VALUES ($1, $2, $3)
        ON CONFLICT (cart_key) DO UPDATE SET
            snapshot = EXCLUDED.snapshot,
            updated_at = EXCLUDED.updated_at;
    `
	_, err = r.db.Exec(ctx, query, cartKey, raw, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	return nil
}

func (r *SnapshotRepository) DeleteCart(ctx context.Context, cartKey string) error {
	query := `DELETE FROM cart_snapshots WHERE cart_key = $1;`
	_, err := r.db.Exec(ctx, query, cartKey)
	if err != nil {
		return fmt.Errorf("failed to delete cart snapshot: %w", err)
	}
	return nil
}
