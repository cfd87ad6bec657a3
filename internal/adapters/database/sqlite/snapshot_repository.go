package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kbeautyshop/storefront_backend/internal/adapters/snapshot"
	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
	portsrepo "github.com/kbeautyshop/storefront_backend/internal/core/ports/repositories"
)

type SnapshotRepository struct {
	db *sqlx.DB
}

func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

var _ portsrepo.CartSnapshotRepositoryFacade = (*SnapshotRepository)(nil)

func (r *SnapshotRepository) LoadCart(ctx context.Context, cartKey string) (*domain.Cart, error) {
	var raw []byte
	err := r.db.GetContext(ctx, &raw, `SELECT snapshot FROM cart_snapshots WHERE cart_key = ?`, cartKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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

	_, err = r.db.ExecContext(ctx, `
        INSERT INTO cart_snapshots (cart_key, snapshot, updated_at)
        VALUES (?, ?, ?)
        ON CONFLICT (cart_key) DO UPDATE SET
            snapshot = excluded.snapshot,
            updated_at = excluded.updated_at
    `, cartKey, raw, time.Now())
	if err != nil {
		return fmt.Errorf("failed to save cart snapshot: %w", err)
	}
	return nil
}

func (r *SnapshotRepository) DeleteCart(ctx context.Context, cartKey string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_snapshots WHERE cart_key = ?`, cartKey)
	if err != nil {
		return fmt.Errorf("failed to delete cart snapshot: %w", err)
	}
	return nil
}
