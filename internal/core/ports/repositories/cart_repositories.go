package repositories

import (
	"context"

	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
)

// CartSnapshotReader defines read operations for persisted cart snapshots.
type CartSnapshotReader interface {
	// LoadCart rehydrates the cart stored under cartKey. A missing key, an
	// unrecognized schema version or undecodable bytes all yield an empty
	// cart, never an error; errors are reserved for infrastructure failures.
	LoadCart(ctx context.Context, cartKey string) (*domain.Cart, error)
}

// CartSnapshotWriter defines write operations for persisted cart snapshots.
type CartSnapshotWriter interface {
	// SaveCart overwrites the stored snapshot for cartKey in full. There is
	// no incremental patching and no locking; last writer wins.
	SaveCart(ctx context.Context, cartKey string, cart *domain.Cart) error

	// DeleteCart removes the stored snapshot for cartKey. Deleting a missing
	// key is not an error.
	DeleteCart(ctx context.Context, cartKey string) error
}

// CartSnapshotRepositoryFacade combines all cart snapshot repository interfaces.
type CartSnapshotRepositoryFacade interface {
	CartSnapshotReader
	CartSnapshotWriter
}
