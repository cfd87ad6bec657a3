package services

import (
	"context"

	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
)

// CartReaderSvc defines read operations on a cart.
type CartReaderSvc interface {
	// GetCart rehydrates the cart stored under cartKey.
	GetCart(ctx context.Context, cartKey string) (*domain.Cart, error)
}

// CartWriterSvc defines the mutations a cart supports. Every mutation
// persists the full updated snapshot before returning.
type CartWriterSvc interface {
	// AddItem adds a product to the cart, merging into an existing line when
	// the product id is already present. Payloads without a canonical USD
	// price are rejected with ErrValidation and leave the cart unchanged.
	AddItem(ctx context.Context, cartKey string, in domain.AddItemInput) (*domain.Cart, error)

	// RemoveItem removes a line by product id; absent ids are a no-op.
	RemoveItem(ctx context.Context, cartKey string, productID string) (*domain.Cart, error)

	// UpdateQuantity sets a line's quantity, clamped to a minimum of 1.
	UpdateQuantity(ctx context.Context, cartKey string, productID string, quantity int64) (*domain.Cart, error)

	// Clear empties the cart.
	Clear(ctx context.Context, cartKey string) (*domain.Cart, error)
}

// CartSvcFacade combines all cart service interfaces.
type CartSvcFacade interface {
	CartReaderSvc
	CartWriterSvc
}
