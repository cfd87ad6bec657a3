package services

import (
	"context"

	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
	"github.com/kbeautyshop/storefront_backend/internal/dto"
)

// CheckoutSvcFacade is the hand-off point between the cart subsystem and
// order submission.
type CheckoutSvcFacade interface {
	// SubmitOrder freezes the current cart into an order and clears the cart
	// on success. An empty cart is rejected with ErrValidation.
	SubmitOrder(ctx context.Context, cartKey string, req dto.CheckoutRequest) (*domain.Order, error)

	// GetOrderByID retrieves a submitted order; ErrNotFound when absent.
	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
}
