package services

import (
	"context"
	"fmt"

	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
	portsrepo "github.com/kbeautyshop/storefront_backend/internal/core/ports/repositories"
)

// CartService is the authoritative mutation path for carts. Each operation
// rehydrates the snapshot, applies the aggregate mutation in memory and
// persists the full updated snapshot. There is no cached state between calls;
// concurrent writers to the same key are last-writer-wins.
type CartService struct {
	cartRepo portsrepo.CartSnapshotRepositoryFacade
}

func NewCartService(cartRepo portsrepo.CartSnapshotRepositoryFacade) *CartService {
	return &CartService{cartRepo: cartRepo}
}

func (s *CartService) GetCart(ctx context.Context, cartKey string) (*domain.Cart, error) {
	cart, err := s.cartRepo.LoadCart(ctx, cartKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart in service: %w", err)
	}
	return cart, nil
}

func (s *CartService) AddItem(ctx context.Context, cartKey string, in domain.AddItemInput) (*domain.Cart, error) {
	cart, err := s.cartRepo.LoadCart(ctx, cartKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart in service: %w", err)
	}

	// Validation failures leave the cart untouched, so nothing is persisted.
	if err := cart.AddItem(in); err != nil {
		return nil, err
	}

	if err := s.cartRepo.SaveCart(ctx, cartKey, cart); err != nil {
		return nil, fmt.Errorf("failed to persist cart in service: %w", err)
	}
	return cart, nil
}

func (s *CartService) RemoveItem(ctx context.Context, cartKey string, productID string) (*domain.Cart, error) {
	cart, err := s.cartRepo.LoadCart(ctx, cartKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart in service: %w", err)
	}

	cart.RemoveItem(productID)

	if err := s.cartRepo.SaveCart(ctx, cartKey, cart); err != nil {
		return nil, fmt.Errorf("failed to persist cart in service: %w", err)
	}
	return cart, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, cartKey string, productID string, quantity int64) (*domain.Cart, error) {
	cart, err := s.cartRepo.LoadCart(ctx, cartKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart in service: %w", err)
	}

	cart.UpdateQuantity(productID, quantity)

	if err := s.cartRepo.SaveCart(ctx, cartKey, cart); err != nil {
		return nil, fmt.Errorf("failed to persist cart in service: %w", err)
	}
	return cart, nil
}

func (s *CartService) Clear(ctx context.Context, cartKey string) (*domain.Cart, error) {
	cart := domain.NewCart()
	if err := s.cartRepo.SaveCart(ctx, cartKey, cart); err != nil {
		return nil, fmt.Errorf("failed to persist cart in service: %w", err)
	}
	return cart, nil
}
