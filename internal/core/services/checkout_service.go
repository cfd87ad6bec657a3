package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kbeautyshop/storefront_backend/internal/apperrors"
	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
	portsrepo "github.com/kbeautyshop/storefront_backend/internal/core/ports/repositories"
	"github.com/kbeautyshop/storefront_backend/internal/dto"
)

// CheckoutService freezes a cart into an order. The cart is cleared only
// after the order is persisted; a failed submission leaves it intact.
type CheckoutService struct {
	cartRepo  portsrepo.CartSnapshotRepositoryFacade
	orderRepo portsrepo.OrderRepositoryFacade
}

func NewCheckoutService(cartRepo portsrepo.CartSnapshotRepositoryFacade, orderRepo portsrepo.OrderRepositoryFacade) *CheckoutService {
	return &CheckoutService{cartRepo: cartRepo, orderRepo: orderRepo}
}

func (s *CheckoutService) SubmitOrder(ctx context.Context, cartKey string, req dto.CheckoutRequest) (*domain.Order, error) {
	payment := domain.PaymentMethod(req.Payment)
	if !payment.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.Payment)
	}

	cart, err := s.cartRepo.LoadCart(ctx, cartKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart for checkout: %w", err)
	}
	if cart.IsEmpty() {
		return nil, fmt.Errorf("%w: cart is empty", apperrors.ErrValidation)
	}

	order := domain.Order{
		OrderID:      uuid.NewString(),
		CartKey:      cartKey,
		CustomerName: req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		Payment:      payment,
		Memo:         req.Memo,
		Items:        cart.Items,
		SubtotalUSD:  cart.SubtotalUSD(),
		CreatedAt:    time.Now(),
	}

	if err := s.orderRepo.SaveOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order in service: %w", err)
	}

	if err := s.cartRepo.DeleteCart(ctx, cartKey); err != nil {
		// The order is already placed; a stale cart is the lesser problem.
		return nil, fmt.Errorf("order %s placed but failed to clear cart: %w", order.OrderID, err)
	}
	return &order, nil
}

func (s *CheckoutService) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order by ID in service: %w", err)
	}
	if order == nil {
		return nil, apperrors.ErrNotFound
	}
	return order, nil
}
