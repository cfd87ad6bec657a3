package domain

import (
	"fmt"

	"github.com/kbeautyshop/storefront_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// CartItem is one line in a cart: a single product id and its accumulated quantity.
// Name, ImageURL and UnitPriceUSD are captured when the product is first added
// and are never re-synced against the catalog afterwards.
type CartItem struct {
	ProductID    string          `json:"id"`
	Name         string          `json:"name"`
	ImageURL     string          `json:"imageUrl"`
	UnitPriceUSD decimal.Decimal `json:"unitPriceUsd"`
	Quantity     int64           `json:"quantity"`
}

// LineTotalUSD returns the USD total for this line (unit price times quantity).
func (i CartItem) LineTotalUSD() decimal.Decimal {
	return i.UnitPriceUSD.Mul(decimal.NewFromInt(i.Quantity))
}

// AddItemInput is the validated boundary type for adding a product to a cart.
// UnitPriceUSD is a pointer so a payload that carried no canonical price can be
// told apart from a zero price.
type AddItemInput struct {
	ProductID    string
	Name         string
	ImageURL     string
	UnitPriceUSD *decimal.Decimal
	Quantity     int64
}

// Cart is an ordered sequence of line items; insertion order is display order.
// All mutation goes through the methods below. The zero value is an empty,
// usable cart.
type Cart struct {
	Items []CartItem `json:"items"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

// AddItem adds a product to the cart. If a line for the same product id
// already exists its quantity is incremented; the existing line's price and
// display fields are left untouched. A payload without a canonical USD price
// is rejected with ErrValidation and the cart is unchanged.
func (c *Cart) AddItem(in AddItemInput) error {
	if in.ProductID == "" {
		return fmt.Errorf("%w: product id is required", apperrors.ErrValidation)
	}
	if in.UnitPriceUSD == nil {
		return fmt.Errorf("%w: add-to-cart payload has no unitPriceUsd", apperrors.ErrValidation)
	}
	if in.UnitPriceUSD.IsNegative() {
		return fmt.Errorf("%w: unitPriceUsd must not be negative", apperrors.ErrValidation)
	}

	qty := in.Quantity
	if qty < 1 {
		qty = 1
	}

	for idx := range c.Items {
		if c.Items[idx].ProductID == in.ProductID {
			c.Items[idx].Quantity += qty
			return nil
		}
	}

	c.Items = append(c.Items, CartItem{
		ProductID:    in.ProductID,
		Name:         in.Name,
		ImageURL:     in.ImageURL,
		UnitPriceUSD: *in.UnitPriceUSD,
		Quantity:     qty,
	})
	return nil
}

// RemoveItem removes the line with the given product id. Removing an id that
// is not in the cart is a no-op, not an error.
func (c *Cart) RemoveItem(productID string) {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity for the line with the given product id,
// clamped to a minimum of 1. No-op if the id is absent.
func (c *Cart) UpdateQuantity(productID string, quantity int64) {
	if quantity < 1 {
		quantity = 1
	}
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items[idx].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

// SubtotalUSD is the sum of unit price times quantity over all lines, in the
// reference currency. No rounding is applied here; rounding belongs to the
// display boundary.
func (c *Cart) SubtotalUSD() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.Items {
		total = total.Add(item.LineTotalUSD())
	}
	return total
}

// ItemCount is the total number of units across all lines, not the number of
// distinct lines.
func (c *Cart) ItemCount() int64 {
	var count int64
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
