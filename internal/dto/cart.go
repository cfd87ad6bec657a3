package dto

import (
	"math"

	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
	"github.com/kbeautyshop/storefront_backend/internal/core/money"
	"github.com/shopspring/decimal"
)

// AddCartItemRequest is the add-to-cart payload. UnitPriceUSD is a pointer so
// the handler can tell a missing canonical price from a zero one; legacy
// payloads that carry only a local-currency "price" field simply arrive with
// UnitPriceUSD unset and get rejected.
type AddCartItemRequest struct {
	ProductID    string   `json:"id" binding:"required"`
	Name         string   `json:"name" binding:"required"`
	ImageURL     string   `json:"imageUrl"`
	UnitPriceUSD *float64 `json:"unitPriceUsd"`
	Quantity     int64    `json:"quantity"`
}

// ToAddItemInput maps the request to the domain boundary type. A price that
// is not a finite number is treated the same as a missing one.
func (r AddCartItemRequest) ToAddItemInput() domain.AddItemInput {
	in := domain.AddItemInput{
		ProductID: r.ProductID,
		Name:      r.Name,
		ImageURL:  r.ImageURL,
		Quantity:  r.Quantity,
	}
	if r.UnitPriceUSD != nil && !math.IsNaN(*r.UnitPriceUSD) && !math.IsInf(*r.UnitPriceUSD, 0) {
		price := decimal.NewFromFloat(*r.UnitPriceUSD)
		in.UnitPriceUSD = &price
	}
	return in
}

// UpdateQuantityRequest sets a line's quantity. Values below 1 are clamped,
// not rejected, so there is deliberately no minimum binding here.
type UpdateQuantityRequest struct {
	Quantity int64 `json:"quantity"`
}

// CartItemResponse is one cart line plus its display-currency projection.
type CartItemResponse struct {
	ProductID        string          `json:"id"`
	Name             string          `json:"name"`
	ImageURL         string          `json:"imageUrl"`
	UnitPriceUSD     decimal.Decimal `json:"unitPriceUsd"`
	Quantity         int64           `json:"quantity"`
	LineTotalUSD     decimal.Decimal `json:"lineTotalUsd"`
	DisplayUnitPrice string          `json:"displayUnitPrice"`
	DisplayLineTotal string          `json:"displayLineTotal"`
}

// CartResponse is the full cart with USD totals and their display-currency
// rendering. Display values are derived at response time from the USD
// reference; nothing display-denominated is ever stored.
type CartResponse struct {
	Items           []CartItemResponse `json:"items"`
	ItemCount       int64              `json:"itemCount"`
	SubtotalUSD     decimal.Decimal    `json:"subtotalUsd"`
	Currency        money.Currency     `json:"currency"`
	DisplaySubtotal string             `json:"displaySubtotal"`
}

// ToCartResponse projects a cart into the given display currency.
func ToCartResponse(cart *domain.Cart, currency money.Currency, rates money.RateTable) CartResponse {
	items := make([]CartItemResponse, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = CartItemResponse{
			ProductID:        item.ProductID,
			Name:             item.Name,
			ImageURL:         item.ImageURL,
			UnitPriceUSD:     item.UnitPriceUSD,
			Quantity:         item.Quantity,
			LineTotalUSD:     item.LineTotalUSD(),
			DisplayUnitPrice: money.Format(item.UnitPriceUSD, currency, rates),
			DisplayLineTotal: money.Format(item.LineTotalUSD(), currency, rates),
		}
	}
	return CartResponse{
		Items:           items,
		ItemCount:       cart.ItemCount(),
		SubtotalUSD:     cart.SubtotalUSD(),
		Currency:        currency,
		DisplaySubtotal: money.Format(cart.SubtotalUSD(), currency, rates),
	}
}
