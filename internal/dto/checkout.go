package dto

import (
	"time"

	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
	"github.com/kbeautyshop/storefront_backend/internal/core/money"
	"github.com/shopspring/decimal"
)

// CheckoutRequest is the order form submitted at checkout.
type CheckoutRequest struct {
	Name    string `json:"name" binding:"required,min=2"`
	Phone   string `json:"phone" binding:"required,min=9"`
	Address string `json:"address" binding:"required,min=5"`
	Payment string `json:"payment" binding:"required,oneof=card bank kakao naver payco cod"`
	Memo    string `json:"memo"`
}

// OrderResponse is the submitted order as returned to the success page.
type OrderResponse struct {
	OrderID      string             `json:"orderID"`
	CustomerName string             `json:"customerName"`
	Payment      string             `json:"payment"`
	Items        []CartItemResponse `json:"items"`
	SubtotalUSD  decimal.Decimal    `json:"subtotalUsd"`
	DisplayTotal string             `json:"displayTotal"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// ToOrderResponse projects an order into the given display currency.
func ToOrderResponse(order *domain.Order, currency money.Currency, rates money.RateTable) OrderResponse {
	items := make([]CartItemResponse, len(order.Items))
	for i, item := range order.Items {
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
	return OrderResponse{
		OrderID:      order.OrderID,
		CustomerName: order.CustomerName,
		Payment:      string(order.Payment),
		Items:        items,
		SubtotalUSD:  order.SubtotalUSD,
		DisplayTotal: money.Format(order.SubtotalUSD, currency, rates),
		CreatedAt:    order.CreatedAt,
	}
}
