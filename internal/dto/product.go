package dto

import (
	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
	"github.com/kbeautyshop/storefront_backend/internal/core/money"
	"github.com/shopspring/decimal"
)

// ListProductsParams are the catalog listing query parameters.
type ListProductsParams struct {
	Category string `form:"category"`
	Sort     string `form:"sort,default=recent"`
	Lang     string `form:"lang"`
}

// ProductResponse is a catalog record plus its display-currency price. The
// numeric DisplayPrice is the converted, rounded figure in the display
// currency's denomination; it is what a client would snapshot when adding the
// product to the cart under the legacy local-currency scheme, and is provided
// for display only.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Title        string          `json:"title"`
	PriceUSD     decimal.Decimal `json:"price"`
	Rating       float64         `json:"rating"`
	Category     string          `json:"category"`
	Thumbnail    string          `json:"thumbnail"`
	DisplayPrice decimal.Decimal `json:"displayPrice"`
	DisplayLabel string          `json:"displayLabel"`
}

// ToProductResponse projects a product into the given display currency.
func ToProductResponse(p domain.Product, currency money.Currency, rates money.RateTable) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Title:        p.Title,
		PriceUSD:     p.PriceUSD,
		Rating:       p.Rating,
		Category:     p.Category,
		Thumbnail:    p.Thumbnail,
		DisplayPrice: money.ToStorable(p.PriceUSD, currency, rates),
		DisplayLabel: money.Format(p.PriceUSD, currency, rates),
	}
}

// ToProductListResponse projects a product slice into the display currency.
func ToProductListResponse(products []domain.Product, currency money.Currency, rates money.RateTable) []ProductResponse {
	out := make([]ProductResponse, len(products))
	for i, p := range products {
		out[i] = ToProductResponse(p, currency, rates)
	}
	return out
}
