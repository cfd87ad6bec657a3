package domain

import "github.com/shopspring/decimal"

// Product is a catalog record as served by the remote product API. Prices are
// quoted in USD, the reference currency.
type Product struct {
	ID        int64           `json:"id"`
	Title     string          `json:"title"`
	PriceUSD  decimal.Decimal `json:"price"`
	Rating    float64         `json:"rating"`
	Category  string          `json:"category"`
	Thumbnail string          `json:"thumbnail"`
}

// BeautyCategories is the fixed category enumeration the storefront sells.
// The remote catalog carries many more; everything else is filtered out.
var BeautyCategories = []string{"beauty", "skin-care", "fragrances"}

// IsBeautyCategory reports whether the given category identifier is one the
// storefront carries.
func IsBeautyCategory(category string) bool {
	for _, c := range BeautyCategories {
		if c == category {
			return true
		}
	}
	return false
}

// ProductSort is a catalog sort order.
type ProductSort string

const (
	SortRecent     ProductSort = "recent"
	SortPriceAsc   ProductSort = "price-asc"
	SortPriceDesc  ProductSort = "price-desc"
	SortRatingDesc ProductSort = "rating-desc"
)

// ParseProductSort maps a query value to a sort order, defaulting to
// SortRecent for empty or unknown values.
func ParseProductSort(s string) ProductSort {
	switch ProductSort(s) {
	case SortPriceAsc, SortPriceDesc, SortRatingDesc:
		return ProductSort(s)
	default:
		return SortRecent
	}
}
