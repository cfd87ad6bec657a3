package repositories

import (
	"context"

	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
)

// ProductCatalogReader is the read-only port onto the remote product catalog.
// The storefront never writes to the catalog.
type ProductCatalogReader interface {
	// ListCategories retrieves the category identifiers the remote catalog offers.
	ListCategories(ctx context.Context) ([]string, error)

	// ListProductsByCategory retrieves the products in one category.
	ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
}
