package services

import (
	"context"

	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
)

// CatalogSvcFacade defines the read-only catalog operations the storefront
// exposes.
type CatalogSvcFacade interface {
	// ListCategories returns the storefront's category identifiers,
	// restricted to the fixed beauty enumeration.
	ListCategories(ctx context.Context) ([]string, error)

	// ListProducts returns products for one category, or for all storefront
	// categories when category is empty, in the requested sort order.
	ListProducts(ctx context.Context, category string, sort domain.ProductSort) ([]domain.Product, error)
}
