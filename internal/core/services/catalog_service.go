package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/kbeautyshop/storefront_backend/internal/apperrors"
	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
	portsrepo "github.com/kbeautyshop/storefront_backend/internal/core/ports/repositories"
)

// CatalogService serves the storefront's read-only view of the remote
// product catalog, restricted to the fixed beauty category enumeration.
type CatalogService struct {
	catalog portsrepo.ProductCatalogReader
}

func NewCatalogService(catalog portsrepo.ProductCatalogReader) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]string, error) {
	remote, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories in service: %w", err)
	}

	// Keep only the categories the storefront sells, in remote order.
	categories := make([]string, 0, len(domain.BeautyCategories))
	for _, c := range remote {
		if domain.IsBeautyCategory(c) {
			categories = append(categories, c)
		}
	}
	return categories, nil
}

func (s *CatalogService) ListProducts(ctx context.Context, category string, order domain.ProductSort) ([]domain.Product, error) {
	var products []domain.Product

	if category != "" {
		if !domain.IsBeautyCategory(category) {
			return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, category)
		}
		listed, err := s.catalog.ListProductsByCategory(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("failed to list products in service: %w", err)
		}
		products = listed
	} else {
		// No category filter: concatenate every storefront category.
		for _, c := range domain.BeautyCategories {
			listed, err := s.catalog.ListProductsByCategory(ctx, c)
			if err != nil {
				return nil, fmt.Errorf("failed to list products in service: %w", err)
			}
			products = append(products, listed...)
		}
	}

	sortProducts(products, order)
	return products, nil
}

// sortProducts orders products in place. SortRecent keeps the catalog's own
// delivery order.
func sortProducts(products []domain.Product, order domain.ProductSort) {
	switch order {
	case domain.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].PriceUSD.LessThan(products[j].PriceUSD)
		})
	case domain.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[j].PriceUSD.LessThan(products[i].PriceUSD)
		})
	case domain.SortRatingDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	}
}
