// Package dummyjson is the HTTP adapter onto the remote product catalog,
// which serves dummyjson-shaped responses: a flat string array of category
// identifiers and {"products": [...]} listings per category.
package dummyjson

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
	portsrepo "github.com/kbeautyshop/storefront_backend/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

var _ portsrepo.ProductCatalogReader = (*Client)(nil)

func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getJSON(ctx, "/products/categories", &categories); err != nil {
		return nil, fmt.Errorf("failed to list catalog categories: %w", err)
	}
	return categories, nil
}

// productRecord is the remote wire shape; prices arrive as plain JSON numbers
// in USD.
type productRecord struct {
	ID        int64   `json:"id"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Rating    float64 `json:"rating"`
	Category  string  `json:"category"`
	Thumbnail string  `json:"thumbnail"`
}

func (c *Client) ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	var payload struct {
		Products []productRecord `json:"products"`
	}
	path := "/products/category/" + url.PathEscape(category)
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return nil, fmt.Errorf("failed to list products for category %q: %w", category, err)
	}

	products := make([]domain.Product, 0, len(payload.Products))
	for _, rec := range payload.Products {
		products = append(products, domain.Product{
			ID:        rec.ID,
			Title:     rec.Title,
			PriceUSD:  decimal.NewFromFloat(rec.Price),
			Rating:    rec.Rating,
			Category:  rec.Category,
			Thumbnail: rec.Thumbnail,
		})
	}
	return products, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("request failed: %s %s", resp.Status, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
