package dummyjson_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kbeautyshop/storefront_backend/internal/adapters/catalog/dummyjson"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListCategories(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/categories", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`["beauty","skin-care","fragrances","laptops"]`))
	}))
	defer srv.Close()

	client := dummyjson.NewClient(srv.URL)
	categories, err := client.ListCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"beauty", "skin-care", "fragrances", "laptops"}, categories)
}

func TestClient_ListProductsByCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/category/skin-care", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"products": [
				{"id": 1, "title": "Hydration Serum", "price": 19.99, "rating": 4.7, "category": "skin-care", "thumbnail": "https://cdn.example.com/1.jpg"},
				{"id": 2, "title": "Green Tea Toner", "price": 8.5, "rating": 4.1, "category": "skin-care", "thumbnail": "https://cdn.example.com/2.jpg"}
			],
			"total": 2
		}`))
	}))
	defer srv.Close()

	client := dummyjson.NewClient(srv.URL)
	products, err := client.ListProductsByCategory(context.Background(), "skin-care")

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Hydration Serum", products[0].Title)
	assert.True(t, products[0].PriceUSD.Equal(decimal.NewFromFloat(19.99)))
	assert.Equal(t, 4.7, products[0].Rating)
	assert.Equal(t, "skin-care", products[0].Category)
	assert.True(t, products[1].PriceUSD.Equal(decimal.NewFromFloat(8.5)))
}

func TestClient_ListProductsByCategory_EscapesCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/category/skin%20care", r.URL.EscapedPath())
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products": []}`))
	}))
	defer srv.Close()

	client := dummyjson.NewClient(srv.URL)
	products, err := client.ListProductsByCategory(context.Background(), "skin care")

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestClient_NonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := dummyjson.NewClient(srv.URL)

	_, err := client.ListCategories(context.Background())
	require.Error(t, err)

	_, err = client.ListProductsByCategory(context.Background(), "beauty")
	require.Error(t, err)
}

func TestClient_MalformedBodyIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products": [`))
	}))
	defer srv.Close()

	client := dummyjson.NewClient(srv.URL)
	_, err := client.ListProductsByCategory(context.Background(), "beauty")

	require.Error(t, err)
}

func TestClient_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := dummyjson.NewClient(srv.URL)
	_, err := client.ListCategories(ctx)

	require.Error(t, err)
}
