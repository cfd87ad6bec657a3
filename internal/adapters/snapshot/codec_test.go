package snapshot_test

import (
	"encoding/json"
	"testing"

	"github.com/kbeautyshop/storefront_backend/internal/adapters/snapshot"
	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCart(t *testing.T) *domain.Cart {
	t.Helper()
	cart := domain.NewCart()
	for _, in := range []struct {
		id    string
		price float64
		qty   int64
	}{
		{id: "p1", price: 10, qty: 2},
		{id: "p2", price: 5.5, qty: 3},
		{id: "p3", price: 0, qty: 1},
	} {
		price := decimal.NewFromFloat(in.price)
		require.NoError(t, cart.AddItem(domain.AddItemInput{
			ProductID:    in.id,
			Name:         "Product " + in.id,
			ImageURL:     "https://cdn.example.com/" + in.id + ".jpg",
			UnitPriceUSD: &price,
			Quantity:     in.qty,
		}))
	}
	return cart
}

func TestCodec_RoundTripPreservesOrderAndValues(t *testing.T) {
	cart := sampleCart(t)

	raw, err := snapshot.Encode(cart)
	require.NoError(t, err)

	got := snapshot.Decode(raw)

	require.Len(t, got.Items, 3)
	for i := range cart.Items {
		assert.Equal(t, cart.Items[i].ProductID, got.Items[i].ProductID)
		assert.Equal(t, cart.Items[i].Name, got.Items[i].Name)
		assert.Equal(t, cart.Items[i].ImageURL, got.Items[i].ImageURL)
		assert.Equal(t, cart.Items[i].Quantity, got.Items[i].Quantity)
		assert.True(t, cart.Items[i].UnitPriceUSD.Equal(got.Items[i].UnitPriceUSD))
	}
}

func TestCodec_EncodeTagsCurrentVersion(t *testing.T) {
	raw, err := snapshot.Encode(domain.NewCart())
	require.NoError(t, err)

	var env struct {
		Version int `json:"version"`
	}
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, snapshot.SchemaVersion, env.Version)
}

func TestCodec_DecodeDegradesToEmptyCart(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
	}{
		{name: "nil bytes", raw: nil},
		{name: "empty bytes", raw: []byte{}},
		{name: "corrupt json", raw: []byte(`{"version": 2, "items": [`)},
		{name: "not an object", raw: []byte(`"hello"`)},
		{name: "missing version", raw: []byte(`{"items": [{"id": "p1", "quantity": 2}]}`)},
		{name: "older version", raw: []byte(`{"version": 1, "items": [{"id": "p1", "quantity": 2}]}`)},
		{name: "future version", raw: []byte(`{"version": 99, "items": [{"id": "p1", "quantity": 2}]}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := snapshot.Decode(tt.raw)
			require.NotNil(t, cart)
			assert.Empty(t, cart.Items)
			assert.True(t, cart.IsEmpty())
		})
	}
}

func TestCodec_DecodeNullItemsYieldsUsableCart(t *testing.T) {
	cart := snapshot.Decode([]byte(`{"version": 2, "items": null}`))

	require.NotNil(t, cart)
	assert.NotNil(t, cart.Items)
	assert.True(t, cart.IsEmpty())

	price := decimal.NewFromInt(3)
	require.NoError(t, cart.AddItem(domain.AddItemInput{ProductID: "p1", UnitPriceUSD: &price, Quantity: 1}))
	assert.Len(t, cart.Items, 1)
}
