package domain_test

import (
	"testing"

	"github.com/kbeautyshop/storefront_backend/internal/apperrors"
	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func addInput(id string, price float64, qty int64) domain.AddItemInput {
	return domain.AddItemInput{
		ProductID:    id,
		Name:         "Product " + id,
		ImageURL:     "https://cdn.example.com/" + id + ".jpg",
		UnitPriceUSD: decimalPtr(decimal.NewFromFloat(price)),
		Quantity:     qty,
	}
}

func TestCart_AddItem_DistinctIDs(t *testing.T) {
	cart := domain.NewCart()

	require.NoError(t, cart.AddItem(addInput("p1", 10, 2)))
	require.NoError(t, cart.AddItem(addInput("p2", 5, 3)))
	require.NoError(t, cart.AddItem(addInput("p3", 1, 1)))

	assert.Len(t, cart.Items, 3)
	assert.Equal(t, "p1", cart.Items[0].ProductID)
	assert.Equal(t, "p2", cart.Items[1].ProductID)
	assert.Equal(t, "p3", cart.Items[2].ProductID)
}

func TestCart_AddItem_MergesOnDuplicateID(t *testing.T) {
	cart := domain.NewCart()

	require.NoError(t, cart.AddItem(addInput("p1", 10, 2)))
	require.NoError(t, cart.AddItem(addInput("p1", 10, 3)))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(5), cart.Items[0].Quantity)
}

func TestCart_AddItem_MergeKeepsOriginalDisplayFields(t *testing.T) {
	cart := domain.NewCart()

	first := addInput("p1", 10, 1)
	first.Name = "Original Name"
	require.NoError(t, cart.AddItem(first))

	// A later add with different name and price must not touch the line's
	// captured fields.
	second := addInput("p1", 99, 1)
	second.Name = "Renamed In Catalog"
	require.NoError(t, cart.AddItem(second))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Original Name", cart.Items[0].Name)
	assert.True(t, cart.Items[0].UnitPriceUSD.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, int64(2), cart.Items[0].Quantity)
}

func TestCart_AddItem_QuantityDefaultsAndClamps(t *testing.T) {
	tests := []struct {
		name      string
		requested int64
		want      int64
	}{
		{name: "omitted quantity defaults to 1", requested: 0, want: 1},
		{name: "negative quantity clamps to 1", requested: -5, want: 1},
		{name: "positive quantity kept", requested: 4, want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := domain.NewCart()
			require.NoError(t, cart.AddItem(addInput("p1", 10, tt.requested)))
			assert.Equal(t, tt.want, cart.Items[0].Quantity)
		})
	}
}

func TestCart_AddItem_RejectsMissingPrice(t *testing.T) {
	cart := domain.NewCart()
	require.NoError(t, cart.AddItem(addInput("p1", 10, 1)))

	in := domain.AddItemInput{ProductID: "p2", Name: "No Price", Quantity: 1}
	err := cart.AddItem(in)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	// Rejection leaves the cart exactly as it was.
	assert.Len(t, cart.Items, 1)
	assert.Equal(t, "p1", cart.Items[0].ProductID)
}

func TestCart_AddItem_RejectsNegativePrice(t *testing.T) {
	cart := domain.NewCart()

	in := addInput("p1", 10, 1)
	in.UnitPriceUSD = decimalPtr(decimal.NewFromInt(-3))
	err := cart.AddItem(in)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Empty(t, cart.Items)
}

func TestCart_AddItem_RejectsEmptyProductID(t *testing.T) {
	cart := domain.NewCart()

	err := cart.AddItem(addInput("", 10, 1))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Empty(t, cart.Items)
}

func TestCart_UpdateQuantity_ClampsToOne(t *testing.T) {
	tests := []struct {
		name      string
		requested int64
		want      int64
	}{
		{name: "zero clamps to 1", requested: 0, want: 1},
		{name: "negative clamps to 1", requested: -5, want: 1},
		{name: "positive kept", requested: 7, want: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := domain.NewCart()
			require.NoError(t, cart.AddItem(addInput("p1", 10, 2)))

			cart.UpdateQuantity("p1", tt.requested)

			assert.Equal(t, tt.want, cart.Items[0].Quantity)
		})
	}
}

func TestCart_UpdateQuantity_UnknownIDIsNoop(t *testing.T) {
	cart := domain.NewCart()
	require.NoError(t, cart.AddItem(addInput("p1", 10, 2)))

	cart.UpdateQuantity("missing", 9)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].Quantity)
}

func TestCart_UpdateQuantity_NeverChangesPrice(t *testing.T) {
	cart := domain.NewCart()
	require.NoError(t, cart.AddItem(addInput("p1", 12.5, 1)))

	cart.UpdateQuantity("p1", 10)

	assert.True(t, cart.Items[0].UnitPriceUSD.Equal(decimal.NewFromFloat(12.5)))
}

func TestCart_RemoveItem(t *testing.T) {
	cart := domain.NewCart()
	require.NoError(t, cart.AddItem(addInput("p1", 10, 2)))
	require.NoError(t, cart.AddItem(addInput("p2", 5, 3)))

	cart.RemoveItem("p1")

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p2", cart.Items[0].ProductID)
}

func TestCart_RemoveItem_UnknownIDIsNoop(t *testing.T) {
	cart := domain.NewCart()
	require.NoError(t, cart.AddItem(addInput("p1", 10, 2)))
	require.NoError(t, cart.AddItem(addInput("p2", 5, 3)))
	before := make([]domain.CartItem, len(cart.Items))
	copy(before, cart.Items)

	cart.RemoveItem("missing")

	assert.Equal(t, before, cart.Items)
}

func TestCart_SubtotalAndCount(t *testing.T) {
	cart := domain.NewCart()
	require.NoError(t, cart.AddItem(addInput("p1", 10, 2)))
	require.NoError(t, cart.AddItem(addInput("p2", 5, 3)))

	assert.True(t, cart.SubtotalUSD().Equal(decimal.NewFromInt(35)))
	assert.Equal(t, int64(5), cart.ItemCount())
}

func TestCart_Clear(t *testing.T) {
	cart := domain.NewCart()
	require.NoError(t, cart.AddItem(addInput("p1", 10, 2)))
	require.NoError(t, cart.AddItem(addInput("p2", 5, 3)))

	cart.Clear()

	assert.Empty(t, cart.Items)
	assert.True(t, cart.SubtotalUSD().IsZero())
	assert.Equal(t, int64(0), cart.ItemCount())
	assert.True(t, cart.IsEmpty())
}

func TestCart_EmptyCartDerivedValues(t *testing.T) {
	cart := domain.NewCart()

	assert.True(t, cart.SubtotalUSD().IsZero())
	assert.Equal(t, int64(0), cart.ItemCount())
}
