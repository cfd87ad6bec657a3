// Package snapshot encodes a cart into the versioned envelope that every
// storage backend persists under a single key, and decodes it back. The
// mutation logic never sees this envelope; storage adapters are its only
// callers.
package snapshot

import (
	"encoding/json"

	"github.com/kbeautyshop/storefront_backend/internal/core/domain"
)

// SchemaVersion tags every stored snapshot. Readers treat any other version
// as "no existing cart".
const SchemaVersion = 2

type envelope struct {
	Version int               `json:"version"`
	Items   []domain.CartItem `json:"items"`
}

// Encode serializes the cart's full line item sequence under the current
// schema version. Each save replaces the prior stored copy entirely.
func Encode(cart *domain.Cart) ([]byte, error) {
	return json.Marshal(envelope{
		Version: SchemaVersion,
		Items:   cart.Items,
	})
}

// Decode deserializes a stored snapshot. Corrupt bytes, a missing version or
// an unrecognized version all degrade to an empty cart rather than failing;
// the store prioritizes availability over strictness.
func Decode(raw []byte) *domain.Cart {
	if len(raw) == 0 {
		return domain.NewCart()
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return domain.NewCart()
	}
	if env.Version != SchemaVersion {
		return domain.NewCart()
	}
	cart := domain.NewCart()
	if len(env.Items) > 0 {
		cart.Items = env.Items
	}
	return cart
}
