package cart

import (
	"context"
	"errors"
)

// DefaultKey is the storage key a single-session cart persists under.
// Session-scoped carts derive their key from it (see SessionKey).
const DefaultKey = "eticaret_cart"

// ErrNotFound is returned by a Store when the key has no value yet.
var ErrNotFound = errors.New("cart: key not found")

// Store is the key-value persistence port the cart engine saves through.
// Implementations must treat each Set as an atomic overwrite of the key.
type Store interface {
	Get(c context.Context, key string) ([]byte, error)
	Set(c context.Context, key string, value []byte) error
	Delete(c context.Context, key string) error
}

func SessionKey(sessionID string) string {
	if sessionID == "" {
		return DefaultKey
	}
	return DefaultKey + ":" + sessionID
}
