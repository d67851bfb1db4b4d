package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/temizmarket/eticaret/internal/log"
)

// Manager binds the pure cart operations to a Store under a fixed key. Every
// mutating call builds a new Cart value, persists it immediately, and returns
// it. Persistence failures are logged and swallowed: the returned in-memory
// cart stays usable even when it could not be saved.
type Manager struct {
	store Store
	key   string
}

func NewManager(store Store, key string) Manager {
	if key == "" {
		key = DefaultKey
	}
	return Manager{store: store, key: key}
}

// Load reads the persisted cart. An absent key, an unreadable store, or a
// malformed payload all degrade to an empty cart; Load never fails.
func (m Manager) Load(c context.Context) Cart {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartManager Load").
		Str(log.KeyCartKey, m.key).
		Logger()

	raw, err := m.store.Get(c, m.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			err = fmt.Errorf("failed loading cart with error=%w", err)
			logger.Error().Err(err).Msg(err.Error())
		}
		return Empty()
	}

	cart := Cart{}
	err = json.Unmarshal(raw, &cart)
	if err != nil {
		err = fmt.Errorf("failed unmarshaling cart with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return Empty()
	}
	if cart.Items == nil {
		cart.Items = []Item{}
	}
	return cart
}

// Save overwrites the persisted cart. Failure to write is logged, never
// surfaced: worst case is silent loss of persistence, not a broken mutation.
func (m Manager) Save(c context.Context, cart Cart) {
	logger := zerolog.Ctx(c).
		With().
		Str(log.KeyTag, "CartManager Save").
		Str(log.KeyCartKey, m.key).
		Logger()

	raw, err := json.Marshal(cart)
	if err != nil {
		err = fmt.Errorf("failed marshaling cart with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
		return
	}

	err = m.store.Set(c, m.key, raw)
	if err != nil {
		err = fmt.Errorf("failed saving cart with error=%w", err)
		logger.Error().Err(err).Msg(err.Error())
	}
}

func (m Manager) AddItem(
	c context.Context,
	cart Cart,
	product Snapshot,
	quantity int,
	variant string,
) Cart {
	next := AddItem(cart, product, quantity, variant)
	m.Save(c, next)
	return next
}

func (m Manager) RemoveItem(c context.Context, cart Cart, itemID string) Cart {
	next := RemoveItem(cart, itemID)
	m.Save(c, next)
	return next
}

func (m Manager) SetQuantity(c context.Context, cart Cart, itemID string, quantity int) Cart {
	next := SetQuantity(cart, itemID, quantity)
	m.Save(c, next)
	return next
}

// Clear persists a brand-new empty cart unconditionally.
func (m Manager) Clear(c context.Context) Cart {
	next := Empty()
	m.Save(c, next)
	return next
}
