package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type failingStore struct {
	getErr error
	setErr error
}

func (s failingStore) Get(_ context.Context, _ string) ([]byte, error) {
	return nil, s.getErr
}

func (s failingStore) Set(_ context.Context, _ string, _ []byte) error {
	return s.setErr
}

func (s failingStore) Delete(_ context.Context, _ string) error {
	return nil
}

func TestLoadReturnsEmptyCart(t *testing.T) {
	tests := []struct {
		name    string
		manager func() Manager
	}{
		{
			name: "given no persisted value should return empty cart",
			manager: func() Manager {
				return NewManager(NewMemoryStore(), "")
			},
		},
		{
			name: "given malformed persisted value should return empty cart",
			manager: func() Manager {
				store := NewMemoryStore()
				err := store.Set(context.Background(), DefaultKey, []byte("{not json"))
				assert.NoError(t, err)
				return NewManager(store, "")
			},
		},
		{
			name: "given unavailable store should return empty cart",
			manager: func() Manager {
				return NewManager(failingStore{getErr: errors.New("store unavailable")}, "")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.manager().Load(context.Background())

			assert.NotNil(t, got.Items)
			assert.Empty(t, got.Items)
			assert.Equal(t, 0, got.TotalItems)
			assert.True(t, decimal.Zero.Equal(got.TotalAmount))
		})
	}
}

func TestSaveFailureStillReturnsCart(t *testing.T) {
	manager := NewManager(failingStore{setErr: errors.New("quota exceeded")}, "")

	got := manager.AddItem(context.Background(), Empty(), plainProduct("100"), 2, "")

	assert.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.TotalItems)
	assert.True(t, decimal.RequireFromString("200").Equal(got.TotalAmount))
}

func TestRoundTripPersistence(t *testing.T) {
	store := NewMemoryStore()
	manager := NewManager(store, SessionKey("session-1"))
	c := context.Background()

	want := manager.AddItem(c, Empty(), plainProduct("100"), 2, "")
	want = manager.AddItem(c, want, campaignProduct("50", "40"), 1, "5L")

	got := manager.Load(c)

	assert.Len(t, got.Items, len(want.Items))
	for i, wantItem := range want.Items {
		gotItem := got.Items[i]
		assert.Equal(t, wantItem.ID, gotItem.ID)
		assert.Equal(t, wantItem.Product.ID, gotItem.Product.ID)
		assert.Equal(t, wantItem.Product.Name, gotItem.Product.Name)
		assert.True(t, wantItem.Product.Price.Equal(gotItem.Product.Price))
		assert.Equal(t, wantItem.Product.IsCampaign, gotItem.Product.IsCampaign)
		assert.Equal(t, wantItem.Quantity, gotItem.Quantity)
		assert.Equal(t, wantItem.SelectedVariant, gotItem.SelectedVariant)
		assert.True(t, wantItem.AddedAt.Equal(gotItem.AddedAt))
	}
	assert.Equal(t, want.TotalItems, got.TotalItems)
	assert.True(t, want.TotalAmount.Equal(got.TotalAmount))
	assert.True(t, want.UpdatedAt.Equal(got.UpdatedAt))
}

func TestMutationsPersistImmediately(t *testing.T) {
	store := NewMemoryStore()
	manager := NewManager(store, "")
	c := context.Background()

	cart := manager.AddItem(c, Empty(), plainProduct("100"), 2, "")
	assert.Equal(t, 2, manager.Load(c).TotalItems)

	cart = manager.SetQuantity(c, cart, cart.Items[0].ID, 5)
	assert.Equal(t, 5, manager.Load(c).TotalItems)

	cart = manager.RemoveItem(c, cart, cart.Items[0].ID)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, manager.Load(c).TotalItems)
}

func TestClearPersistsEmptyCart(t *testing.T) {
	store := NewMemoryStore()
	manager := NewManager(store, "")
	c := context.Background()

	manager.AddItem(c, Empty(), plainProduct("100"), 4, "")
	got := manager.Clear(c)

	assert.Empty(t, got.Items)
	assert.Equal(t, 0, got.TotalItems)
	assert.True(t, decimal.Zero.Equal(got.TotalAmount))

	reloaded := manager.Load(c)
	assert.Empty(t, reloaded.Items)
	assert.Equal(t, 0, reloaded.TotalItems)
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "eticaret_cart", SessionKey(""))
	assert.Equal(t, "eticaret_cart:abc", SessionKey("abc"))
}
