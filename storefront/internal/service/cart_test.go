package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temizmarket/eticaret/cart"
	inErrors "github.com/temizmarket/eticaret/internal/errors"
	"github.com/temizmarket/eticaret/internal/repository"
	"github.com/temizmarket/eticaret/storefront/pkg/request"
)

type stubProductFinder struct {
	products map[uuid.UUID]repository.Product
}

func (s *stubProductFinder) FindProductById(
	_ context.Context,
	id uuid.UUID,
) (repository.Product, error) {
	product, ok := s.products[id]
	if !ok {
		return repository.Product{}, inErrors.ErrProductNotFound
	}
	return product, nil
}

func numericFrom(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func TestAddItemGivenUnknownProductShouldReturnError(t *testing.T) {
	finder := &stubProductFinder{products: map[uuid.UUID]repository.Product{}}
	svc := NewCartService(finder, cart.NewMemoryStore())

	_, err := svc.AddItem(context.Background(), "session-1", request.AddCartItem{
		ProductID: uuid.New(),
		Quantity:  1,
	})

	require.ErrorIs(t, err, inErrors.ErrProductNotFound)
}

func TestAddItemGivenInactiveProductShouldReturnError(t *testing.T) {
	id := uuid.New()
	finder := &stubProductFinder{products: map[uuid.UUID]repository.Product{
		id: {ID: id, Name: "Pasif Urun", Price: numericFrom(decimal.NewFromInt(50)), IsActive: false},
	}}
	svc := NewCartService(finder, cart.NewMemoryStore())

	_, err := svc.AddItem(context.Background(), "session-1", request.AddCartItem{
		ProductID: id,
		Quantity:  1,
	})

	require.ErrorIs(t, err, inErrors.ErrProductNotFound)
}

func TestAddItemShouldPersistAcrossLoads(t *testing.T) {
	id := uuid.New()
	finder := &stubProductFinder{products: map[uuid.UUID]repository.Product{
		id: {
			ID:       id,
			Name:     "Cam Temizleyici",
			Price:    numericFrom(decimal.NewFromInt(85)),
			IsActive: true,
		},
	}}
	carts := cart.NewMemoryStore()
	svc := NewCartService(finder, carts)

	updated, err := svc.AddItem(context.Background(), "session-1", request.AddCartItem{
		ProductID: id,
		Quantity:  3,
	})
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, 3, updated.TotalItems)
	assert.True(t, updated.TotalAmount.Equal(decimal.NewFromInt(255)))

	loaded := svc.FindCart(context.Background(), "session-1")
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, updated.Items[0].ID, loaded.Items[0].ID)
}

func TestAddItemShouldIsolateSessions(t *testing.T) {
	id := uuid.New()
	finder := &stubProductFinder{products: map[uuid.UUID]repository.Product{
		id: {
			ID:       id,
			Name:     "Cam Temizleyici",
			Price:    numericFrom(decimal.NewFromInt(85)),
			IsActive: true,
		},
	}}
	carts := cart.NewMemoryStore()
	svc := NewCartService(finder, carts)

	_, err := svc.AddItem(context.Background(), "session-1", request.AddCartItem{
		ProductID: id,
		Quantity:  1,
	})
	require.NoError(t, err)

	other := svc.FindCart(context.Background(), "session-2")
	assert.Empty(t, other.Items)
}

func TestUpdateItemToZeroShouldRemoveItem(t *testing.T) {
	id := uuid.New()
	finder := &stubProductFinder{products: map[uuid.UUID]repository.Product{
		id: {
			ID:       id,
			Name:     "Cam Temizleyici",
			Price:    numericFrom(decimal.NewFromInt(85)),
			IsActive: true,
		},
	}}
	carts := cart.NewMemoryStore()
	svc := NewCartService(finder, carts)

	updated, err := svc.AddItem(context.Background(), "session-1", request.AddCartItem{
		ProductID: id,
		Quantity:  2,
	})
	require.NoError(t, err)

	after := svc.UpdateItem(context.Background(), "session-1", updated.Items[0].ID, 0)
	assert.Empty(t, after.Items)
	assert.True(t, after.TotalAmount.IsZero())
}
