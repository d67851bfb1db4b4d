package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temizmarket/eticaret/cart"
	inErrors "github.com/temizmarket/eticaret/internal/errors"
	"github.com/temizmarket/eticaret/internal/repository"
	"github.com/temizmarket/eticaret/storefront/pkg/request"
)

type stubCheckoutStore struct {
	customer        repository.Customer
	findCustomerErr error
	insertedParam   *repository.UpsertCustomerParams
	createdParam    *repository.CreateOrderParams
}

func (s *stubCheckoutStore) FindCustomerByPhone(
	_ context.Context,
	phone string,
) (repository.Customer, error) {
	if s.findCustomerErr != nil {
		return repository.Customer{}, s.findCustomerErr
	}
	return s.customer, nil
}

func (s *stubCheckoutStore) InsertCustomer(
	_ context.Context,
	param repository.UpsertCustomerParams,
) (repository.Customer, error) {
	s.insertedParam = &param
	return repository.Customer{ID: uuid.New(), Name: param.Name, Phone: param.Phone}, nil
}

func (s *stubCheckoutStore) CreateOrder(
	_ context.Context,
	param repository.CreateOrderParams,
) (repository.Order, error) {
	s.createdParam = &param
	return repository.Order{
		ID:            uuid.New(),
		OrderNumber:   "ORD-20260901-abcd1234",
		CustomerID:    param.CustomerID,
		CustomerName:  param.CustomerName,
		CustomerPhone: param.CustomerPhone,
		Address:       param.Address,
		Status:        "pending",
		PaymentMethod: param.PaymentMethod,
	}, nil
}

func checkoutRequest() request.Checkout {
	return request.Checkout{
		CustomerName:  "Ayse Yilmaz",
		CustomerPhone: "+905551234567",
		Address:       "Ataturk Cad. No:12 D:3",
		City:          "Istanbul",
		District:      "Kadikoy",
		PaymentMethod: "cash_on_delivery",
	}
}

func seedCart(t *testing.T, carts cart.Store, sessionID string, products ...cart.Snapshot) cart.Cart {
	t.Helper()
	manager := cart.NewManager(carts, cart.SessionKey(sessionID))
	current := manager.Load(context.Background())
	for _, product := range products {
		current = manager.AddItem(context.Background(), current, product, 2, "")
	}
	return current
}

func TestCheckoutGivenEmptyCartShouldReturnError(t *testing.T) {
	store := &stubCheckoutStore{}
	svc := NewCheckoutService(store, cart.NewMemoryStore())

	_, err := svc.Checkout(context.Background(), "session-1", checkoutRequest())

	require.ErrorIs(t, err, inErrors.ErrEmptyCart)
	assert.Nil(t, store.createdParam)
}

func TestCheckoutGivenUnknownPhoneShouldInsertCustomer(t *testing.T) {
	store := &stubCheckoutStore{findCustomerErr: inErrors.ErrCustomerNotFound}
	carts := cart.NewMemoryStore()
	seedCart(t, carts, "session-1", cart.Snapshot{
		ID:    uuid.New(),
		Name:  "Yuzey Temizleyici",
		Price: decimal.NewFromInt(100),
	})
	svc := NewCheckoutService(store, carts)

	order, err := svc.Checkout(context.Background(), "session-1", checkoutRequest())

	require.NoError(t, err)
	require.NotNil(t, store.insertedParam)
	assert.Equal(t, "+905551234567", store.insertedParam.Phone)
	assert.Equal(t, "Ayse Yilmaz", store.insertedParam.Name)
	assert.Equal(t, "pending", order.Status)
}

func TestCheckoutGivenKnownPhoneShouldNotInsertCustomer(t *testing.T) {
	customer := repository.Customer{ID: uuid.New(), Name: "Ayse Yilmaz", Phone: "+905551234567"}
	store := &stubCheckoutStore{customer: customer}
	carts := cart.NewMemoryStore()
	seedCart(t, carts, "session-1", cart.Snapshot{
		ID:    uuid.New(),
		Name:  "Yuzey Temizleyici",
		Price: decimal.NewFromInt(100),
	})
	svc := NewCheckoutService(store, carts)

	_, err := svc.Checkout(context.Background(), "session-1", checkoutRequest())

	require.NoError(t, err)
	assert.Nil(t, store.insertedParam)
	require.NotNil(t, store.createdParam)
	assert.Equal(t, customer.ID, store.createdParam.CustomerID)
}

func TestCheckoutShouldPriceItemsWithCampaignPrice(t *testing.T) {
	store := &stubCheckoutStore{findCustomerErr: inErrors.ErrCustomerNotFound}
	carts := cart.NewMemoryStore()
	product := cart.Snapshot{
		ID:            uuid.New(),
		Name:          "Kampanyali Deterjan",
		Price:         decimal.NewFromInt(100),
		CampaignPrice: decimal.NewNullDecimal(decimal.NewFromInt(70)),
		IsCampaign:    true,
	}
	seeded := seedCart(t, carts, "session-1", product)
	svc := NewCheckoutService(store, carts)

	_, err := svc.Checkout(context.Background(), "session-1", checkoutRequest())

	require.NoError(t, err)
	require.NotNil(t, store.createdParam)
	require.Len(t, store.createdParam.Items, 1)
	item := store.createdParam.Items[0]
	assert.True(t, item.ProductPrice.Equal(decimal.NewFromInt(70)))
	assert.True(t, item.Subtotal.Equal(decimal.NewFromInt(140)))
	assert.Equal(t, int32(2), item.Quantity)
	assert.True(t, store.createdParam.TotalAmount.Equal(seeded.TotalAmount))
}

func TestCheckoutShouldClearCart(t *testing.T) {
	store := &stubCheckoutStore{findCustomerErr: inErrors.ErrCustomerNotFound}
	carts := cart.NewMemoryStore()
	seedCart(t, carts, "session-1", cart.Snapshot{
		ID:    uuid.New(),
		Name:  "Yuzey Temizleyici",
		Price: decimal.NewFromInt(100),
	})
	svc := NewCheckoutService(store, carts)

	_, err := svc.Checkout(context.Background(), "session-1", checkoutRequest())

	require.NoError(t, err)
	after := cart.NewManager(carts, cart.SessionKey("session-1")).Load(context.Background())
	assert.Empty(t, after.Items)
	assert.True(t, after.TotalAmount.IsZero())
}
