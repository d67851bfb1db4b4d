package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temizmarket/eticaret/cart"
	inErrors "github.com/temizmarket/eticaret/internal/errors"
	"github.com/temizmarket/eticaret/internal/repository"
	"github.com/temizmarket/eticaret/storefront/internal/service"
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

type stubCheckoutStore struct {
	customer repository.Customer
}

func (s *stubCheckoutStore) FindCustomerByPhone(
	_ context.Context,
	_ string,
) (repository.Customer, error) {
	return repository.Customer{}, inErrors.ErrCustomerNotFound
}

func (s *stubCheckoutStore) InsertCustomer(
	_ context.Context,
	_ repository.UpsertCustomerParams,
) (repository.Customer, error) {
	return s.customer, nil
}

func (s *stubCheckoutStore) CreateOrder(
	_ context.Context,
	param repository.CreateOrderParams,
) (repository.Order, error) {
	return repository.Order{
		ID:            uuid.New(),
		OrderNumber:   "ORD-20260901-ab12cd34",
		CustomerID:    param.CustomerID,
		CustomerName:  param.CustomerName,
		CustomerPhone: param.CustomerPhone,
		Address:       param.Address,
		TotalAmount: pgtype.Numeric{
			Int:   param.TotalAmount.Coefficient(),
			Exp:   param.TotalAmount.Exponent(),
			Valid: true,
		},
		Status:        "pending",
		PaymentMethod: param.PaymentMethod,
	}, nil
}

type cartEnvelope struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Data       struct {
		Cart cart.Cart `json:"cart"`
	} `json:"data"`
}

func cartRouter(t *testing.T, products map[uuid.UUID]repository.Product) *mux.Router {
	t.Helper()
	carts := cart.NewMemoryStore()
	cartService := service.NewCartService(&stubProductFinder{products: products}, carts)
	checkoutService := service.NewCheckoutService(
		&stubCheckoutStore{customer: repository.Customer{ID: uuid.New()}},
		carts,
	)
	router := mux.NewRouter()
	AttachCartController(router, &cartService, &checkoutService)
	return router
}

func activeProduct(id uuid.UUID, price int64) repository.Product {
	d := decimal.NewFromInt(price)
	return repository.Product{
		ID:       id,
		Name:     "Cam Temizleyici",
		Price:    pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true},
		IsActive: true,
	}
}

func doJSON(
	t *testing.T,
	router *mux.Router,
	method, target, body string,
	cookies []*http.Cookie,
) (*httptest.ResponseRecorder, cartEnvelope) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	envelope := cartEnvelope{}
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&envelope))
	return recorder, envelope
}

func TestCartAddAndRemoveRoundTrip(t *testing.T) {
	productID := uuid.New()
	router := cartRouter(t, map[uuid.UUID]repository.Product{
		productID: activeProduct(productID, 85),
	})

	recorder, added := doJSON(t, router, http.MethodPost, "/cart/items",
		`{"productId":"`+productID.String()+`","quantity":2}`, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, added.Data.Cart.Items, 1)
	assert.Equal(t, 2, added.Data.Cart.TotalItems)
	assert.True(t, added.Data.Cart.TotalAmount.Equal(decimal.NewFromInt(170)))

	cookies := recorder.Result().Cookies()
	require.NotEmpty(t, cookies)

	recorder, loaded := doJSON(t, router, http.MethodGet, "/cart", "", cookies)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Len(t, loaded.Data.Cart.Items, 1)
	assert.Equal(t, added.Data.Cart.Items[0].ID, loaded.Data.Cart.Items[0].ID)

	recorder, removed := doJSON(t, router, http.MethodDelete,
		"/cart/items/"+loaded.Data.Cart.Items[0].ID, "", cookies)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, removed.Data.Cart.Items)
}

func TestCartMintsSessionCookieOnFirstRequest(t *testing.T) {
	router := cartRouter(t, map[uuid.UUID]repository.Product{})

	recorder, _ := doJSON(t, router, http.MethodGet, "/cart", "", nil)

	require.Equal(t, http.StatusOK, recorder.Code)
	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestAddCartItemGivenUnknownProductShouldReturn404(t *testing.T) {
	router := cartRouter(t, map[uuid.UUID]repository.Product{})

	recorder, envelope := doJSON(t, router, http.MethodPost, "/cart/items",
		`{"productId":"`+uuid.NewString()+`","quantity":1}`, nil)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "failed", envelope.Status)
}

func TestCheckoutGivenEmptyCartShouldReturn400(t *testing.T) {
	router := cartRouter(t, map[uuid.UUID]repository.Product{})

	recorder, envelope := doJSON(t, router, http.MethodPost, "/checkout",
		`{"customer_name":"Ayşe Yılmaz","customer_phone":"+905551234567",`+
			`"address":"Atatürk Cad. No: 1 Daire 2","payment_method":"cash_on_delivery"}`, nil)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, "failed", envelope.Status)
}

func TestCheckoutGivenNonEmptyCartShouldReturn201(t *testing.T) {
	productID := uuid.New()
	router := cartRouter(t, map[uuid.UUID]repository.Product{
		productID: activeProduct(productID, 85),
	})

	recorder, _ := doJSON(t, router, http.MethodPost, "/cart/items",
		`{"productId":"`+productID.String()+`","quantity":2}`, nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	cookies := recorder.Result().Cookies()
	require.NotEmpty(t, cookies)

	recorder, _ = doJSON(t, router, http.MethodPost, "/checkout",
		`{"customer_name":"Ayşe Yılmaz","customer_phone":"+905551234567",`+
			`"address":"Atatürk Cad. No: 1 Daire 2","payment_method":"cash_on_delivery"}`,
		cookies)

	assert.Equal(t, http.StatusCreated, recorder.Code)
}
