package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderResponseDecodesAggregatedItems(t *testing.T) {
	productID := uuid.New()
	itemID := uuid.New()
	order := Order{
		ID:            uuid.New(),
		OrderNumber:   "ORD-20260901-deadbeef",
		CustomerID:    uuid.New(),
		CustomerName:  "Ayşe Yılmaz",
		CustomerPhone: "+905551234567",
		Address:       "Atatürk Cad. No: 1 Daire 2",
		City:          pgtype.Text{String: "İstanbul", Valid: true},
		District:      pgtype.Text{String: "Kadıköy", Valid: true},
		TotalAmount:   numericFromDecimal(decimal.RequireFromString("140.00")),
		Status:        "pending",
		PaymentMethod: "cash_on_delivery",
		Items: []byte(`[{"id":"` + itemID.String() + `","product_id":"` + productID.String() +
			`","product_name":"Yüzey Temizleyici","product_price":"70","quantity":2,` +
			`"selected_variant":"5L","subtotal":"140"}]`),
		CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
		UpdatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}

	got, err := order.Response()

	require.NoError(t, err)
	assert.Equal(t, order.OrderNumber, got.OrderNumber)
	require.Len(t, got.Items, 1)
	assert.Equal(t, productID, got.Items[0].ProductID)
	assert.Equal(t, "5L", got.Items[0].SelectedVariant)
	assert.Equal(t, int32(2), got.Items[0].Quantity)
	assert.True(t, decimal.RequireFromString("140").Equal(got.Items[0].Subtotal))
	assert.True(t, decimal.RequireFromString("140.00").Equal(got.TotalAmount))
}

func TestOrderResponseGivenMalformedItemsShouldReturnError(t *testing.T) {
	order := Order{Items: []byte(`{not json`)}

	_, err := order.Response()

	assert.Error(t, err)
}

func TestOrderResponseGivenNoItemsShouldReturnEmptySlice(t *testing.T) {
	got, err := Order{}.Response()

	require.NoError(t, err)
	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
}
