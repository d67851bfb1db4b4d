package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func plainProduct(price string) Snapshot {
	return Snapshot{
		ID:    uuid.New(),
		Name:  "Yüzey Temizleyici 5L",
		Price: decimal.RequireFromString(price),
	}
}

func campaignProduct(price, campaignPrice string) Snapshot {
	return Snapshot{
		ID:    uuid.New(),
		Name:  "Çöp Poşeti 50'li",
		Price: decimal.RequireFromString(price),
		CampaignPrice: decimal.NullDecimal{
			Decimal: decimal.RequireFromString(campaignPrice),
			Valid:   true,
		},
		IsCampaign: true,
	}
}

func recomputeTotals(c Cart) (int, decimal.Decimal) {
	items := 0
	amount := decimal.Zero
	for _, item := range c.Items {
		items += item.Quantity
		amount = amount.Add(
			EffectivePrice(item.Product).Mul(decimal.NewFromInt(int64(item.Quantity))),
		)
	}
	return items, amount.Round(2)
}

func assertTotalsInvariant(t *testing.T, c Cart) {
	t.Helper()
	wantItems, wantAmount := recomputeTotals(c)
	assert.Equal(t, wantItems, c.TotalItems)
	assert.True(
		t,
		wantAmount.Equal(c.TotalAmount),
		"totalAmount=%s want=%s", c.TotalAmount, wantAmount,
	)
}

func TestAddItemMergesSameIdentity(t *testing.T) {
	tests := []struct {
		name         string
		variant      string
		q1, q2       int
		wantQuantity int
	}{
		{
			name:         "given same product without variant should merge into one item",
			variant:      "",
			q1:           2,
			q2:           1,
			wantQuantity: 3,
		},
		{
			name:         "given same product with same variant should merge into one item",
			variant:      "5L",
			q1:           1,
			q2:           4,
			wantQuantity: 5,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := plainProduct("100")

			c := AddItem(Empty(), product, tt.q1, tt.variant)
			firstID := c.Items[0].ID
			firstAddedAt := c.Items[0].AddedAt

			c = AddItem(c, product, tt.q2, tt.variant)

			assert.Len(t, c.Items, 1)
			assert.Equal(t, tt.wantQuantity, c.Items[0].Quantity)
			assert.Equal(t, firstID, c.Items[0].ID)
			assert.True(t, firstAddedAt.Equal(c.Items[0].AddedAt))
			assertTotalsInvariant(t, c)
		})
	}
}

func TestAddItemDistinctIdentity(t *testing.T) {
	tests := []struct {
		name               string
		variant1, variant2 string
	}{
		{
			name:     "given two different variants should keep two items",
			variant1: "1L",
			variant2: "5L",
		},
		{
			name:     "given no variant and a variant should keep two items",
			variant1: "",
			variant2: "5L",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product := plainProduct("100")

			c := AddItem(Empty(), product, 1, tt.variant1)
			c = AddItem(c, product, 1, tt.variant2)

			assert.Len(t, c.Items, 2)
			assert.NotEqual(t, c.Items[0].ID, c.Items[1].ID)
			assert.Equal(t, 1, QuantityOf(c, product.ID, tt.variant1))
			assert.Equal(t, 1, QuantityOf(c, product.ID, tt.variant2))
			assertTotalsInvariant(t, c)
		})
	}
}

func TestAddItemNormalizesQuantityBelowOne(t *testing.T) {
	c := AddItem(Empty(), plainProduct("100"), 0, "")
	assert.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
	assertTotalsInvariant(t, c)
}

func TestAddItemPreservesInsertionOrder(t *testing.T) {
	first := plainProduct("10")
	second := plainProduct("20")
	third := plainProduct("30")

	c := AddItem(Empty(), first, 1, "")
	c = AddItem(c, second, 1, "")
	c = AddItem(c, first, 2, "")
	c = AddItem(c, third, 1, "")

	assert.Len(t, c.Items, 3)
	assert.Equal(t, first.ID, c.Items[0].Product.ID)
	assert.Equal(t, second.ID, c.Items[1].Product.ID)
	assert.Equal(t, third.ID, c.Items[2].Product.ID)
	assert.Equal(t, 3, c.Items[0].Quantity)
}

func TestRemoveItemUnknownIdIsNoop(t *testing.T) {
	c := AddItem(Empty(), plainProduct("100"), 2, "")

	got := RemoveItem(c, "no-such-item")

	assert.Equal(t, c.Items, got.Items)
	assert.Equal(t, c.TotalItems, got.TotalItems)
	assert.True(t, c.TotalAmount.Equal(got.TotalAmount))
}

func TestSetQuantityNonPositiveRemoves(t *testing.T) {
	tests := []struct {
		name     string
		quantity int
	}{
		{name: "given quantity zero should remove item", quantity: 0},
		{name: "given negative quantity should remove item", quantity: -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := AddItem(Empty(), plainProduct("100"), 2, "")
			itemID := c.Items[0].ID

			want := RemoveItem(c, itemID)
			got := SetQuantity(c, itemID, tt.quantity)

			assert.Equal(t, want.Items, got.Items)
			assert.Equal(t, want.TotalItems, got.TotalItems)
			assert.True(t, want.TotalAmount.Equal(got.TotalAmount))
			assert.Empty(t, got.Items)
		})
	}
}

func TestSetQuantityUnknownIdIsNoop(t *testing.T) {
	c := AddItem(Empty(), plainProduct("100"), 2, "")

	got := SetQuantity(c, "no-such-item", 9)

	assert.Equal(t, c.Items, got.Items)
	assert.Equal(t, c.TotalItems, got.TotalItems)
	assert.True(t, c.TotalAmount.Equal(got.TotalAmount))
}

func TestSetQuantityReplacesQuantity(t *testing.T) {
	c := AddItem(Empty(), plainProduct("100"), 2, "")
	itemID := c.Items[0].ID

	got := SetQuantity(c, itemID, 7)

	assert.Equal(t, 7, got.Items[0].Quantity)
	assert.Equal(t, 7, got.TotalItems)
	assert.True(t, decimal.RequireFromString("700").Equal(got.TotalAmount))
	assertTotalsInvariant(t, got)
}

func TestEffectivePrice(t *testing.T) {
	tests := []struct {
		name    string
		product Snapshot
		want    string
	}{
		{
			name:    "given no campaign should use list price",
			product: plainProduct("50"),
			want:    "50",
		},
		{
			name:    "given campaign and campaign price should use campaign price",
			product: campaignProduct("50", "40"),
			want:    "40",
		},
		{
			name: "given campaign flag without campaign price should fall back to list price",
			product: Snapshot{
				ID:         uuid.New(),
				Price:      decimal.RequireFromString("50"),
				IsCampaign: true,
			},
			want: "50",
		},
		{
			name: "given campaign price without campaign flag should use list price",
			product: Snapshot{
				ID:    uuid.New(),
				Price: decimal.RequireFromString("50"),
				CampaignPrice: decimal.NullDecimal{
					Decimal: decimal.RequireFromString("40"),
					Valid:   true,
				},
			},
			want: "50",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EffectivePrice(tt.product)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got=%s", got)
		})
	}
}

func TestTotalsAcrossOperationSequence(t *testing.T) {
	productA := plainProduct("100")
	productB := campaignProduct("50", "40")

	c := AddItem(Empty(), productA, 2, "")
	assert.Equal(t, 2, c.TotalItems)
	assert.True(t, decimal.RequireFromString("200").Equal(c.TotalAmount))

	c = AddItem(c, productA, 1, "")
	assert.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.TotalItems)
	assert.True(t, decimal.RequireFromString("300").Equal(c.TotalAmount))

	c = AddItem(c, productB, 1, "")
	assert.Equal(t, 4, c.TotalItems)
	assert.True(t, decimal.RequireFromString("340").Equal(c.TotalAmount))

	itemA := c.Items[0].ID
	c = SetQuantity(c, itemA, 0)
	assert.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.TotalItems)
	assert.True(t, decimal.RequireFromString("40").Equal(c.TotalAmount))
	assertTotalsInvariant(t, c)
}

func TestTotalAmountRoundsAfterSummation(t *testing.T) {
	// Three lines of 0.335 each: per-line rounding would give 1.02,
	// rounding the sum gives 1.01.
	product := plainProduct("0.335")

	c := AddItem(Empty(), product, 3, "")

	assert.True(
		t,
		decimal.RequireFromString("1.01").Equal(c.TotalAmount),
		"totalAmount=%s", c.TotalAmount,
	)
}

func TestClearTotality(t *testing.T) {
	c := AddItem(Empty(), plainProduct("100"), 2, "")
	c = AddItem(c, campaignProduct("50", "40"), 3, "5L")

	got := Empty()

	assert.Empty(t, got.Items)
	assert.Equal(t, 0, got.TotalItems)
	assert.True(t, decimal.Zero.Equal(got.TotalAmount))
	assert.NotEmpty(t, c.Items, "clear must not touch the old value")
}

func TestIsInCart(t *testing.T) {
	product := plainProduct("100")
	c := AddItem(Empty(), product, 1, "5L")

	assert.True(t, IsInCart(c, product.ID, "5L"))
	assert.False(t, IsInCart(c, product.ID, ""))
	assert.False(t, IsInCart(c, uuid.New(), "5L"))
	assert.Equal(t, 0, QuantityOf(c, product.ID, ""))
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{name: "given integer amount should render two decimals", amount: "340", want: "₺340.00"},
		{name: "given rounded amount should render as is", amount: "40.5", want: "₺40.50"},
		{name: "given zero should render zero", amount: "0", want: "₺0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatPrice(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.want, got)
		})
	}
}
