package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Snapshot is the copy of a catalog product captured when it first enters the
// cart. It is never re-fetched afterwards; a catalog price change does not
// affect items already in the cart.
type Snapshot struct {
	ID            uuid.UUID           `json:"id"`
	Name          string              `json:"name"`
	Slug          string              `json:"slug,omitempty"`
	Description   string              `json:"description,omitempty"`
	Price         decimal.Decimal     `json:"price"`
	CampaignPrice decimal.NullDecimal `json:"campaign_price,omitempty"`
	IsCampaign    bool                `json:"is_campaign"`
	ImageURLs     []string            `json:"image_urls,omitempty"`
}

// Item is one cart line. Its ID is distinct from the product id: the same
// product can appear as separate lines under different variants. AddedAt is
// set once at first addition and is not touched when quantities merge.
type Item struct {
	ID              string    `json:"id"`
	Product         Snapshot  `json:"product"`
	Quantity        int       `json:"quantity"`
	SelectedVariant string    `json:"selectedVariant,omitempty"`
	AddedAt         time.Time `json:"addedAt"`
}

type Cart struct {
	Items       []Item          `json:"items"`
	TotalItems  int             `json:"totalItems"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

func Empty() Cart {
	return Cart{
		Items:       []Item{},
		TotalItems:  0,
		TotalAmount: decimal.Zero,
		UpdatedAt:   time.Now(),
	}
}

// AddItem merges into an existing line when (product id, variant) already
// exists, otherwise appends a new line with a fresh line id. Quantity below 1
// is normalized to 1.
func AddItem(c Cart, product Snapshot, quantity int, variant string) Cart {
	if quantity < 1 {
		quantity = 1
	}

	items := make([]Item, len(c.Items))
	copy(items, c.Items)

	merged := false
	for i, item := range items {
		if item.Product.ID == product.ID && item.SelectedVariant == variant {
			item.Quantity += quantity
			items[i] = item
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, Item{
			ID:              uuid.NewString(),
			Product:         product,
			Quantity:        quantity,
			SelectedVariant: variant,
			AddedAt:         time.Now(),
		})
	}

	c.Items = items
	c.UpdatedAt = time.Now()
	return calculateTotals(c)
}

// RemoveItem drops the line whose id matches. An unknown id is a no-op, not
// an error.
func RemoveItem(c Cart, itemID string) Cart {
	items := make([]Item, 0, len(c.Items))
	for _, item := range c.Items {
		if item.ID == itemID {
			continue
		}
		items = append(items, item)
	}

	c.Items = items
	c.UpdatedAt = time.Now()
	return calculateTotals(c)
}

// SetQuantity replaces the quantity of the matching line. Quantity of zero or
// below removes the line instead; an unknown id is a no-op.
func SetQuantity(c Cart, itemID string, quantity int) Cart {
	if quantity <= 0 {
		return RemoveItem(c, itemID)
	}

	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	for i, item := range items {
		if item.ID == itemID {
			item.Quantity = quantity
			items[i] = item
			break
		}
	}

	c.Items = items
	c.UpdatedAt = time.Now()
	return calculateTotals(c)
}

func IsInCart(c Cart, productID uuid.UUID, variant string) bool {
	for _, item := range c.Items {
		if item.Product.ID == productID && item.SelectedVariant == variant {
			return true
		}
	}
	return false
}

func QuantityOf(c Cart, productID uuid.UUID, variant string) int {
	for _, item := range c.Items {
		if item.Product.ID == productID && item.SelectedVariant == variant {
			return item.Quantity
		}
	}
	return 0
}

// calculateTotals always recomputes from the full item list rather than
// incrementally, so the totals invariant cannot drift from the items.
// Rounding to 2 places happens after summation, not per line.
func calculateTotals(c Cart) Cart {
	totalItems := 0
	totalAmount := decimal.Zero
	for _, item := range c.Items {
		totalItems += item.Quantity
		price := EffectivePrice(item.Product)
		totalAmount = totalAmount.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	c.TotalItems = totalItems
	c.TotalAmount = totalAmount.Round(2)
	return c
}
