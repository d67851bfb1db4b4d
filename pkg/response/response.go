package response

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
	ImageURL    string     `json:"image_url,omitempty"`
	SortOrder   int32      `json:"sort_order"`
	IsActive    bool       `json:"is_active"`
	Children    []Category `json:"children,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type Product struct {
	ID                uuid.UUID           `json:"id"`
	Name              string              `json:"name"`
	Slug              string              `json:"slug"`
	Description       string              `json:"description,omitempty"`
	Price             decimal.Decimal     `json:"price"`
	CampaignPrice     decimal.NullDecimal `json:"campaign_price,omitempty"`
	CategoryID        uuid.UUID           `json:"category_id"`
	CategoryName      string              `json:"category_name,omitempty"`
	ImageURLs         []string            `json:"image_urls"`
	StockQuantity     int32               `json:"stock_quantity"`
	MinStockLevel     int32               `json:"min_stock_level"`
	Sku               string              `json:"sku,omitempty"`
	Variants          []string            `json:"variants,omitempty"`
	IsActive          bool                `json:"is_active"`
	IsFeatured        bool                `json:"is_featured"`
	IsCampaign        bool                `json:"is_campaign"`
	CampaignStartDate *time.Time          `json:"campaign_start_date,omitempty"`
	CampaignEndDate   *time.Time          `json:"campaign_end_date,omitempty"`
	Tags              []string            `json:"tags,omitempty"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

type Customer struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	Email       string          `json:"email,omitempty"`
	Address     string          `json:"address,omitempty"`
	City        string          `json:"city,omitempty"`
	District    string          `json:"district,omitempty"`
	Notes       string          `json:"notes,omitempty"`
	TotalOrders int32           `json:"total_orders"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type Order struct {
	ID            uuid.UUID       `json:"id"`
	OrderNumber   string          `json:"order_number"`
	CustomerID    uuid.UUID       `json:"customer_id"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	Address       string          `json:"address"`
	City          string          `json:"city,omitempty"`
	District      string          `json:"district,omitempty"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Status        string          `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	Notes         string          `json:"notes,omitempty"`
	AdminNotes    string          `json:"admin_notes,omitempty"`
	Items         []OrderItem     `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type OrderItem struct {
	ID              uuid.UUID       `json:"id"`
	ProductID       uuid.UUID       `json:"product_id"`
	ProductName     string          `json:"product_name"`
	ProductPrice    decimal.Decimal `json:"product_price"`
	Quantity        int32           `json:"quantity"`
	SelectedVariant string          `json:"selected_variant,omitempty"`
	Subtotal        decimal.Decimal `json:"subtotal"`
}

type Setting struct {
	Key       string          `json:"key"`
	Value     json.RawMessage `json:"value"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type DashboardStats struct {
	TodayOrders   int64           `json:"today_orders"`
	WeekOrders    int64           `json:"week_orders"`
	TodayRevenue  decimal.Decimal `json:"today_revenue"`
	WeekRevenue   decimal.Decimal `json:"week_revenue"`
	PendingOrders []Order         `json:"pending_orders"`
}
