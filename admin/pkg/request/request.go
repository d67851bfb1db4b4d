package request

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Login struct {
	Password string `json:"password" validate:"required"`
}

type UpsertCategory struct {
	Name        string     `json:"name"        validate:"required,min=2,max=100"`
	Description string     `json:"description" validate:"max=500"`
	ParentID    *uuid.UUID `json:"parent_id"`
	ImageURL    string     `json:"image_url"   validate:"omitempty,url"`
	SortOrder   int32      `json:"sort_order"  validate:"gte=0"`
	IsActive    bool       `json:"is_active"`
}

type UpsertProduct struct {
	Name              string              `json:"name"                validate:"required,min=2,max=200"`
	Slug              string              `json:"slug"                validate:"required,min=2,max=200"`
	Description       string              `json:"description"`
	Price             decimal.Decimal     `json:"price"               validate:"required"`
	CampaignPrice     decimal.NullDecimal `json:"campaign_price"`
	CategoryID        uuid.UUID           `json:"category_id"         validate:"required"`
	ImageURLs         []string            `json:"image_urls"          validate:"dive,url"`
	StockQuantity     int32               `json:"stock_quantity"      validate:"gte=0"`
	MinStockLevel     int32               `json:"min_stock_level"     validate:"gte=0"`
	Sku               string              `json:"sku"                 validate:"max=50"`
	Variants          []string            `json:"variants"`
	IsActive          bool                `json:"is_active"`
	IsFeatured        bool                `json:"is_featured"`
	IsCampaign        bool                `json:"is_campaign"`
	CampaignStartDate *time.Time          `json:"campaign_start_date"`
	CampaignEndDate   *time.Time          `json:"campaign_end_date"`
	Tags              []string            `json:"tags"`
}

type UpsertCustomer struct {
	Name     string `json:"name"     validate:"required,min=2,max=100"`
	Phone    string `json:"phone"    validate:"required,e164"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	District string `json:"district"`
	Notes    string `json:"notes"    validate:"max=500"`
}

type UpdateOrderStatus struct {
	Status     string `json:"status"      validate:"required,oneof=pending confirmed preparing shipped delivered cancelled"`
	AdminNotes string `json:"admin_notes" validate:"max=500"`
}

type UpdateSetting struct {
	Value json.RawMessage `json:"value" validate:"required"`
}
