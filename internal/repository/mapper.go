package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/temizmarket/eticaret/cart"
	"github.com/temizmarket/eticaret/pkg/response"
)

func (c Category) Response() response.Category {
	return response.Category{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description.String,
		ParentID:    c.ParentID,
		ImageURL:    c.ImageURL.String,
		SortOrder:   c.SortOrder,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt.Time,
		UpdatedAt:   c.UpdatedAt.Time,
	}
}

func (p Product) Response() response.Product {
	var campaignStart, campaignEnd *time.Time
	if p.CampaignStartDate.Valid {
		t := p.CampaignStartDate.Time
		campaignStart = &t
	}
	if p.CampaignEndDate.Valid {
		t := p.CampaignEndDate.Time
		campaignEnd = &t
	}
	return response.Product{
		ID:                p.ID,
		Name:              p.Name,
		Slug:              p.Slug,
		Description:       p.Description.String,
		Price:             decimalFromNumeric(p.Price),
		CampaignPrice:     nullDecimalFromNumeric(p.CampaignPrice),
		CategoryID:        p.CategoryID,
		CategoryName:      p.CategoryName,
		ImageURLs:         p.ImageURLs,
		StockQuantity:     p.StockQuantity,
		MinStockLevel:     p.MinStockLevel,
		Sku:               p.Sku.String,
		Variants:          p.Variants,
		IsActive:          p.IsActive,
		IsFeatured:        p.IsFeatured,
		IsCampaign:        p.IsCampaign,
		CampaignStartDate: campaignStart,
		CampaignEndDate:   campaignEnd,
		Tags:              p.Tags,
		CreatedAt:         p.CreatedAt.Time,
		UpdatedAt:         p.UpdatedAt.Time,
	}
}

func (p Product) Snapshot() cart.Snapshot {
	return cart.Snapshot{
		ID:            p.ID,
		Name:          p.Name,
		Slug:          p.Slug,
		Description:   p.Description.String,
		Price:         decimalFromNumeric(p.Price),
		CampaignPrice: nullDecimalFromNumeric(p.CampaignPrice),
		IsCampaign:    p.IsCampaign,
		ImageURLs:     p.ImageURLs,
	}
}

func (c Customer) Response() response.Customer {
	return response.Customer{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		Email:       c.Email.String,
		Address:     c.Address.String,
		City:        c.City.String,
		District:    c.District.String,
		Notes:       c.Notes.String,
		TotalOrders: c.TotalOrders,
		TotalSpent:  decimalFromNumeric(c.TotalSpent),
		CreatedAt:   c.CreatedAt.Time,
		UpdatedAt:   c.UpdatedAt.Time,
	}
}

func (o Order) Response() (response.Order, error) {
	items := []response.OrderItem{}
	if len(o.Items) > 0 {
		if err := json.Unmarshal(o.Items, &items); err != nil {
			return response.Order{}, fmt.Errorf("failed unmarshaling order items with error=%w", err)
		}
	}
	return response.Order{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		CustomerID:    o.CustomerID,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		Address:       o.Address,
		City:          o.City.String,
		District:      o.District.String,
		TotalAmount:   decimalFromNumeric(o.TotalAmount),
		Status:        o.Status,
		PaymentMethod: o.PaymentMethod,
		Notes:         o.Notes.String,
		AdminNotes:    o.AdminNotes.String,
		Items:         items,
		CreatedAt:     o.CreatedAt.Time,
		UpdatedAt:     o.UpdatedAt.Time,
	}, nil
}

func (s DashboardStats) Response(pending []response.Order) response.DashboardStats {
	return response.DashboardStats{
		TodayOrders:   s.TodayOrders,
		WeekOrders:    s.WeekOrders,
		TodayRevenue:  decimalFromNumeric(s.TodayRevenue),
		WeekRevenue:   decimalFromNumeric(s.WeekRevenue),
		PendingOrders: pending,
	}
}

func (s Setting) Response() response.Setting {
	return response.Setting{
		Key:       s.Key,
		Value:     json.RawMessage(s.Value),
		UpdatedAt: s.UpdatedAt.Time,
	}
}
