package cart

import (
	"github.com/shopspring/decimal"
)

// EffectivePrice is the price totals are computed from: the campaign price
// when the campaign flag is set and a positive campaign price exists, else
// the list price.
func EffectivePrice(p Snapshot) decimal.Decimal {
	if p.IsCampaign && p.CampaignPrice.Valid && p.CampaignPrice.Decimal.IsPositive() {
		return p.CampaignPrice.Decimal
	}
	return p.Price
}

// FormatPrice renders an amount for display. Single fixed currency.
func FormatPrice(amount decimal.Decimal) string {
	return "₺" + amount.StringFixed(2)
}
