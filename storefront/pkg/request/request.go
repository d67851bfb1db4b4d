package request

import "github.com/google/uuid"

type AddCartItem struct {
	ProductID       uuid.UUID `json:"productId"        validate:"required"`
	Quantity        int       `json:"quantity"         validate:"gte=0"`
	SelectedVariant string    `json:"selectedVariant"`
}

type UpdateCartItem struct {
	Quantity int `json:"quantity"`
}

type Checkout struct {
	CustomerName  string `json:"customer_name"  validate:"required,min=2,max=100"`
	CustomerPhone string `json:"customer_phone" validate:"required,e164"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
	Address       string `json:"address"        validate:"required,min=10"`
	City          string `json:"city"           validate:"omitempty,max=50"`
	District      string `json:"district"       validate:"omitempty,max=50"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=cash_on_delivery bank_transfer credit_card"`
	Notes         string `json:"notes"          validate:"max=500"`
}
