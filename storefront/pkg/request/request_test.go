package request

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestCheckoutValidation(t *testing.T) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	tests := []struct {
		name    string
		payload Checkout
		wantErr bool
	}{
		{
			name: "given only name phone address and payment method should pass",
			payload: Checkout{
				CustomerName:  "Ayşe Yılmaz",
				CustomerPhone: "+905551234567",
				Address:       "Atatürk Cad. No: 1 Daire 2",
				PaymentMethod: "cash_on_delivery",
			},
			wantErr: false,
		},
		{
			name: "given city and district should pass",
			payload: Checkout{
				CustomerName:  "Ayşe Yılmaz",
				CustomerPhone: "+905551234567",
				Address:       "Atatürk Cad. No: 1 Daire 2",
				City:          "İstanbul",
				District:      "Kadıköy",
				PaymentMethod: "bank_transfer",
			},
			wantErr: false,
		},
		{
			name: "given missing phone should fail",
			payload: Checkout{
				CustomerName:  "Ayşe Yılmaz",
				Address:       "Atatürk Cad. No: 1 Daire 2",
				PaymentMethod: "cash_on_delivery",
			},
			wantErr: true,
		},
		{
			name: "given unknown payment method should fail",
			payload: Checkout{
				CustomerName:  "Ayşe Yılmaz",
				CustomerPhone: "+905551234567",
				Address:       "Atatürk Cad. No: 1 Daire 2",
				PaymentMethod: "bitcoin",
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.payload)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
