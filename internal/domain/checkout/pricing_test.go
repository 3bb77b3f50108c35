package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/your-org/storefront-backend/internal/domain/cart"
)

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name     string
		items    []cart.Item
		expected int64
	}{
		{
			name:     "empty cart",
			items:    nil,
			expected: 0,
		},
		{
			name: "single line",
			items: []cart.Item{
				{Price: 1200, Quantity: 1},
			},
			expected: 1200,
		},
		{
			name: "multiple lines with quantities",
			items: []cart.Item{
				{Price: 1000, Quantity: 2},
				{Price: 350, Quantity: 3},
			},
			expected: 3050,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Subtotal(tt.items))
		})
	}
}

func TestBaseShippingCost(t *testing.T) {
	tests := []struct {
		name     string
		city     string
		expected int64
	}{
		{name: "sahiwal lowercase", city: "sahiwal", expected: 150},
		{name: "sahiwal mixed case", city: "Sahiwal", expected: 150},
		{name: "sahiwal with whitespace", city: "  SAHIWAL  ", expected: 150},
		{name: "other city", city: "Lahore", expected: 250},
		{name: "empty city", city: "", expected: 250},
		{name: "city containing sahiwal", city: "Sahiwal Road, Okara", expected: 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BaseShippingCost(tt.city))
		})
	}
}

func TestShippingCost(t *testing.T) {
	tests := []struct {
		name     string
		subtotal int64
		base     int64
		expected int64
	}{
		{name: "below threshold pays base", subtotal: 2499, base: 250, expected: 250},
		{name: "at threshold ships free", subtotal: 2500, base: 250, expected: 0},
		{name: "above threshold ships free", subtotal: 9000, base: 150, expected: 0},
		{name: "below threshold sahiwal", subtotal: 1000, base: 150, expected: 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShippingCost(tt.subtotal, tt.base))
		})
	}
}

func TestAmountForFreeShipping(t *testing.T) {
	assert.Equal(t, int64(500), AmountForFreeShipping(2000))
	assert.Equal(t, int64(0), AmountForFreeShipping(2500))
	assert.Equal(t, int64(0), AmountForFreeShipping(5000))
	assert.Equal(t, int64(2500), AmountForFreeShipping(0))
}

func TestIsAdvanceRequired(t *testing.T) {
	tests := []struct {
		name         string
		method       PaymentMethod
		shippingCost int64
		expected     bool
	}{
		{name: "cod with default rate", method: PaymentCashOnDelivery, shippingCost: 250, expected: true},
		{name: "cod with sahiwal rate", method: PaymentCashOnDelivery, shippingCost: 150, expected: true},
		{name: "cod with free shipping", method: PaymentCashOnDelivery, shippingCost: 0, expected: false},
		{name: "online payment never requires advance", method: PaymentOnline, shippingCost: 250, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsAdvanceRequired(tt.method, tt.shippingCost))
		})
	}
}

func TestTotal(t *testing.T) {
	assert.Equal(t, int64(2150), Total(2000, 150))
	assert.Equal(t, int64(3000), Total(3000, 0))
}
