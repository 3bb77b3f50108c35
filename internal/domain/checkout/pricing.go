// internal/domain/checkout/pricing.go
package checkout

import (
	"strings"

	"github.com/your-org/storefront-backend/internal/domain/cart"
)

// PaymentMethod identifies how the customer pays
type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "Cash on Delivery"
	PaymentOnline         PaymentMethod = "Online Payment"
)

// StandardDelivery is the single shipping option offered at checkout
const StandardDelivery = "Standard Delivery"

// Pricing rules, whole-unit PKR
const (
	FreeShippingThreshold = 2500
	DefaultShippingRate   = 250
	SahiwalShippingRate   = 150
	CODAdvanceAmount      = 250
)

// Subtotal sums price times quantity over the cart. Empty cart yields 0.
func Subtotal(items []cart.Item) int64 {
	var subtotal int64
	for _, item := range items {
		subtotal += item.Price * int64(item.Quantity)
	}
	return subtotal
}

// BaseShippingCost returns the city-dependent flat rate. Sahiwal is the
// only city with a reduced rate; matching is case- and whitespace-insensitive.
func BaseShippingCost(city string) int64 {
	if strings.ToLower(strings.TrimSpace(city)) == "sahiwal" {
		return SahiwalShippingRate
	}
	return DefaultShippingRate
}

// ShippingCost waives the base rate once the subtotal reaches the
// free-shipping threshold
func ShippingCost(subtotal, baseShippingCost int64) int64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return baseShippingCost
}

// AmountForFreeShipping returns how much more the customer must add to
// qualify for free shipping
func AmountForFreeShipping(subtotal int64) int64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FreeShippingThreshold - subtotal
}

// IsAdvanceRequired reports whether a COD order needs the Rs 250 delivery
// charges paid up front. Free-shipping orders never require an advance, and
// the rule only covers base rates up to the advance amount itself.
func IsAdvanceRequired(method PaymentMethod, shippingCost int64) bool {
	return method == PaymentCashOnDelivery && shippingCost > 0 && shippingCost <= CODAdvanceAmount
}

// Total is the amount due for the order
func Total(subtotal, shippingCost int64) int64 {
	return subtotal + shippingCost
}
