// internal/domain/order/entity.go
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status represents the order status. This service only ever writes
// "processing"; later transitions belong to the order-management backoffice.
type Status string

const (
	StatusProcessing Status = "processing"
	StatusConfirmed  Status = "confirmed"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Order is the document written to the orders collection. It is immutable
// once written: every item carries a price snapshot so later catalog
// changes cannot retroactively alter a placed order.
type Order struct {
	OrderID            string          `firestore:"orderId" json:"order_id"`
	CustomerType       string          `firestore:"customerType" json:"customer_type"`
	CustomerEmail      string          `firestore:"customerEmail" json:"customer_email"`
	Items              []Item          `firestore:"items" json:"items"`
	Shipping           string          `firestore:"shipping" json:"shipping"`
	Payment            string          `firestore:"payment" json:"payment"`
	ShippingAddress    ShippingAddress `firestore:"shippingAddress" json:"shipping_address"`
	PromoCode          string          `firestore:"promoCode" json:"promo_code"`
	Notes              string          `firestore:"notes" json:"notes"`
	Subtotal           int64           `firestore:"subtotal" json:"subtotal"`
	ShippingCost       int64           `firestore:"shippingCost" json:"shipping_cost"`
	Total              int64           `firestore:"total" json:"total"`
	CreatedAt          time.Time       `firestore:"createdAt" json:"created_at"`
	Status             Status          `firestore:"status" json:"status"`
	BankTransferProof  string          `firestore:"bankTransferProofBase64,omitempty" json:"bank_transfer_proof,omitempty"`
	CODDeliveryProof   string          `firestore:"codDeliveryProofBase64,omitempty" json:"cod_delivery_proof,omitempty"`
	CODAdvanceRequired bool            `firestore:"codAdvanceRequired" json:"cod_advance_required"`
	CODAdvanceAmount   int64           `firestore:"codAdvanceAmount" json:"cod_advance_amount"`
}

// Item is a cart line snapshot frozen at the moment of order creation
type Item struct {
	ProductID string `firestore:"productId" json:"product_id"`
	Title     string `firestore:"title" json:"title"`
	Quantity  int    `firestore:"quantity" json:"quantity"`
	Price     int64  `firestore:"price" json:"price"`
	Image     string `firestore:"image" json:"image"`
	Variation string `firestore:"variation,omitempty" json:"variation,omitempty"`
	Type      string `firestore:"type,omitempty" json:"type,omitempty"`
	Size      string `firestore:"size,omitempty" json:"size,omitempty"`
	Lining    bool   `firestore:"lining" json:"lining"`
}

// LineTotal returns the snapshot price multiplied by quantity
func (i Item) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}

// ShippingAddress is the destination captured from the checkout form
type ShippingAddress struct {
	FullName   string `firestore:"fullName" json:"full_name"`
	Phone      string `firestore:"phone" json:"phone"`
	Address    string `firestore:"address" json:"address"`
	City       string `firestore:"city" json:"city"`
	PostalCode string `firestore:"postalCode" json:"postal_code"`
	Region     string `firestore:"region" json:"region"`
	Country    string `firestore:"country" json:"country"`
}

// RemainingAtDelivery returns what the courier collects on a COD order
func (o *Order) RemainingAtDelivery() int64 {
	if o.CODAdvanceRequired {
		return o.Total - o.CODAdvanceAmount
	}
	return o.Total
}

// NewOrderID generates a client-side order identifier, unique with
// overwhelming probability: timestamp plus a random suffix. No external
// uniqueness check is performed.
func NewOrderID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("ORDER_%d_%s", time.Now().UnixMilli(), suffix)
}
