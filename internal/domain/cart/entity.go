// internal/domain/cart/entity.go
package cart

import "time"

// Item represents a single cart line as persisted for a guest session.
// Variation, type and size are optional; absence is the empty string.
type Item struct {
	ID        string `json:"id"`
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"` // Whole-unit PKR at time of adding
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
	Variation string `json:"variation,omitempty"`
	Type      string `json:"type,omitempty"`
	Size      string `json:"size,omitempty"`
	Lining    bool   `json:"lining"`
}

// SessionCart represents a guest cart stored in Redis
type SessionCart struct {
	SessionID string    `json:"session_id"`
	Items     []Item    `json:"items"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int   `json:"item_count"`     // Number of unique items
	TotalQuantity int   `json:"total_quantity"` // Sum of all quantities
	SubTotal      int64 `json:"sub_total"`
}

// CalculateTotals sums line quantities and amounts over the given items
func CalculateTotals(items []Item) Totals {
	var totals Totals

	totals.ItemCount = len(items)
	for _, item := range items {
		totals.TotalQuantity += item.Quantity
		totals.SubTotal += item.Price * int64(item.Quantity)
	}

	return totals
}
