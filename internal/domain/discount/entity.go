// internal/domain/discount/entity.go
package discount

import "time"

// Record represents a discount document from the discounts collection
type Record struct {
	ID                 string    `firestore:"-" json:"id"`
	ProductIDs         []string  `firestore:"productIds" json:"product_ids"`
	DiscountPercentage int       `firestore:"discountPercentage" json:"discount_percentage"`
	IsActive           bool      `firestore:"isActive" json:"is_active"`
	StartDate          time.Time `firestore:"startDate" json:"start_date"`
	EndDate            time.Time `firestore:"endDate" json:"end_date"`
}

// EffectiveAt reports whether the record is live at the given instant
func (r *Record) EffectiveAt(now time.Time) bool {
	if !r.IsActive {
		return false
	}
	return !now.Before(r.StartDate) && !now.After(r.EndDate)
}

// AppliesTo reports whether the record names the given product
func (r *Record) AppliesTo(productID string) bool {
	for _, id := range r.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// Apply returns the discounted price, rounded to the nearest whole unit
func (r *Record) Apply(price int64) int64 {
	discounted := float64(price) * (1 - float64(r.DiscountPercentage)/100)
	return int64(discounted + 0.5)
}
