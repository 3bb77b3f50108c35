// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/your-org/storefront-backend/internal/domain/discount"
)

// Source supplies the product collection
type Source interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
}

// Service handles catalog browsing with live discount annotation
type Service struct {
	source    Source
	discounts *discount.Service
}

// NewService creates a new catalog service
func NewService(source Source, discounts *discount.Service) *Service {
	return &Service{
		source:    source,
		discounts: discounts,
	}
}

// Filter represents product grid filters
type Filter struct {
	Category  string   `form:"category"`
	Sizes     []string `form:"size"`
	Colors    []string `form:"color"`
	Available *bool    `form:"available"`
	MinPrice  int64    `form:"min_price"`
	MaxPrice  int64    `form:"max_price"`
	Search    string   `form:"search"`
}

// ListProducts returns the filtered product grid with effective discounts applied
func (s *Service) ListProducts(ctx context.Context, filter Filter) ([]PricedProduct, error) {
	products, err := s.source.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	now := time.Now().UTC()
	result := make([]PricedProduct, 0, len(products))
	for _, product := range products {
		if !s.matches(&product, &filter) {
			continue
		}
		result = append(result, s.price(product, now))
	}

	return result, nil
}

// GetProduct returns a single product with its effective discount applied
func (s *Service) GetProduct(ctx context.Context, id string) (*PricedProduct, error) {
	product, err := s.source.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	priced := s.price(*product, time.Now().UTC())
	return &priced, nil
}

func (s *Service) price(product Product, now time.Time) PricedProduct {
	priced := PricedProduct{
		Product:         product,
		DiscountedPrice: product.Price,
	}

	if record := s.discounts.EffectiveFor(product.ID, now); record != nil {
		priced.DiscountPercentage = record.DiscountPercentage
		priced.DiscountedPrice = record.Apply(product.Price)
		priced.Savings = product.Price - priced.DiscountedPrice
	}

	return priced
}

func (s *Service) matches(product *Product, filter *Filter) bool {
	if filter.Category != "" && product.Category != filter.Category {
		return false
	}

	if len(filter.Sizes) > 0 && !contains(filter.Sizes, product.Size) {
		return false
	}

	if len(filter.Colors) > 0 && !contains(filter.Colors, product.Color) {
		return false
	}

	if filter.Available != nil && product.Available != *filter.Available {
		return false
	}

	if product.Price < filter.MinPrice {
		return false
	}
	if filter.MaxPrice > 0 && product.Price > filter.MaxPrice {
		return false
	}

	if filter.Search != "" {
		needle := strings.ToLower(strings.TrimSpace(filter.Search))
		title := strings.ToLower(product.Title)
		description := strings.ToLower(product.Description)
		if !strings.Contains(title, needle) && !strings.Contains(description, needle) {
			return false
		}
	}

	return true
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// FirestoreSource reads products from the products collection
type FirestoreSource struct {
	client *firestore.Client
}

// NewFirestoreSource creates a Firestore-backed product source
func NewFirestoreSource(client *firestore.Client) *FirestoreSource {
	return &FirestoreSource{client: client}
}

// ListProducts fetches the full products collection
func (s *FirestoreSource) ListProducts(ctx context.Context) ([]Product, error) {
	docs, err := s.client.Collection("products").Documents(ctx).GetAll()
	if err != nil {
		return nil, err
	}

	products := make([]Product, 0, len(docs))
	for _, doc := range docs {
		var product Product
		if err := doc.DataTo(&product); err != nil {
			continue // Skip malformed documents
		}
		product.ID = doc.Ref.ID
		products = append(products, product)
	}

	return products, nil
}

// GetProduct fetches a single product by document id
func (s *FirestoreSource) GetProduct(ctx context.Context, id string) (*Product, error) {
	doc, err := s.client.Collection("products").Doc(id).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("product not found")
	}

	var product Product
	if err := doc.DataTo(&product); err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}
	product.ID = doc.Ref.ID

	return &product, nil
}
