// internal/domain/order/service.go
package order

import (
	"context"
)

// Service handles order reads for the confirmation view
type Service struct {
	store Store
}

// NewService creates a new order service
func NewService(store Store) *Service {
	return &Service{store: store}
}

// GetOrder retrieves a placed order by its client-generated id
func (s *Service) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	return s.store.Get(ctx, orderID)
}
