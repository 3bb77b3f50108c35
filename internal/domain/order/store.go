// internal/domain/order/store.go
package order

import (
	"context"
	"fmt"
	"sync"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound is returned when no order exists for the given id
var ErrNotFound = fmt.Errorf("order not found")

// ErrPayloadTooLarge signals a storage-imposed document size limit: the
// embedded proof image must be shrunk before resubmitting.
var ErrPayloadTooLarge = fmt.Errorf("order document exceeds the storage size limit")

// Store persists orders. Create must be a single atomic write.
type Store interface {
	Create(ctx context.Context, order *Order) error
	Get(ctx context.Context, orderID string) (*Order, error)
}

// FirestoreStore writes orders to the orders collection
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a Firestore-backed order store
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// Create writes the order document keyed by its client-generated id.
// Create (as opposed to Set) refuses to overwrite, so a duplicate id can
// never clobber an existing order.
func (s *FirestoreStore) Create(ctx context.Context, order *Order) error {
	_, err := s.client.Collection("orders").Doc(order.OrderID).Create(ctx, order)
	if err != nil {
		switch status.Code(err) {
		case codes.ResourceExhausted, codes.InvalidArgument:
			return ErrPayloadTooLarge
		}
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// Get fetches an order by id for the confirmation view
func (s *FirestoreStore) Get(ctx context.Context, orderID string) (*Order, error) {
	doc, err := s.client.Collection("orders").Doc(orderID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}

	var order Order
	if err := doc.DataTo(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order: %w", err)
	}

	return &order, nil
}

// MemoryStore is an in-memory order store used in tests
type MemoryStore struct {
	mu     sync.Mutex
	orders map[string]*Order

	// FailWith, when set, makes Create return that error
	FailWith error
}

// NewMemoryStore creates an empty in-memory order store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{orders: make(map[string]*Order)}
}

func (s *MemoryStore) Create(ctx context.Context, order *Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	if _, exists := s.orders[order.OrderID]; exists {
		return fmt.Errorf("order %s already exists", order.OrderID)
	}
	stored := *order
	s.orders[order.OrderID] = &stored
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, orderID string) (*Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, exists := s.orders[orderID]
	if !exists {
		return nil, ErrNotFound
	}
	found := *order
	return &found, nil
}

// Len returns the number of stored orders
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}
