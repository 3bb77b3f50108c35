// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the cart persistence contract. Checkout reads the cart once at
// the start of the flow and clears it only after a successful order write.
type Store interface {
	Read(ctx context.Context, sessionID string) ([]Item, error)
	Write(ctx context.Context, sessionID string, items []Item) error
	Clear(ctx context.Context, sessionID string) error
}

const sessionTTL = 24 * time.Hour

// RedisStore persists guest carts as JSON-encoded session documents in Redis
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed cart store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// Read returns the items of the session cart, or an empty slice if none exists
func (s *RedisStore) Read(ctx context.Context, sessionID string) ([]Item, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required for guest cart")
	}

	data, err := s.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return []Item{}, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}

	var sessionCart SessionCart
	if err := json.Unmarshal([]byte(data), &sessionCart); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}

	return sessionCart.Items, nil
}

// Write replaces the session cart with the given items
func (s *RedisStore) Write(ctx context.Context, sessionID string, items []Item) error {
	if sessionID == "" {
		return fmt.Errorf("session ID required for guest cart")
	}

	now := time.Now().UTC()
	sessionCart := SessionCart{
		SessionID: sessionID,
		Items:     items,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}

	data, err := json.Marshal(&sessionCart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	return s.client.Set(ctx, cartKey(sessionID), data, sessionTTL).Err()
}

// Clear removes the session cart
func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("session ID required for guest cart")
	}
	return s.client.Del(ctx, cartKey(sessionID)).Err()
}

// MemoryStore is an in-memory Store used in tests
type MemoryStore struct {
	mu    sync.Mutex
	carts map[string][]Item
}

// NewMemoryStore creates an empty in-memory cart store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string][]Item)}
}

func (s *MemoryStore) Read(ctx context.Context, sessionID string) ([]Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]Item, len(s.carts[sessionID]))
	copy(items, s.carts[sessionID])
	return items, nil
}

func (s *MemoryStore) Write(ctx context.Context, sessionID string, items []Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]Item, len(items))
	copy(stored, items)
	s.carts[sessionID] = stored
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sessionID)
	return nil
}
