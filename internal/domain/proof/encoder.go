// internal/domain/proof/encoder.go
package proof

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store keeps the per-session proof encodings captured before submission
type Store interface {
	Save(ctx context.Context, sessionID string, slot Slot, encoded string) error
	Get(ctx context.Context, sessionID string, slot Slot) (string, error)
	Delete(ctx context.Context, sessionID string, slot Slot) error
	Clear(ctx context.Context, sessionID string) error
}

// ErrEncodingInFlight is returned when a slot already has a conversion running
var ErrEncodingInFlight = fmt.Errorf("an upload is already being processed for this slot")

// Encoder converts a user-selected image into a self-contained data URL
// suitable for embedding directly in the order document. At most one
// encoding runs per session and slot at a time.
type Encoder struct {
	store   Store
	maxSize int64

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewEncoder creates an encoder with the given size cap in bytes
func NewEncoder(store Store, maxSize int64) *Encoder {
	return &Encoder{
		store:    store,
		maxSize:  maxSize,
		inFlight: make(map[string]struct{}),
	}
}

// Encode reads the file, enforces the size cap and stores the encoding for
// the slot. An oversized file yields a field-scoped EncodingError and
// leaves any previously stored encoding untouched; a read failure leaves
// the slot empty.
func (e *Encoder) Encode(ctx context.Context, sessionID string, slot Slot, contentType string, size int64, r io.Reader) error {
	key := sessionID + ":" + string(slot)

	e.mu.Lock()
	if _, busy := e.inFlight[key]; busy {
		e.mu.Unlock()
		return ErrEncodingInFlight
	}
	e.inFlight[key] = struct{}{}
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		delete(e.inFlight, key)
		e.mu.Unlock()
	}()

	if size > e.maxSize {
		return &EncodingError{Slot: slot, Message: "File size too large. Maximum size is 5MB."}
	}

	// The declared size is client-supplied; cap the actual read too
	data, err := io.ReadAll(io.LimitReader(r, e.maxSize+1))
	if err != nil {
		// A failed read leaves the slot empty, not stale
		_ = e.store.Delete(ctx, sessionID, slot)
		return &EncodingError{Slot: slot, Message: "Failed to read image file."}
	}
	if int64(len(data)) > e.maxSize {
		return &EncodingError{Slot: slot, Message: "File size too large. Maximum size is 5MB."}
	}

	if contentType == "" {
		contentType = "image/jpeg"
	}
	encoded := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))

	if err := e.store.Save(ctx, sessionID, slot, encoded); err != nil {
		return fmt.Errorf("failed to store proof encoding: %w", err)
	}

	return nil
}

// Get returns the stored encoding for the slot, empty when none captured
func (e *Encoder) Get(ctx context.Context, sessionID string, slot Slot) (string, error) {
	return e.store.Get(ctx, sessionID, slot)
}

// Remove discards the stored encoding for a single slot
func (e *Encoder) Remove(ctx context.Context, sessionID string, slot Slot) error {
	return e.store.Delete(ctx, sessionID, slot)
}

// Clear discards all proof encodings for the session
func (e *Encoder) Clear(ctx context.Context, sessionID string) error {
	return e.store.Clear(ctx, sessionID)
}

// Pending reports whether any encoding is in flight for the session.
// Submission is blocked while this returns true.
func (e *Encoder) Pending(sessionID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, slot := range []Slot{SlotBankTransfer, SlotCODAdvance} {
		if _, busy := e.inFlight[sessionID+":"+string(slot)]; busy {
			return true
		}
	}
	return false
}

// RedisStore keeps proof encodings in Redis alongside the session cart
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed proof store
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func proofKey(sessionID string, slot Slot) string {
	return fmt.Sprintf("checkout:proof:%s:%s", sessionID, slot)
}

func (s *RedisStore) Save(ctx context.Context, sessionID string, slot Slot, encoded string) error {
	return s.client.Set(ctx, proofKey(sessionID, slot), encoded, s.ttl).Err()
}

func (s *RedisStore) Get(ctx context.Context, sessionID string, slot Slot) (string, error) {
	encoded, err := s.client.Get(ctx, proofKey(sessionID, slot)).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", fmt.Errorf("failed to read proof encoding: %w", err)
	}
	return encoded, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string, slot Slot) error {
	return s.client.Del(ctx, proofKey(sessionID, slot)).Err()
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	keys := []string{
		proofKey(sessionID, SlotBankTransfer),
		proofKey(sessionID, SlotCODAdvance),
	}
	return s.client.Del(ctx, keys...).Err()
}

// MemoryStore is an in-memory proof store used in tests
type MemoryStore struct {
	mu     sync.Mutex
	proofs map[string]string
}

// NewMemoryStore creates an empty in-memory proof store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{proofs: make(map[string]string)}
}

func (s *MemoryStore) Save(ctx context.Context, sessionID string, slot Slot, encoded string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.proofs[proofKey(sessionID, slot)] = encoded
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string, slot Slot) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.proofs[proofKey(sessionID, slot)], nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string, slot Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.proofs, proofKey(sessionID, slot))
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.proofs, proofKey(sessionID, SlotBankTransfer))
	delete(s.proofs, proofKey(sessionID, SlotCODAdvance))
	return nil
}
