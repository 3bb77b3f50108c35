// internal/domain/discount/service.go
package discount

import (
	"context"
	"sort"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/sirupsen/logrus"
)

// Service caches the live discounts collection in memory and answers
// effective-discount lookups for the catalog and checkout layers.
type Service struct {
	mu      sync.RWMutex
	records []Record
	logger  *logrus.Logger
}

// NewService creates a discount service with an empty cache
func NewService(logger *logrus.Logger) *Service {
	return &Service{logger: logger}
}

// Replace swaps the cached records. Records are kept sorted by id so that
// lookups are deterministic: when several live discounts name the same
// product, the lowest record id wins.
func (s *Service) Replace(records []Record) {
	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID < sorted[j].ID
	})

	s.mu.Lock()
	s.records = sorted
	s.mu.Unlock()
}

// EffectiveFor returns the discount in effect for the product at the given
// instant, or nil when none applies. No stacking: only one record applies.
func (s *Service) EffectiveFor(productID string, now time.Time) *Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.records {
		if s.records[i].AppliesTo(productID) && s.records[i].EffectiveAt(now) {
			record := s.records[i]
			return &record
		}
	}
	return nil
}

// Records returns a snapshot of the cached records
func (s *Service) Records() []Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]Record, len(s.records))
	copy(records, s.records)
	return records
}

// Watch subscribes to the discounts collection and refreshes the cache on
// every change. It blocks until the context is cancelled.
func (s *Service) Watch(ctx context.Context, client *firestore.Client) {
	for {
		if err := s.watchOnce(ctx, client); err != nil {
			if ctx.Err() != nil {
				return
			}
			s.logger.WithError(err).Warn("Discount subscription interrupted, retrying")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(5 * time.Second):
		}
	}
}

func (s *Service) watchOnce(ctx context.Context, client *firestore.Client) error {
	snapshots := client.Collection("discounts").Snapshots(ctx)
	defer snapshots.Stop()

	for {
		snap, err := snapshots.Next()
		if err != nil {
			return err
		}

		docs, err := snap.Documents.GetAll()
		if err != nil {
			return err
		}

		records := make([]Record, 0, len(docs))
		for _, doc := range docs {
			var record Record
			if err := doc.DataTo(&record); err != nil {
				s.logger.WithError(err).WithField("discount_id", doc.Ref.ID).Warn("Skipping malformed discount record")
				continue
			}
			record.ID = doc.Ref.ID
			records = append(records, record)
		}

		s.Replace(records)
		s.logger.WithField("count", len(records)).Debug("Discount cache refreshed")
	}
}
