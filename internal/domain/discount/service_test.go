package discount

import (
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewService(logger)
}

func window(now time.Time) (time.Time, time.Time) {
	return now.Add(-time.Hour), now.Add(time.Hour)
}

func TestEffectiveAt(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	start, end := window(now)

	tests := []struct {
		name     string
		record   Record
		expected bool
	}{
		{
			name:     "active inside window",
			record:   Record{IsActive: true, StartDate: start, EndDate: end},
			expected: true,
		},
		{
			name:     "inactive inside window",
			record:   Record{IsActive: false, StartDate: start, EndDate: end},
			expected: false,
		},
		{
			name:     "before start",
			record:   Record{IsActive: true, StartDate: now.Add(time.Minute), EndDate: end},
			expected: false,
		},
		{
			name:     "after end",
			record:   Record{IsActive: true, StartDate: start, EndDate: now.Add(-time.Minute)},
			expected: false,
		},
		{
			name:     "boundaries inclusive",
			record:   Record{IsActive: true, StartDate: now, EndDate: now},
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.EffectiveAt(now))
		})
	}
}

func TestApplyRounding(t *testing.T) {
	tests := []struct {
		price    int64
		pct      int
		expected int64
	}{
		{price: 1000, pct: 15, expected: 850},
		{price: 100, pct: 33, expected: 67},
		{price: 999, pct: 10, expected: 899}, // 899.1 rounds down
		{price: 995, pct: 50, expected: 498}, // 497.5 rounds up
		{price: 1000, pct: 0, expected: 1000},
		{price: 1000, pct: 100, expected: 0},
	}

	for _, tt := range tests {
		record := Record{DiscountPercentage: tt.pct}
		assert.Equal(t, tt.expected, record.Apply(tt.price), "price %d at %d%%", tt.price, tt.pct)
	}
}

func TestEffectiveForLowestIDWins(t *testing.T) {
	svc := newTestService()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	start, end := window(now)

	// Deliberately unsorted: the cache must order by id
	svc.Replace([]Record{
		{ID: "d9", ProductIDs: []string{"p1"}, DiscountPercentage: 40, IsActive: true, StartDate: start, EndDate: end},
		{ID: "d2", ProductIDs: []string{"p1"}, DiscountPercentage: 10, IsActive: true, StartDate: start, EndDate: end},
		{ID: "d5", ProductIDs: []string{"p1"}, DiscountPercentage: 25, IsActive: true, StartDate: start, EndDate: end},
	})

	record := svc.EffectiveFor("p1", now)
	require.NotNil(t, record)
	assert.Equal(t, "d2", record.ID)
	assert.Equal(t, 10, record.DiscountPercentage)
}

func TestEffectiveForSkipsIneffectiveRecords(t *testing.T) {
	svc := newTestService()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	start, end := window(now)

	svc.Replace([]Record{
		{ID: "d1", ProductIDs: []string{"p1"}, DiscountPercentage: 50, IsActive: false, StartDate: start, EndDate: end},
		{ID: "d2", ProductIDs: []string{"p2"}, DiscountPercentage: 20, IsActive: true, StartDate: start, EndDate: end},
		{ID: "d3", ProductIDs: []string{"p1"}, DiscountPercentage: 15, IsActive: true, StartDate: start, EndDate: end},
	})

	record := svc.EffectiveFor("p1", now)
	require.NotNil(t, record)
	assert.Equal(t, "d3", record.ID)

	assert.Nil(t, svc.EffectiveFor("p3", now))
}

func TestReplaceSwapsCache(t *testing.T) {
	svc := newTestService()
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	start, end := window(now)

	svc.Replace([]Record{
		{ID: "d1", ProductIDs: []string{"p1"}, DiscountPercentage: 10, IsActive: true, StartDate: start, EndDate: end},
	})
	require.NotNil(t, svc.EffectiveFor("p1", now))

	svc.Replace(nil)
	assert.Nil(t, svc.EffectiveFor("p1", now))
	assert.Empty(t, svc.Records())
}
