package cart

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateTotals(t *testing.T) {
	tests := []struct {
		name     string
		items    []Item
		expected Totals
	}{
		{
			name:     "empty cart",
			items:    nil,
			expected: Totals{},
		},
		{
			name: "mixed quantities",
			items: []Item{
				{Price: 1000, Quantity: 2},
				{Price: 350, Quantity: 1},
			},
			expected: Totals{ItemCount: 2, TotalQuantity: 3, SubTotal: 2350},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateTotals(tt.items))
		})
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	items, err := store.Read(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, items)

	written := []Item{{ID: "p1", Title: "Pearl Set", Price: 1200, Quantity: 1}}
	require.NoError(t, store.Write(ctx, "s1", written))

	items, err = store.Read(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, written, items)

	// The store hands out copies, not aliases
	items[0].Quantity = 99
	again, err := store.Read(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, again[0].Quantity)

	require.NoError(t, store.Clear(ctx, "s1"))
	items, err = store.Read(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, items)
}
