package order

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	id := NewOrderID()

	parts := strings.Split(id, "_")
	require.Len(t, parts, 3)
	assert.Equal(t, "ORDER", parts[0])
	assert.Len(t, parts[2], 9)

	assert.NotEqual(t, id, NewOrderID())
}

func TestRemainingAtDelivery(t *testing.T) {
	withAdvance := &Order{Total: 2150, CODAdvanceRequired: true, CODAdvanceAmount: 250}
	assert.Equal(t, int64(1900), withAdvance.RemainingAtDelivery())

	withoutAdvance := &Order{Total: 3000}
	assert.Equal(t, int64(3000), withoutAdvance.RemainingAtDelivery())
}

func TestItemLineTotal(t *testing.T) {
	item := Item{Price: 1200, Quantity: 3}
	assert.Equal(t, int64(3600), item.LineTotal())
}

func TestMemoryStoreRefusesDuplicateIDs(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	first := &Order{OrderID: "ORDER_1_abc", Total: 100}
	require.NoError(t, store.Create(ctx, first))
	assert.Error(t, store.Create(ctx, &Order{OrderID: "ORDER_1_abc"}))
	assert.Equal(t, 1, store.Len())

	found, err := store.Get(ctx, "ORDER_1_abc")
	require.NoError(t, err)
	assert.Equal(t, int64(100), found.Total)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
