package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Parallel()

	o := NewOrder("TCS", Sell, 5, 3500, StatusComplete)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, "TCS", o.Symbol)
	assert.Equal(t, Sell, o.Type)
	assert.Equal(t, 5, o.Quantity)
	assert.Equal(t, 3500.0, o.Price)
	assert.Equal(t, StatusComplete, o.Status)
	assert.NotEmpty(t, o.Time)
}

func TestNewOrderIDsAreUnique(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		o := NewOrder("INFY", Buy, 1, 1456.30, StatusPending)
		require.False(t, seen[o.ID], "duplicate id %s", o.ID)
		seen[o.ID] = true
	}
}
