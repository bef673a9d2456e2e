package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionsTotalPnL(t *testing.T) {
	t.Parallel()

	assert.Zero(t, Positions(nil).TotalPnL())

	ps := DefaultSeed().Positions
	assert.InDelta(t, 2837.50-802.50+1630.00, ps.TotalPnL(), 1e-9)
}

func TestHoldingsTotals(t *testing.T) {
	t.Parallel()

	hs := DefaultSeed().Holdings

	inv := 118500.00 + 141750.00 + 116000.00
	cur := 123393.75 + 148125.00 + 119740.00

	assert.InDelta(t, inv, hs.TotalInvestment(), 1e-9)
	assert.InDelta(t, cur, hs.TotalCurrentValue(), 1e-9)
	assert.InDelta(t, cur-inv, hs.TotalPnL(), 1e-9)
	assert.InDelta(t, (cur-inv)/inv*100, hs.TotalPnLPercent(), 1e-9)

	var empty Holdings
	assert.Zero(t, empty.TotalPnLPercent())
}

func TestFundsUsedPercent(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 75.0, Funds{Used: 750000, Total: 1000000}.UsedPercent(), 1e-9)
	assert.Zero(t, Funds{}.UsedPercent())
}

func TestOrderMargin(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 10*2500.0*0.2, OrderMargin(10, 2500), 1e-9)
	assert.Zero(t, OrderMargin(0, 2500))
}
