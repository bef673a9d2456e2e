package journal

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperdesk/paperdesk/store"
)

func TestCSVJournal(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ticksPath := filepath.Join(dir, "ticks.csv")
	ordersPath := filepath.Join(dir, "orders.csv")

	j, err := NewCSV(ticksPath, ordersPath)
	require.NoError(t, err)

	now := time.Date(2026, 8, 29, 10, 45, 0, 0, time.UTC)
	require.NoError(t, j.RecordTick(TickRecord{
		Session:       "sess-1",
		Time:          now,
		Kind:          KindStock,
		Symbol:        "RELIANCE",
		Price:         2500.00,
		Change:        43.25,
		ChangePercent: 1.76,
	}))
	require.NoError(t, j.RecordOrder(NewOrderRecord("sess-1", store.Order{
		ID:       "X1",
		Symbol:   "TCS",
		Type:     store.Sell,
		Quantity: 5,
		Price:    3500,
		Status:   store.StatusComplete,
		Time:     "10:00 AM",
	})))
	require.NoError(t, j.Close())

	ticks := readCSV(t, ticksPath)
	require.Len(t, ticks, 2) // header + one record
	assert.Equal(t, []string{"session", "time", "kind", "symbol", "price", "change", "change_percent"}, ticks[0])
	assert.Equal(t, "sess-1", ticks[1][0])
	assert.Equal(t, now.Format(time.RFC3339), ticks[1][1])
	assert.Equal(t, "STOCK", ticks[1][2])
	assert.Equal(t, "RELIANCE", ticks[1][3])
	assert.Equal(t, "2500.000000", ticks[1][4])

	orders := readCSV(t, ordersPath)
	require.Len(t, orders, 2)
	assert.Equal(t, []string{"sess-1", "X1", "TCS", "SELL", "5", "3500.000000", "COMPLETE", "10:00 AM"}, orders[1])
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
