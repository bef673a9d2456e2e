package sim

import (
	"context"
	"math"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperdesk/paperdesk/journal"
	"github.com/paperdesk/paperdesk/store"
)

func testStore(stocks int) *store.Store {
	seed := store.DefaultSeed()
	seed.Watchlist = seed.Watchlist[:stocks]
	return store.New(store.WithSeed(seed))
}

func TestTickPerturbsOneStockAndOneIndex(t *testing.T) {
	t.Parallel()

	st := testStore(1)
	before := st.Snapshot()
	oldPrice := before.Watchlist[0].Price

	s := New(st, WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, s.Tick())

	after := st.Snapshot()

	got := after.Watchlist[0]
	assert.NotEqual(t, oldPrice, got.Price)
	assert.LessOrEqual(t, math.Abs(got.Price-oldPrice), oldPrice*DefaultStockRange+1e-9)
	assert.InDelta(t, got.Price-oldPrice, got.Change, 1e-9)

	changed := 0
	for i, ix := range after.MarketIndices {
		old := before.MarketIndices[i]
		if ix.Value != old.Value {
			changed++
			assert.LessOrEqual(t, math.Abs(ix.Value-old.Value), old.Value*DefaultIndexRange+1e-9)
		}
	}
	assert.Equal(t, 1, changed)

	// Positions, holdings, orders and funds are untouched by ticks.
	assert.Equal(t, before.Positions, after.Positions)
	assert.Equal(t, before.Holdings, after.Holdings)
	assert.Equal(t, before.Orders, after.Orders)
	assert.Equal(t, before.Funds, after.Funds)
}

func TestTickSkipsEmptyCollections(t *testing.T) {
	t.Parallel()

	st := store.New(store.WithSeed(store.Seed{}))
	before := st.Snapshot().Version

	s := New(st, WithRand(rand.New(rand.NewSource(1))))
	require.NoError(t, s.Tick())

	assert.Equal(t, before, st.Snapshot().Version)
}

func TestTickActsOnLiveState(t *testing.T) {
	t.Parallel()

	// The watchlist is empty when the simulator is built; entries added
	// afterwards must still receive ticks.
	seed := store.DefaultSeed()
	seed.Watchlist = nil
	st := store.New(store.WithSeed(seed))

	s := New(st, WithRand(rand.New(rand.NewSource(7))))
	require.NoError(t, s.Tick())

	st.AddToWatchlist(store.Stock{Symbol: "LATE", Name: "Late Arrival", Price: 100})
	require.NoError(t, s.Tick())

	got := st.Watchlist()[0]
	assert.NotEqual(t, 100.0, got.Price)
	assert.NotZero(t, got.Change)
}

func TestTickTargetsSurvivorsAfterRemoval(t *testing.T) {
	t.Parallel()

	st := testStore(2)
	s := New(st, WithRand(rand.New(rand.NewSource(3))))

	st.RemoveFromWatchlist("RELIANCE")

	for i := 0; i < 20; i++ {
		require.NoError(t, s.Tick())
	}

	watchlist := st.Watchlist()
	require.Len(t, watchlist, 1)
	assert.Equal(t, "TCS", watchlist[0].Symbol)
	assert.NotEqual(t, 3587.90, watchlist[0].Price)
}

func TestStartStop(t *testing.T) {
	t.Parallel()

	st := testStore(3)
	s := New(st,
		WithInterval(5*time.Millisecond),
		WithRand(rand.New(rand.NewSource(9))),
	)

	require.NoError(t, s.Start(context.Background()))
	assert.Error(t, s.Start(context.Background()), "second start must fail")

	before := st.Snapshot().Version
	assert.Eventually(t, func() bool {
		return st.Snapshot().Version > before
	}, 2*time.Second, time.Millisecond)

	s.Stop()
	after := st.Snapshot().Version

	// No further ticks land once Stop has returned.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, st.Snapshot().Version)

	// Stop again is a no-op; the simulator can be restarted.
	s.Stop()
	require.NoError(t, s.Start(context.Background()))
	s.Stop()
}

func TestStopViaContext(t *testing.T) {
	t.Parallel()

	st := testStore(1)
	s := New(st, WithInterval(5*time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, s.Start(ctx))
	cancel()
	s.Stop()

	after := st.Snapshot().Version
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, st.Snapshot().Version)
}

type memJournal struct {
	mu    sync.Mutex
	ticks []journal.TickRecord
}

func (m *memJournal) RecordTick(t journal.TickRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ticks = append(m.ticks, t)
	return nil
}

func (m *memJournal) RecordOrder(journal.OrderRecord) error { return nil }
func (m *memJournal) Close() error                          { return nil }

func TestTickJournals(t *testing.T) {
	t.Parallel()

	st := testStore(1)
	j := &memJournal{}
	s := New(st,
		WithRand(rand.New(rand.NewSource(5))),
		WithJournal(j, "sess-1"),
	)

	require.NoError(t, s.Tick())

	require.Len(t, j.ticks, 2)
	assert.Equal(t, journal.KindStock, j.ticks[0].Kind)
	assert.Equal(t, "RELIANCE", j.ticks[0].Symbol)
	assert.Equal(t, journal.KindIndex, j.ticks[1].Kind)
	for _, rec := range j.ticks {
		assert.Equal(t, "sess-1", rec.Session)
	}

	// Journaled values match what landed in the store.
	got := st.Watchlist()[0]
	assert.Equal(t, got.Price, j.ticks[0].Price)
	assert.Equal(t, got.Change, j.ticks[0].Change)
	assert.InDelta(t, got.ChangePercent, j.ticks[0].ChangePercent, 1e-9)
}
