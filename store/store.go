// Package store is the single authoritative state container for the trading
// desk. All domain state lives here; consumers read immutable snapshots and
// subscribe to changes, and only the operations on Store mutate anything.
//
// Snapshots are copy-on-write: every mutation builds a fresh Snapshot with
// new backing slices for whatever changed, bumps the version and publishes
// it atomically. Subscribers never observe a half-applied update.
package store

import (
	"strings"
	"sync"
	"sync/atomic"
)

// Snapshot is an immutable view of the entire store at one version. Callers
// must not modify the slices it carries.
type Snapshot struct {
	Version       uint64
	Watchlist     []Stock
	Positions     Positions
	Holdings      Holdings
	Orders        []Order
	MarketIndices []MarketIndex
	SelectedStock *Stock
	SidebarOpen   bool
	SearchQuery   string
	Funds         Funds
}

// FilteredWatchlist projects the watchlist through the stored search query:
// case-insensitive substring match on symbol or name. The watchlist itself
// is never mutated by filtering.
func (s Snapshot) FilteredWatchlist() []Stock {
	if s.SearchQuery == "" {
		return s.Watchlist
	}
	q := strings.ToLower(s.SearchQuery)
	var out []Stock
	for _, st := range s.Watchlist {
		if strings.Contains(strings.ToLower(st.Symbol), q) || strings.Contains(strings.ToLower(st.Name), q) {
			out = append(out, st)
		}
	}
	return out
}

// CancelFunc cancels a subscription. The subscriber's channel is closed.
type CancelFunc func()

// Option configures a Store at construction time.
type Option func(*Store)

// WithSeed replaces the built-in seed data.
func WithSeed(seed Seed) Option {
	return func(s *Store) { s.seed = seed }
}

// StrictSelection makes SetSelectedStock ignore stocks that are not on the
// watchlist. The default is permissive: any stock is accepted, and callers
// are responsible for passing a watchlist entry.
func StrictSelection() Option {
	return func(s *Store) { s.strictSelection = true }
}

// Store holds all desk state. It is safe for concurrent use: mutations are
// serialized and reads go through an atomically published snapshot.
type Store struct {
	mu    sync.Mutex // serializes mutations
	state atomic.Value

	smu  sync.RWMutex
	subs map[int]chan Snapshot
	sid  int

	seed            Seed
	strictSelection bool
}

// New builds a Store seeded with DefaultSeed unless WithSeed overrides it.
func New(opts ...Option) *Store {
	s := &Store{
		subs: make(map[int]chan Snapshot),
		seed: DefaultSeed(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.state.Store(Snapshot{
		Watchlist:     append([]Stock(nil), s.seed.Watchlist...),
		Positions:     append(Positions(nil), s.seed.Positions...),
		Holdings:      append(Holdings(nil), s.seed.Holdings...),
		Orders:        append([]Order(nil), s.seed.Orders...),
		MarketIndices: append([]MarketIndex(nil), s.seed.MarketIndices...),
		SidebarOpen:   true,
		Funds:         s.seed.Funds,
	})
	return s
}

// Snapshot returns the current state.
func (s *Store) Snapshot() Snapshot {
	return s.state.Load().(Snapshot)
}

// Watchlist returns the current watchlist slice.
func (s *Store) Watchlist() []Stock { return s.Snapshot().Watchlist }

// Positions returns the current positions.
func (s *Store) Positions() Positions { return s.Snapshot().Positions }

// Holdings returns the current holdings.
func (s *Store) Holdings() Holdings { return s.Snapshot().Holdings }

// Orders returns the order book, newest first.
func (s *Store) Orders() []Order { return s.Snapshot().Orders }

// MarketIndices returns the tracked indices.
func (s *Store) MarketIndices() []MarketIndex { return s.Snapshot().MarketIndices }

// SelectedStock returns the current selection, nil when nothing is selected.
func (s *Store) SelectedStock() *Stock { return s.Snapshot().SelectedStock }

// SidebarOpen reports the sidebar toggle.
func (s *Store) SidebarOpen() bool { return s.Snapshot().SidebarOpen }

// SearchQuery returns the watchlist filter string.
func (s *Store) SearchQuery() string { return s.Snapshot().SearchQuery }

// Funds returns the account funds summary.
func (s *Store) Funds() Funds { return s.Snapshot().Funds }

// Subscribe registers for snapshot updates. The channel has a buffer of one
// and sends never block: a subscriber that falls behind misses intermediate
// versions, it does not stall mutations.
func (s *Store) Subscribe() (<-chan Snapshot, CancelFunc) {
	ch := make(chan Snapshot, 1)

	s.smu.Lock()
	id := s.sid
	s.sid++
	s.subs[id] = ch
	s.smu.Unlock()

	return ch, func() {
		s.smu.Lock()
		defer s.smu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
}

// mutate applies fn to a shallow copy of the current snapshot under the
// mutation lock. fn must replace any slice it changes, never write through
// the old one. If fn reports no change, nothing is published.
func (s *Store) mutate(fn func(*Snapshot) bool) {
	s.mu.Lock()
	cur := s.state.Load().(Snapshot)
	next := cur
	if !fn(&next) {
		s.mu.Unlock()
		return
	}
	next.Version = cur.Version + 1
	s.state.Store(next)
	s.mu.Unlock()

	s.publish(next)
}

func (s *Store) publish(snap Snapshot) {
	s.smu.RLock()
	defer s.smu.RUnlock()
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
		}
	}
}

// SetSelectedStock replaces the selection. Permissive by default: the stock
// is not checked against the watchlist unless the store was built with
// StrictSelection.
func (s *Store) SetSelectedStock(stock Stock) {
	s.mutate(func(snap *Snapshot) bool {
		if s.strictSelection && !containsSymbol(snap.Watchlist, stock.Symbol) {
			return false
		}
		snap.SelectedStock = &stock
		return true
	})
}

// ClearSelectedStock drops the selection.
func (s *Store) ClearSelectedStock() {
	s.mutate(func(snap *Snapshot) bool {
		if snap.SelectedStock == nil {
			return false
		}
		snap.SelectedStock = nil
		return true
	})
}

// AddOrder prepends order to the book, newest first. The store does not
// deduplicate ids; uniqueness is the caller's contract.
func (s *Store) AddOrder(order Order) {
	s.mutate(func(snap *Snapshot) bool {
		orders := make([]Order, 0, len(snap.Orders)+1)
		orders = append(orders, order)
		orders = append(orders, snap.Orders...)
		snap.Orders = orders
		return true
	})
}

// UpdateStockPrice sets the price and change on the watchlist entry for
// symbol and recomputes its change percent. Unknown symbols are a silent
// no-op: a tick racing a removal is expected, not an error.
func (s *Store) UpdateStockPrice(symbol string, price, change float64) {
	s.mutate(func(snap *Snapshot) bool {
		i := indexBySymbol(snap.Watchlist, symbol)
		if i < 0 {
			return false
		}
		watchlist := append([]Stock(nil), snap.Watchlist...)
		watchlist[i].Price = price
		watchlist[i].Change = change
		watchlist[i].ChangePercent = changePercent(price, change)
		snap.Watchlist = watchlist
		if snap.SelectedStock != nil && snap.SelectedStock.Symbol == symbol {
			sel := watchlist[i]
			snap.SelectedStock = &sel
		}
		return true
	})
}

// UpdateMarketIndex sets the value and change on the index named name and
// recomputes its change percent. Unknown names are a silent no-op.
func (s *Store) UpdateMarketIndex(name string, value, change float64) {
	s.mutate(func(snap *Snapshot) bool {
		i := -1
		for j, idx := range snap.MarketIndices {
			if idx.Name == name {
				i = j
				break
			}
		}
		if i < 0 {
			return false
		}
		indices := append([]MarketIndex(nil), snap.MarketIndices...)
		indices[i].Value = value
		indices[i].Change = change
		indices[i].ChangePercent = changePercent(value, change)
		snap.MarketIndices = indices
		return true
	})
}

// ToggleSidebar flips the sidebar flag.
func (s *Store) ToggleSidebar() {
	s.mutate(func(snap *Snapshot) bool {
		snap.SidebarOpen = !snap.SidebarOpen
		return true
	})
}

// AddToWatchlist inserts stock unless its symbol is already tracked.
// Idempotent on duplicates.
func (s *Store) AddToWatchlist(stock Stock) {
	s.mutate(func(snap *Snapshot) bool {
		if containsSymbol(snap.Watchlist, stock.Symbol) {
			return false
		}
		snap.Watchlist = append(append([]Stock(nil), snap.Watchlist...), stock)
		return true
	})
}

// RemoveFromWatchlist drops the entry for symbol. If the selection points at
// it, the selection is cleared in the same snapshot: subscribers never see a
// selection referencing a missing stock.
func (s *Store) RemoveFromWatchlist(symbol string) {
	s.mutate(func(snap *Snapshot) bool {
		i := indexBySymbol(snap.Watchlist, symbol)
		if i < 0 {
			return false
		}
		watchlist := make([]Stock, 0, len(snap.Watchlist)-1)
		watchlist = append(watchlist, snap.Watchlist[:i]...)
		watchlist = append(watchlist, snap.Watchlist[i+1:]...)
		snap.Watchlist = watchlist
		if snap.SelectedStock != nil && snap.SelectedStock.Symbol == symbol {
			snap.SelectedStock = nil
		}
		return true
	})
}

// SetSearchQuery replaces the watchlist filter. Any string is accepted,
// including empty.
func (s *Store) SetSearchQuery(query string) {
	s.mutate(func(snap *Snapshot) bool {
		if snap.SearchQuery == query {
			return false
		}
		snap.SearchQuery = query
		return true
	})
}

// changePercent derives the percent move from the new value and the absolute
// change. The previous value is value-change; when that is zero the percent
// is defined as 0 rather than letting Inf/NaN escape into consumers.
func changePercent(value, change float64) float64 {
	prev := value - change
	if prev == 0 {
		return 0
	}
	return change / prev * 100
}

func indexBySymbol(stocks []Stock, symbol string) int {
	for i, st := range stocks {
		if st.Symbol == symbol {
			return i
		}
	}
	return -1
}

func containsSymbol(stocks []Stock, symbol string) bool {
	return indexBySymbol(stocks, symbol) >= 0
}
