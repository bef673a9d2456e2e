// Package sim produces the illusion of market movement: a recurring tick
// that perturbs one watchlist stock and one market index through the
// store's own mutators. There is no external feed; if the simulator stops,
// prices stop moving and nothing else breaks.
package sim

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/paperdesk/paperdesk/journal"
	"github.com/paperdesk/paperdesk/store"
)

const (
	// DefaultInterval matches the dashboard's 3-second refresh.
	DefaultInterval = 3 * time.Second

	// DefaultStockRange bounds a stock tick at ±2% of current price.
	DefaultStockRange = 0.02

	// DefaultIndexRange bounds an index tick at ±1% of current value.
	DefaultIndexRange = 0.01
)

// Option configures a Simulator.
type Option func(*Simulator)

// WithInterval sets the tick period.
func WithInterval(d time.Duration) Option {
	return func(s *Simulator) { s.interval = d }
}

// WithStockRange sets the max stock move per tick as a fraction of price.
func WithStockRange(frac float64) Option {
	return func(s *Simulator) { s.stockRange = frac }
}

// WithIndexRange sets the max index move per tick as a fraction of value.
func WithIndexRange(frac float64) Option {
	return func(s *Simulator) { s.indexRange = frac }
}

// WithRand sets the random source. Tests use a seeded source for
// deterministic ticks.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulator) { s.rng = rng }
}

// WithJournal records every applied tick under session.
func WithJournal(j journal.Journal, session string) Option {
	return func(s *Simulator) {
		s.journal = j
		s.session = session
	}
}

// Simulator drives randomized price updates into a store. One simulator per
// session: running two against the same store double-applies ticks.
type Simulator struct {
	store      *store.Store
	interval   time.Duration
	stockRange float64
	indexRange float64
	rng        *rand.Rand
	journal    journal.Journal
	session    string

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New builds a Simulator for st with the dashboard defaults.
func New(st *store.Store, opts ...Option) *Simulator {
	s := &Simulator{
		store:      st,
		interval:   DefaultInterval,
		stockRange: DefaultStockRange,
		indexRange: DefaultIndexRange,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches the tick loop. It returns an error if the simulator is
// already running. The loop stops when ctx is cancelled or Stop is called.
func (s *Simulator) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return errors.New("sim: already running")
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	go s.run(ctx, s.done)
	return nil
}

// Stop cancels the tick loop and waits for it to exit. A tick already
// executing completes whole before Stop returns; no further ticks fire
// afterwards. Stop is a no-op when the simulator is not running.
func (s *Simulator) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *Simulator) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			// Tick errors are journal write failures; price flow continues.
			_ = s.Tick()
		}
	}
}

// Tick applies one round: perturb one random watchlist stock within
// ±stockRange and one random index within ±indexRange. Collections are
// re-read from the store on every call so a tick always acts on live state,
// never on what existed when the loop started. Empty collections skip their
// half of the round.
func (s *Simulator) Tick() error {
	var errs []error

	if stocks := s.store.Watchlist(); len(stocks) > 0 {
		pick := stocks[s.rng.Intn(len(stocks))]
		change := pick.Price * s.jitter(s.stockRange)
		price := pick.Price + change
		s.store.UpdateStockPrice(pick.Symbol, price, change)
		if err := s.record(journal.KindStock, pick.Symbol, price, change); err != nil {
			errs = append(errs, err)
		}
	}

	if indices := s.store.MarketIndices(); len(indices) > 0 {
		pick := indices[s.rng.Intn(len(indices))]
		change := pick.Value * s.jitter(s.indexRange)
		value := pick.Value + change
		s.store.UpdateMarketIndex(pick.Name, value, change)
		if err := s.record(journal.KindIndex, pick.Name, value, change); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// jitter draws uniformly from [-max, max).
func (s *Simulator) jitter(max float64) float64 {
	return (s.rng.Float64() - 0.5) * 2 * max
}

func (s *Simulator) record(kind journal.TickKind, symbol string, value, change float64) error {
	if s.journal == nil {
		return nil
	}
	prev := value - change
	var pct float64
	if prev != 0 {
		pct = change / prev * 100
	}
	return s.journal.RecordTick(journal.TickRecord{
		Session:       s.session,
		Time:          time.Now(),
		Kind:          kind,
		Symbol:        symbol,
		Price:         value,
		Change:        change,
		ChangePercent: pct,
	})
}
