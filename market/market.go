package market

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"
)

var (
	ErrUnknownSymbol = errors.New("unknown symbol")
	ErrNoInstruments = errors.New("no instruments")
)

const (
	DefaultMaxDelta = 5.0
	DefaultFloor    = 1.0
)

// Market holds the current price of every instrument and moves them
// with a bounded random walk on each Tick.
//
// A Market is owned by a single control loop and is not safe for
// concurrent use.
type Market struct {
	prices   map[string]float64
	symbols  []string // sorted; fixes the order the random source is consumed
	rng      *rand.Rand
	maxDelta float64
	floor    float64
}

type Option func(*Market)

// WithRand injects the random source used by Tick.
func WithRand(r *rand.Rand) Option {
	return func(m *Market) { m.rng = r }
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithMaxDelta sets the half-width of the uniform per-tick move.
func WithMaxDelta(d float64) Option {
	return func(m *Market) { m.maxDelta = d }
}

// WithFloor sets the minimum price a tick can produce.
func WithFloor(f float64) Option {
	return func(m *Market) { m.floor = f }
}

func New(instruments []Instrument, opts ...Option) (*Market, error) {
	if len(instruments) == 0 {
		return nil, ErrNoInstruments
	}

	m := &Market{
		prices:   make(map[string]float64, len(instruments)),
		maxDelta: DefaultMaxDelta,
		floor:    DefaultFloor,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if m.maxDelta < 0 {
		return nil, fmt.Errorf("max delta must not be negative: %v", m.maxDelta)
	}
	if m.floor <= 0 {
		return nil, fmt.Errorf("price floor must be positive: %v", m.floor)
	}

	for _, in := range instruments {
		sym := NormalizeSymbol(in.Symbol)
		if sym == "" {
			return nil, errors.New("instrument symbol is required")
		}
		if in.Price <= 0 {
			return nil, fmt.Errorf("instrument %s: price must be positive", sym)
		}
		if _, dup := m.prices[sym]; dup {
			return nil, fmt.Errorf("instrument %s: duplicate symbol", sym)
		}
		m.prices[sym] = in.Price
		m.symbols = append(m.symbols, sym)
	}
	sort.Strings(m.symbols)

	return m, nil
}

// Price returns the current price for symbol.
func (m *Market) Price(symbol string) (float64, error) {
	p, ok := m.prices[NormalizeSymbol(symbol)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	return p, nil
}

func (m *Market) Has(symbol string) bool {
	_, ok := m.prices[NormalizeSymbol(symbol)]
	return ok
}

// List returns every instrument sorted by symbol.
func (m *Market) List() []Instrument {
	out := make([]Instrument, 0, len(m.symbols))
	for _, sym := range m.symbols {
		out = append(out, Instrument{Symbol: sym, Price: m.prices[sym]})
	}
	return out
}

// Len reports the number of instruments.
func (m *Market) Len() int { return len(m.symbols) }
