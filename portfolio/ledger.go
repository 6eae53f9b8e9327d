package portfolio

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rustyeddy/stocksim/internal/id"
)

// Quoter supplies the current price of a symbol.
type Quoter interface {
	Price(symbol string) (float64, error)
}

// Holding is an open position in one symbol.
type Holding struct {
	Symbol   string
	Quantity int
	AvgCost  float64
}

// Ledger tracks cash and holdings. Every method either applies fully or
// leaves the ledger untouched.
type Ledger struct {
	cash     float64
	holdings map[string]*Holding
	now      func() time.Time
}

type Option func(*Ledger)

// WithClock overrides the time source used to stamp fills.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

func NewLedger(cash float64, opts ...Option) (*Ledger, error) {
	if cash < 0 {
		return nil, fmt.Errorf("starting cash must not be negative: %.2f", cash)
	}
	l := &Ledger{
		cash:     cash,
		holdings: make(map[string]*Holding),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

func (l *Ledger) Cash() float64 { return l.cash }

// Holding returns a copy of the position in symbol.
func (l *Ledger) Holding(symbol string) (Holding, bool) {
	h, ok := l.holdings[normalize(symbol)]
	if !ok {
		return Holding{}, false
	}
	return *h, true
}

// Holdings returns copies of all positions sorted by symbol.
func (l *Ledger) Holdings() []Holding {
	out := make([]Holding, 0, len(l.holdings))
	for _, h := range l.holdings {
		out = append(out, *h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// Buy purchases quantity shares of symbol at the quoted price.
//
// The price is read once and used for both the cost and the new average,
// so the average of a fresh holding is exactly the fill price.
func (l *Ledger) Buy(q Quoter, symbol string, quantity int) (Fill, error) {
	symbol = normalize(symbol)
	if quantity <= 0 {
		return Fill{}, fmt.Errorf("buy %s: %w: %d", symbol, ErrInvalidQuantity, quantity)
	}

	price, err := q.Price(symbol)
	if err != nil {
		return Fill{}, fmt.Errorf("buy %s: %w: %w", symbol, ErrUnknownSymbol, err)
	}

	cost := float64(quantity) * price
	if cost > l.cash {
		return Fill{}, fmt.Errorf("buy %s: %w: need %.2f, have %.2f", symbol, ErrInsufficientFunds, cost, l.cash)
	}

	h, ok := l.holdings[symbol]
	if !ok {
		h = &Holding{Symbol: symbol}
	}

	l.cash -= cost
	h.AvgCost = (h.AvgCost*float64(h.Quantity) + cost) / float64(h.Quantity+quantity)
	h.Quantity += quantity
	l.holdings[symbol] = h

	return l.fill(Buy, symbol, quantity, price, cost, h.AvgCost), nil
}

// Sell disposes of quantity shares of symbol at the quoted price. The
// average cost of what remains is unchanged; a position sold down to zero
// is removed.
func (l *Ledger) Sell(q Quoter, symbol string, quantity int) (Fill, error) {
	symbol = normalize(symbol)
	if quantity <= 0 {
		return Fill{}, fmt.Errorf("sell %s: %w: %d", symbol, ErrInvalidQuantity, quantity)
	}

	h, ok := l.holdings[symbol]
	if !ok {
		return Fill{}, fmt.Errorf("sell %s: %w", symbol, ErrNoSuchHolding)
	}
	if quantity > h.Quantity {
		return Fill{}, fmt.Errorf("sell %s: %w: have %d, want %d", symbol, ErrInsufficientShares, h.Quantity, quantity)
	}

	price, err := q.Price(symbol)
	if err != nil {
		return Fill{}, fmt.Errorf("sell %s: %w: %w", symbol, ErrUnknownSymbol, err)
	}

	revenue := float64(quantity) * price
	avg := h.AvgCost

	l.cash += revenue
	h.Quantity -= quantity
	if h.Quantity == 0 {
		delete(l.holdings, symbol)
	}

	return l.fill(Sell, symbol, quantity, price, revenue, avg), nil
}

func (l *Ledger) fill(side Side, symbol string, qty int, price, amount, avg float64) Fill {
	ts := l.now()
	return Fill{
		ID:        id.At(ts),
		Side:      side,
		Symbol:    symbol,
		Quantity:  qty,
		Price:     price,
		Amount:    amount,
		AvgCost:   avg,
		CashAfter: l.cash,
		Time:      ts,
	}
}

func normalize(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
