package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rustyeddy/stocksim/journal"
	"github.com/rustyeddy/stocksim/market"
	"github.com/rustyeddy/stocksim/portfolio"
	"go.uber.org/zap"
)

const menu = `
=== STOCK TRADING PLATFORM ===
1. View Market
2. Buy Stock
3. Sell Stock
4. View Portfolio
5. Exit
`

const (
	choiceMarket = iota + 1
	choiceBuy
	choiceSell
	choicePortfolio
	choiceExit
)

// Session is one interactive run of the simulator. It owns the market,
// the ledger and the I/O streams; nothing is shared between sessions.
type Session struct {
	market  *market.Market
	ledger  *portfolio.Ledger
	journal journal.Journal
	log     *zap.Logger
	in      *bufio.Reader
	out     io.Writer
	now     func() time.Time
}

type Option func(*Session)

func WithInput(r io.Reader) Option {
	return func(s *Session) { s.in = bufio.NewReader(r) }
}

func WithOutput(w io.Writer) Option {
	return func(s *Session) { s.out = w }
}

// WithJournal records every fill and the equity after it.
func WithJournal(j journal.Journal) Option {
	return func(s *Session) { s.journal = j }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Session) { s.log = l }
}

func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func New(m *market.Market, l *portfolio.Ledger, opts ...Option) *Session {
	s := &Session{
		market:  m,
		ledger:  l,
		journal: journal.Discard{},
		log:     zap.NewNop(),
		in:      bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run drives the menu loop until the user exits, input ends or ctx is
// cancelled. The market ticks once at the top of every iteration.
//
// Exit and end of input both return nil. Rejected trades and bad input
// are reported to the user and never end the session.
func (s *Session) Run(ctx context.Context) error {
	s.log.Info("session started",
		zap.Float64("cash", s.ledger.Cash()),
		zap.Int("instruments", s.market.Len()),
	)

	for iteration := 1; ; iteration++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.market.Tick()
		s.log.Debug("tick", zap.Int("iteration", iteration))

		fmt.Fprint(s.out, menu)
		line, err := s.prompt("Choose an option: ")
		if err != nil {
			return s.inputEnded(err)
		}

		choice, err := parseChoice(line)
		if err != nil {
			fmt.Fprintln(s.out, "Invalid option.")
			continue
		}

		switch choice {
		case choiceMarket:
			s.showMarket()
		case choiceBuy:
			err = s.buy()
		case choiceSell:
			err = s.sell()
		case choicePortfolio:
			err = s.showPortfolio()
		case choiceExit:
			fmt.Fprintln(s.out, "Thank you for using the trading simulator!")
			s.log.Info("session finished", zap.Int("iterations", iteration))
			return nil
		}
		if err != nil {
			return s.inputEnded(err)
		}
	}
}

// inputEnded turns end of input into a clean shutdown.
func (s *Session) inputEnded(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(s.out)
		s.log.Info("input closed, ending session")
		return nil
	}
	return err
}

func (s *Session) buy() error {
	line, err := s.prompt("Enter stock symbol: ")
	if err != nil {
		return err
	}
	symbol := market.NormalizeSymbol(line)
	if !s.market.Has(symbol) {
		fmt.Fprintln(s.out, "Stock not found.")
		return nil
	}

	qty, err := s.promptQuantity("Enter quantity to buy: ")
	if err != nil {
		return s.reject(err)
	}

	fill, err := s.ledger.Buy(s.market, symbol, qty)
	if err != nil {
		return s.reject(err)
	}

	fmt.Fprintf(s.out, "Bought %d shares of %s for $%s\n", fill.Quantity, fill.Symbol, money(fill.Amount))
	s.record(fill)
	return nil
}

func (s *Session) sell() error {
	line, err := s.prompt("Enter stock symbol: ")
	if err != nil {
		return err
	}
	symbol := market.NormalizeSymbol(line)

	h, ok := s.ledger.Holding(symbol)
	if !ok {
		fmt.Fprintln(s.out, "You don't own this stock.")
		return nil
	}

	qty, err := s.promptQuantity(fmt.Sprintf("Enter quantity to sell (you own %d): ", h.Quantity))
	if err != nil {
		return s.reject(err)
	}

	fill, err := s.ledger.Sell(s.market, symbol, qty)
	if err != nil {
		return s.reject(err)
	}

	fmt.Fprintf(s.out, "Sold %d shares of %s for $%s\n", fill.Quantity, fill.Symbol, money(fill.Amount))
	s.record(fill)
	return nil
}

// reject prints the user facing message for a rejected request. Anything
// it does not recognise is passed back to Run.
func (s *Session) reject(err error) error {
	msg, ok := userMessage(err)
	if !ok {
		return err
	}
	s.log.Debug("request rejected", zap.Error(err))
	fmt.Fprintln(s.out, msg)
	return nil
}

func userMessage(err error) (string, bool) {
	switch {
	case errors.Is(err, ErrInvalidInput), errors.Is(err, portfolio.ErrInvalidQuantity):
		return "Invalid quantity: enter a positive whole number.", true
	case errors.Is(err, portfolio.ErrUnknownSymbol):
		return "Stock not found.", true
	case errors.Is(err, portfolio.ErrInsufficientFunds):
		return "Insufficient cash.", true
	case errors.Is(err, portfolio.ErrNoSuchHolding):
		return "You don't own this stock.", true
	case errors.Is(err, portfolio.ErrInsufficientShares):
		return "Not enough shares.", true
	}
	return "", false
}

// record forwards a fill to the journal. Journal trouble is logged and
// never undoes or blocks the trade.
func (s *Session) record(fill portfolio.Fill) {
	s.log.Info("fill",
		zap.String("id", fill.ID),
		zap.String("side", string(fill.Side)),
		zap.String("symbol", fill.Symbol),
		zap.Int("quantity", fill.Quantity),
		zap.Float64("price", fill.Price),
		zap.Float64("cash", fill.CashAfter),
	)

	err := s.journal.RecordTrade(journal.TradeRecord{
		TradeID:    fill.ID,
		Time:       fill.Time,
		Side:       string(fill.Side),
		Symbol:     fill.Symbol,
		Quantity:   fill.Quantity,
		Price:      fill.Price,
		Amount:     fill.Amount,
		AvgCost:    fill.AvgCost,
		RealizedPL: fill.RealizedPL(),
		CashAfter:  fill.CashAfter,
	})
	if err != nil {
		s.log.Warn("journal trade failed", zap.String("id", fill.ID), zap.Error(err))
	}

	v, err := s.ledger.Valuation(s.market)
	if err != nil {
		s.log.Warn("valuation failed", zap.Error(err))
		return
	}
	err = s.journal.RecordEquity(journal.EquitySnapshot{
		Time:        s.now(),
		Cash:        v.Cash,
		MarketValue: v.MarketValue,
		Total:       v.Total,
	})
	if err != nil {
		s.log.Warn("journal equity failed", zap.Error(err))
	}
}
