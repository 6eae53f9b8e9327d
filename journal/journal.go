// journal/journal.go
package journal

import "time"

// TradeRecord is one executed buy or sell.
type TradeRecord struct {
	TradeID    string
	Time       time.Time
	Side       string // BUY or SELL
	Symbol     string
	Quantity   int
	Price      float64
	Amount     float64
	AvgCost    float64
	RealizedPL float64 // zero for buys
	CashAfter  float64
}

// EquitySnapshot captures the marked-to-market account after a fill.
type EquitySnapshot struct {
	Time        time.Time
	Cash        float64
	MarketValue float64
	Total       float64
}

type Journal interface {
	RecordTrade(TradeRecord) error
	RecordEquity(EquitySnapshot) error
	Close() error
}

// Discard is a Journal that drops everything.
type Discard struct{}

func (Discard) RecordTrade(TradeRecord) error     { return nil }
func (Discard) RecordEquity(EquitySnapshot) error { return nil }
func (Discard) Close() error                      { return nil }
