// market/instruments.go
package market

import "strings"

// Instrument is a tradable symbol and its current price.
type Instrument struct {
	Symbol string  `json:"symbol" yaml:"symbol"`
	Price  float64 `json:"price" yaml:"price"`
}

// DefaultInstruments returns the seed set the simulator starts with.
func DefaultInstruments() []Instrument {
	return []Instrument{
		{Symbol: "AAPL", Price: 150},
		{Symbol: "GOOG", Price: 2800},
		{Symbol: "TSLA", Price: 700},
		{Symbol: "AMZN", Price: 3300},
		{Symbol: "NFLX", Price: 500},
	}
}

// NormalizeSymbol trims whitespace and upper-cases a user supplied symbol.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
