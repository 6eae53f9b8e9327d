package portfolio

import "fmt"

// Position is one line of a Valuation.
type Position struct {
	Symbol       string
	Quantity     int
	AvgCost      float64
	Price        float64
	MarketValue  float64
	UnrealizedPL float64
}

type Valuation struct {
	Cash        float64
	Positions   []Position
	MarketValue float64 // sum of position market values
	Total       float64 // Cash + MarketValue
}

// Valuation marks every holding to the live quote.
func (l *Ledger) Valuation(q Quoter) (Valuation, error) {
	v := Valuation{Cash: l.cash}

	for _, h := range l.Holdings() {
		price, err := q.Price(h.Symbol)
		if err != nil {
			return Valuation{}, fmt.Errorf("valuation %s: %w: %w", h.Symbol, ErrUnknownSymbol, err)
		}
		mv := float64(h.Quantity) * price
		v.Positions = append(v.Positions, Position{
			Symbol:       h.Symbol,
			Quantity:     h.Quantity,
			AvgCost:      h.AvgCost,
			Price:        price,
			MarketValue:  mv,
			UnrealizedPL: mv - float64(h.Quantity)*h.AvgCost,
		})
		v.MarketValue += mv
	}

	v.Total = v.Cash + v.MarketValue
	return v, nil
}
