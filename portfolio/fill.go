package portfolio

import "time"

type Side string

const (
	Buy  Side = "BUY"
	Sell Side = "SELL"
)

// Fill describes an accepted buy or sell.
type Fill struct {
	ID       string
	Side     Side
	Symbol   string
	Quantity int
	Price    float64
	Amount   float64 // Quantity * Price
	// AvgCost is the holding's average cost after the fill. For a sell
	// it is the (unchanged) basis the shares were carried at.
	AvgCost   float64
	CashAfter float64
	Time      time.Time
}

// RealizedPL is the profit of a sell against the carried average cost.
// It is zero for buys.
func (f Fill) RealizedPL() float64 {
	if f.Side != Sell {
		return 0
	}
	return float64(f.Quantity) * (f.Price - f.AvgCost)
}
