package session

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// money renders a price or amount with two decimals.
func money(x float64) string {
	return decimal.NewFromFloat(x).StringFixed(2)
}

func (s *Session) showMarket() {
	fmt.Fprintln(s.out, "\n--- Market Prices ---")
	for _, in := range s.market.List() {
		fmt.Fprintf(s.out, "%s: $%s\n", in.Symbol, money(in.Price))
	}
}

func (s *Session) showPortfolio() error {
	v, err := s.ledger.Valuation(s.market)
	if err != nil {
		return err
	}

	fmt.Fprintln(s.out, "\n--- Portfolio ---")
	fmt.Fprintf(s.out, "Cash: $%s\n", money(v.Cash))
	for _, p := range v.Positions {
		fmt.Fprintf(s.out, "%s: %d shares | Avg Buy: $%s | Current: $%s | Value: $%s | P/L: $%s\n",
			p.Symbol, p.Quantity, money(p.AvgCost), money(p.Price), money(p.MarketValue), money(p.UnrealizedPL))
	}
	fmt.Fprintf(s.out, "Total Portfolio Value: $%s\n", money(v.Total))
	return nil
}
