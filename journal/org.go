package journal

import (
	"fmt"
	"strings"
	"time"
)

// FormatTradeOrg renders a TradeRecord as an Org-mode block. Structured
// facts live in the PROPERTIES drawer so they stay searchable.
func FormatTradeOrg(t TradeRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "** %s %d %s (%s)\n", t.Side, t.Quantity, t.Symbol, shortID(t.TradeID))
	b.WriteString(":PROPERTIES:\n")
	fmt.Fprintf(&b, ":TRADE_ID: %s\n", t.TradeID)
	fmt.Fprintf(&b, ":TIME: %s\n", t.Time.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, ":SIDE: %s\n", t.Side)
	fmt.Fprintf(&b, ":SYMBOL: %s\n", t.Symbol)
	fmt.Fprintf(&b, ":QUANTITY: %d\n", t.Quantity)
	fmt.Fprintf(&b, ":PRICE: %.2f\n", t.Price)
	fmt.Fprintf(&b, ":AMOUNT: %.2f\n", t.Amount)
	fmt.Fprintf(&b, ":AVG_COST: %.2f\n", t.AvgCost)
	if t.Side == "SELL" {
		fmt.Fprintf(&b, ":REALIZED_PL: %.2f\n", t.RealizedPL)
	}
	fmt.Fprintf(&b, ":CASH_AFTER: %.2f\n", t.CashAfter)
	b.WriteString(":END:\n")
	return b.String()
}

// FormatTradesOrg renders multiple trades separated by blank lines.
func FormatTradesOrg(trades []TradeRecord) string {
	var b strings.Builder
	for i, t := range trades {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(FormatTradeOrg(t))
	}
	return b.String()
}

func FormatSummaryOrg(s Summary) string {
	var b strings.Builder
	b.WriteString("* Summary\n")
	fmt.Fprintf(&b, "- Trades: %d (%d buys, %d sells)\n", s.Trades, s.Buys, s.Sells)
	fmt.Fprintf(&b, "- Bought: %.2f\n", s.Bought)
	fmt.Fprintf(&b, "- Sold: %.2f\n", s.Sold)
	fmt.Fprintf(&b, "- Realized P/L: %.2f\n", s.RealizedPL)
	if s.GrossLoss > 0 {
		fmt.Fprintf(&b, "- Profit factor: %.2f\n", s.GrossProfit/s.GrossLoss)
	}
	return b.String()
}

func shortID(full string) string {
	if len(full) <= 8 {
		return full
	}
	return full[:8]
}
