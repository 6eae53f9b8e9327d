package journal

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

var (
	tradesHeader = []string{"trade_id", "time", "side", "symbol", "quantity", "price", "amount", "avg_cost", "realized_pl", "cash_after"}
	equityHeader = []string{"time", "cash", "market_value", "total"}
)

type CSVJournal struct {
	trades *csv.Writer
	equity *csv.Writer
	tf, ef *os.File
}

func NewCSV(tradesPath, equityPath string) (*CSVJournal, error) {
	tf, err := os.Create(tradesPath)
	if err != nil {
		return nil, err
	}
	ef, err := os.Create(equityPath)
	if err != nil {
		tf.Close()
		return nil, err
	}

	j := &CSVJournal{
		trades: csv.NewWriter(tf),
		equity: csv.NewWriter(ef),
		tf:     tf,
		ef:     ef,
	}

	if err := j.write(j.trades, tradesHeader); err != nil {
		j.Close()
		return nil, fmt.Errorf("write trades header: %w", err)
	}
	if err := j.write(j.equity, equityHeader); err != nil {
		j.Close()
		return nil, fmt.Errorf("write equity header: %w", err)
	}
	return j, nil
}

func (j *CSVJournal) RecordTrade(t TradeRecord) error {
	return j.write(j.trades, []string{
		t.TradeID,
		t.Time.UTC().Format(time.RFC3339),
		t.Side,
		t.Symbol,
		strconv.Itoa(t.Quantity),
		f(t.Price),
		f(t.Amount),
		f(t.AvgCost),
		f(t.RealizedPL),
		f(t.CashAfter),
	})
}

func (j *CSVJournal) RecordEquity(e EquitySnapshot) error {
	return j.write(j.equity, []string{
		e.Time.UTC().Format(time.RFC3339),
		f(e.Cash),
		f(e.MarketValue),
		f(e.Total),
	})
}

// write flushes after every row so a crashed session still leaves a
// readable file.
func (j *CSVJournal) write(w *csv.Writer, row []string) error {
	if err := w.Write(row); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func (j *CSVJournal) Close() error {
	j.trades.Flush()
	j.equity.Flush()

	var first error
	for _, err := range []error{j.trades.Error(), j.equity.Error(), j.tf.Close(), j.ef.Close()} {
		if err != nil && first == nil {
			first = err
		}
	}
	return first
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
