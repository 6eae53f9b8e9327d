package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedTrades(t *testing.T, j *SQLite) []TradeRecord {
	t.Helper()

	day := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	recs := []TradeRecord{
		{TradeID: "T001", Time: day.Add(9 * time.Hour), Side: "BUY", Symbol: "AAPL", Quantity: 10, Price: 150, Amount: 1500, AvgCost: 150, CashAfter: 8500},
		{TradeID: "T002", Time: day.Add(10 * time.Hour), Side: "BUY", Symbol: "NFLX", Quantity: 2, Price: 500, Amount: 1000, AvgCost: 500, CashAfter: 7500},
		{TradeID: "T003", Time: day.Add(11 * time.Hour), Side: "SELL", Symbol: "AAPL", Quantity: 4, Price: 155, Amount: 620, AvgCost: 150, RealizedPL: 20, CashAfter: 8120},
		{TradeID: "T004", Time: day.Add(30 * time.Hour), Side: "SELL", Symbol: "NFLX", Quantity: 2, Price: 490, Amount: 980, AvgCost: 500, RealizedPL: -20, CashAfter: 9100},
	}
	for _, r := range recs {
		require.NoError(t, j.RecordTrade(r))
	}
	return recs
}

func TestGetTrade(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()
	recs := seedTrades(t, j)

	got, err := j.GetTrade("T003")
	require.NoError(t, err)

	want := recs[2]
	assert.Equal(t, want.TradeID, got.TradeID)
	assert.True(t, got.Time.Equal(want.Time))
	assert.Equal(t, want.Side, got.Side)
	assert.Equal(t, want.Symbol, got.Symbol)
	assert.Equal(t, want.Quantity, got.Quantity)
	assert.InDelta(t, want.Price, got.Price, 1e-9)
	assert.InDelta(t, want.Amount, got.Amount, 1e-9)
	assert.InDelta(t, want.AvgCost, got.AvgCost, 1e-9)
	assert.InDelta(t, want.RealizedPL, got.RealizedPL, 1e-9)
	assert.InDelta(t, want.CashAfter, got.CashAfter, 1e-9)
}

func TestGetTradeNotFound(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()

	_, err := j.GetTrade("nonexistent")
	assert.ErrorIs(t, err, ErrTradeNotFound)
}

func TestListTradesBetween(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()
	seedTrades(t, j)

	start := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	got, err := j.ListTradesBetween(start, start.Add(24*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "T001", got[0].TradeID)
	assert.Equal(t, "T002", got[1].TradeID)
	assert.Equal(t, "T003", got[2].TradeID)

	got, err = j.ListTradesBetween(start.Add(24*time.Hour), start.Add(48*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "T004", got[0].TradeID)
}

func TestListTradesBySymbol(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()
	seedTrades(t, j)

	got, err := j.ListTradesBySymbol("AAPL")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "BUY", got[0].Side)
	assert.Equal(t, "SELL", got[1].Side)

	got, err = j.ListTradesBySymbol("TSLA")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	j, _ := newTestSQLite(t)
	defer j.Close()
	recs := seedTrades(t, j)

	s := Summarize(recs)
	assert.Equal(t, 4, s.Trades)
	assert.Equal(t, 2, s.Buys)
	assert.Equal(t, 2, s.Sells)
	assert.InDelta(t, 2500, s.Bought, 1e-9)
	assert.InDelta(t, 1600, s.Sold, 1e-9)
	assert.InDelta(t, 0, s.RealizedPL, 1e-9)
	assert.InDelta(t, 20, s.GrossProfit, 1e-9)
	assert.InDelta(t, 20, s.GrossLoss, 1e-9)
}
