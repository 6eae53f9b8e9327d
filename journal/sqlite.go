package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (j *SQLite) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, time, side, symbol, quantity, price, amount, avg_cost, realized_pl, cash_after)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.Time.UTC(), t.Side, t.Symbol, t.Quantity,
		t.Price, t.Amount, t.AvgCost, t.RealizedPL, t.CashAfter,
	)
	return err
}

func (j *SQLite) RecordEquity(e EquitySnapshot) error {
	_, err := j.db.Exec(`
		INSERT INTO equity
		(time, cash, market_value, total)
		VALUES (?, ?, ?, ?)`,
		e.Time.UTC(), e.Cash, e.MarketValue, e.Total,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}
