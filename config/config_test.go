package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rustyeddy/stocksim/market"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)
	assert.Equal(t, 10000.0, cfg.Account.Cash)
	assert.Equal(t, 5.0, cfg.Market.MaxDelta)
	assert.Equal(t, 1.0, cfg.Market.Floor)
	assert.Len(t, cfg.Market.Instruments, 5)
	assert.Equal(t, "none", cfg.Journal.Type)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"valid config", func(*Config) {}, ""},
		{"negative cash", func(c *Config) { c.Account.Cash = -1 }, "account.cash must not be negative"},
		{"zero cash is fine", func(c *Config) { c.Account.Cash = 0 }, ""},
		{"negative delta", func(c *Config) { c.Market.MaxDelta = -1 }, "market.max_delta must not be negative"},
		{"zero floor", func(c *Config) { c.Market.Floor = 0 }, "market.floor must be positive"},
		{"no instruments", func(c *Config) { c.Market.Instruments = nil }, "market.instruments is required"},
		{"blank symbol", func(c *Config) { c.Market.Instruments[0].Symbol = " " }, "symbol is required"},
		{"duplicate symbol", func(c *Config) { c.Market.Instruments[1].Symbol = "aapl" }, "duplicate symbol AAPL"},
		{"bad price", func(c *Config) { c.Market.Instruments[0].Price = 0 }, "AAPL price must be positive"},
		{"bad journal type", func(c *Config) { c.Journal.Type = "kafka" }, "journal.type must be"},
		{"csv without files", func(c *Config) { c.Journal = JournalConfig{Type: "csv"} }, "trades_file and equity_file required"},
		{"sqlite without path", func(c *Config) { c.Journal = JournalConfig{Type: "sqlite"} }, "db_path required"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestSaveAndLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")

	cfg := Default()
	cfg.Account.Cash = 2500
	cfg.Market.Seed = 42
	cfg.Market.Instruments = []market.Instrument{{Symbol: "IBM", Price: 120}}
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestSaveAndLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.json")

	cfg := Default()
	cfg.Journal.Type = "sqlite"
	cfg.Journal.DBPath = "x.db"
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("account:\n  cash: 500\n"), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 500.0, cfg.Account.Cash)
	assert.Len(t, cfg.Market.Instruments, 5)
	assert.Equal(t, 5.0, cfg.Market.MaxDelta)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("account: [unterminated"), 0644))
	_, err = LoadFromFile(bad)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("market:\n  floor: -1\n"), 0644))
	_, err = LoadFromFile(invalid)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestMarketOptions(t *testing.T) {
	cfg := Default()
	assert.Len(t, cfg.MarketOptions(), 2)

	cfg.Market.Seed = 7
	assert.Len(t, cfg.MarketOptions(), 3)

	m, err := market.New(cfg.Market.Instruments, cfg.MarketOptions()...)
	require.NoError(t, err)
	assert.Equal(t, 5, m.Len())
}
