package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rustyeddy/stocksim/market"
	"gopkg.in/yaml.v3"
)

// Config is the complete simulator configuration.
type Config struct {
	Account AccountConfig `json:"account" yaml:"account"`
	Market  MarketConfig  `json:"market" yaml:"market"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Log     LogConfig     `json:"log" yaml:"log"`
}

type AccountConfig struct {
	Cash float64 `json:"cash" yaml:"cash"`
}

// MarketConfig describes the instruments and the random walk.
type MarketConfig struct {
	// Seed for the price walk; zero picks a time based seed.
	Seed        int64               `json:"seed" yaml:"seed"`
	MaxDelta    float64             `json:"max_delta" yaml:"max_delta"`
	Floor       float64             `json:"floor" yaml:"floor"`
	Instruments []market.Instrument `json:"instruments" yaml:"instruments"`
}

// JournalConfig selects where fills are recorded.
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	TradesFile string `json:"trades_file,omitempty" yaml:"trades_file,omitempty"`
	EquityFile string `json:"equity_file,omitempty" yaml:"equity_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level"`
}

// LoadFromFile reads a YAML or JSON config, fills unset fields from
// Default and validates the result.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	if err := yaml.Unmarshal(data, cfg); err != nil {
		cfg = Default()
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// SaveToFile writes YAML for .yaml/.yml paths and indented JSON otherwise.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(c)
	default:
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Account.Cash < 0 {
		return fmt.Errorf("account.cash must not be negative")
	}
	if c.Market.MaxDelta < 0 {
		return fmt.Errorf("market.max_delta must not be negative")
	}
	if c.Market.Floor <= 0 {
		return fmt.Errorf("market.floor must be positive")
	}
	if len(c.Market.Instruments) == 0 {
		return fmt.Errorf("market.instruments is required")
	}

	seen := make(map[string]bool, len(c.Market.Instruments))
	for _, in := range c.Market.Instruments {
		sym := market.NormalizeSymbol(in.Symbol)
		if sym == "" {
			return fmt.Errorf("market.instruments: symbol is required")
		}
		if seen[sym] {
			return fmt.Errorf("market.instruments: duplicate symbol %s", sym)
		}
		seen[sym] = true
		if in.Price <= 0 {
			return fmt.Errorf("market.instruments: %s price must be positive", sym)
		}
	}

	switch c.Journal.Type {
	case "", "none":
	case "csv":
		if c.Journal.TradesFile == "" || c.Journal.EquityFile == "" {
			return fmt.Errorf("journal trades_file and equity_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}

	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug|info|warn|error")
	}
	return nil
}

// Default reproduces the classic simulator: $10,000 cash, five stocks,
// moves of up to five dollars per tick.
func Default() *Config {
	return &Config{
		Account: AccountConfig{Cash: 10000},
		Market: MarketConfig{
			MaxDelta:    market.DefaultMaxDelta,
			Floor:       market.DefaultFloor,
			Instruments: market.DefaultInstruments(),
		},
		Journal: JournalConfig{
			Type:       "none",
			TradesFile: "./trades.csv",
			EquityFile: "./equity.csv",
			DBPath:     "./stocksim.sqlite",
		},
		Log: LogConfig{Level: "warn"},
	}
}

// MarketOptions converts the walk parameters into market options.
func (c *Config) MarketOptions() []market.Option {
	opts := []market.Option{
		market.WithMaxDelta(c.Market.MaxDelta),
		market.WithFloor(c.Market.Floor),
	}
	if c.Market.Seed != 0 {
		opts = append(opts, market.WithSeed(c.Market.Seed))
	}
	return opts
}
