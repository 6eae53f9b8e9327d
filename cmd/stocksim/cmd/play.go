package cmd

import (
	"errors"
	"fmt"

	"github.com/rustyeddy/stocksim/config"
	"github.com/rustyeddy/stocksim/internal/logging"
	"github.com/rustyeddy/stocksim/journal"
	"github.com/rustyeddy/stocksim/market"
	"github.com/rustyeddy/stocksim/portfolio"
	"github.com/rustyeddy/stocksim/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start an interactive trading session",
	Long: `Start the menu driven trading session.

Menu:
  1  view market
  2  buy
  3  sell
  4  view portfolio
  5  exit

Examples:
  stocksim play
  stocksim play --seed 42 --cash 25000
  stocksim play --journal sqlite --db ./stocksim.sqlite`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

var (
	playSeed    int64
	playCash    float64
	playJournal string
	playDBPath  string
)

func init() {
	rootCmd.AddCommand(playCmd)

	for _, c := range []*cobra.Command{rootCmd, playCmd} {
		c.Flags().Int64Var(&playSeed, "seed", 0, "seed for the price walk (0 = random)")
		c.Flags().Float64Var(&playCash, "cash", 0, "starting cash (overrides config)")
		c.Flags().StringVar(&playJournal, "journal", "", "journal type: none|csv|sqlite (overrides config)")
		c.Flags().StringVar(&playDBPath, "db", "", "SQLite journal path (overrides config)")
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Market.Seed = playSeed
	}
	if flags.Changed("cash") {
		cfg.Account.Cash = playCash
	}
	if flags.Changed("journal") {
		cfg.Journal.Type = playJournal
	}
	if flags.Changed("db") {
		cfg.Journal.DBPath = playDBPath
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	log, err := logging.New(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer log.Sync()

	m, err := market.New(cfg.Market.Instruments, cfg.MarketOptions()...)
	if err != nil {
		return fmt.Errorf("market: %w", err)
	}
	l, err := portfolio.NewLedger(cfg.Account.Cash)
	if err != nil {
		return fmt.Errorf("ledger: %w", err)
	}

	j, err := openJournal(cfg.Journal)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer func() {
		if err := j.Close(); err != nil {
			log.Warn("close journal", zap.Error(err))
		}
	}()

	log.Debug("starting session",
		zap.Int64("seed", cfg.Market.Seed),
		zap.String("journal", cfg.Journal.Type),
	)

	s := session.New(m, l,
		session.WithInput(cmd.InOrStdin()),
		session.WithOutput(cmd.OutOrStdout()),
		session.WithJournal(j),
		session.WithLogger(log),
	)
	return s.Run(cmd.Context())
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

func openJournal(jc config.JournalConfig) (journal.Journal, error) {
	switch jc.Type {
	case "", "none":
		return journal.Discard{}, nil
	case "csv":
		return journal.NewCSV(jc.TradesFile, jc.EquityFile)
	case "sqlite":
		return journal.NewSQLite(jc.DBPath)
	}
	return nil, errors.New("unknown journal type " + jc.Type)
}
