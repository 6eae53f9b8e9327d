package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "stocksim",
	Short: "An interactive paper stock trading simulator",
	Long: `Stocksim runs a small synthetic stock market in memory and lets you
trade it from a menu.

Prices take a random step every time the menu is shown. You start with
cash, buy and sell at the current price and can check the value of your
portfolio at any time. Nothing is saved between runs; fills can optionally
be written to a CSV or SQLite journal for later review.

Running stocksim with no subcommand starts a session with default settings.`,
	SilenceUsage: true,
	RunE:         runPlay,
}

var (
	configPath string
	logLevel   string
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML or JSON config file (optional)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug|info|warn|error (overrides config)")
}
