package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fxdash",
	Short: "Technical-indicator and signal-generation engine for forex price series",
	Long: `Fxdash computes technical indicators over historical forex candles and
derives rule-based trading signals from them.

It provides tools for:
  - Evaluating BUY/SELL/HOLD signals with confidence and rationale
  - Backtesting moving-average crossover rules against candle history
  - Journaling signals and backtest runs to CSV or SQLite

Data fetching, scheduling and alert delivery are left to external
collaborators; fxdash only consumes candle files they produce.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
