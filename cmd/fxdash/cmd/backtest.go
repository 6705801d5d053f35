package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/phill-ed/forex-analytics-dashboard/backtest"
	"github.com/phill-ed/forex-analytics-dashboard/journal"
	"github.com/phill-ed/forex-analytics-dashboard/market"
	"github.com/phill-ed/forex-analytics-dashboard/pkg/id"
)

var backtestCmd = &cobra.Command{
	Use:   "backtest",
	Short: "Replay a moving-average crossover rule over candle history",
	Long: `Backtest replays candle history index by index through an SMA crossover
rule and reports every buy/sell event with summary statistics.

Example:
  fxdash backtest --candles data/eurusd_h1.csv --short 20 --long 50`,
	RunE: runBacktestCmd,
}

var (
	btCandlesPath string
	btPair        string
	btShort       int
	btLong        int
	btDBPath      string
)

func init() {
	rootCmd.AddCommand(backtestCmd)

	backtestCmd.Flags().StringVarP(&btCandlesPath, "candles", "c", "", "path to candle CSV (time,open,high,low,close[,volume]) (required)")
	backtestCmd.Flags().StringVarP(&btPair, "pair", "p", "EUR_USD", "currency pair identifier")
	backtestCmd.Flags().IntVar(&btShort, "short", 20, "short SMA period")
	backtestCmd.Flags().IntVar(&btLong, "long", 50, "long SMA period")
	backtestCmd.Flags().StringVarP(&btDBPath, "db", "d", "", "optional SQLite journal DB to record the run")

	backtestCmd.MarkFlagRequired("candles")
}

func runBacktestCmd(cmd *cobra.Command, args []string) error {
	series, err := market.LoadCSV(btCandlesPath, btPair)
	if err != nil {
		return fmt.Errorf("load candles: %w", err)
	}

	runner := &backtest.Runner{Series: series, Short: btShort, Long: btLong}
	res, err := runner.Run()
	if err != nil {
		return err
	}

	res.Print(cmd.OutOrStdout())

	if btDBPath != "" {
		j, err := journal.NewSQLite(btDBPath)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()

		run := journal.NewBacktestRun(id.New(), time.Now().UTC(), res)
		if err := j.RecordBacktest(run); err != nil {
			return fmt.Errorf("record run: %w", err)
		}
		cmd.Printf("Recorded run %s to %s\n", run.RunID, btDBPath)
	}

	return nil
}
