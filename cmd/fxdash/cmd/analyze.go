package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/phill-ed/forex-analytics-dashboard/config"
	"github.com/phill-ed/forex-analytics-dashboard/journal"
	"github.com/phill-ed/forex-analytics-dashboard/market"
	"github.com/phill-ed/forex-analytics-dashboard/pkg/id"
	"github.com/phill-ed/forex-analytics-dashboard/signal"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Evaluate the latest trading signal from a candle file",
	Long: `Analyze loads candle history (CSV, optionally .xz or .zip compressed),
computes the configured indicators and evaluates the most recent signal.

Example:
  fxdash analyze --candles data/eurusd_h1.csv --pair EUR_USD`,
	RunE: runAnalyze,
}

var (
	anCandlesPath string
	anPair        string
	anConfigPath  string
	anDBPath      string
)

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&anCandlesPath, "candles", "c", "", "path to candle CSV (time,open,high,low,close[,volume]) (required)")
	analyzeCmd.Flags().StringVarP(&anPair, "pair", "p", "EUR_USD", "currency pair identifier")
	analyzeCmd.Flags().StringVar(&anConfigPath, "config", "", "path to YAML/JSON config (defaults apply when empty)")
	analyzeCmd.Flags().StringVarP(&anDBPath, "db", "d", "", "optional SQLite journal DB to record the signal")

	analyzeCmd.MarkFlagRequired("candles")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(anConfigPath)
	if err != nil {
		return err
	}

	series, err := market.LoadCSV(anCandlesPath, anPair)
	if err != nil {
		return fmt.Errorf("load candles: %w", err)
	}

	ev, err := signal.NewEvaluator(cfg)
	if err != nil {
		return err
	}

	sig, err := ev.EvaluateLatest(series)
	if err != nil {
		return err
	}

	printSignal(cmd, sig)

	if anDBPath != "" {
		j, err := journal.NewSQLite(anDBPath)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer j.Close()

		rec := journal.NewSignalRecord(id.New(), sig)
		if err := j.RecordSignal(rec); err != nil {
			return fmt.Errorf("record signal: %w", err)
		}
		cmd.Printf("Recorded signal %s to %s\n", rec.ID, anDBPath)
	}

	return nil
}

func printSignal(cmd *cobra.Command, sig signal.Signal) {
	cmd.Println("==================================================")
	cmd.Printf(" %s  %s\n", sig.Pair, sig.Type)
	cmd.Println("==================================================")
	cmd.Printf("Time:          %s\n", sig.Time.Format(time.RFC3339))
	cmd.Printf("Confidence:    %.0f\n", sig.Confidence)
	cmd.Printf("Entry:         %.5f\n", sig.Entry)
	cmd.Printf("Stop Loss:     %.5f\n", sig.StopLoss)
	cmd.Printf("Take Profit:   %.5f\n", sig.TakeProfit)
	if len(sig.Reasons) > 0 {
		cmd.Printf("Rationale:     %s\n", strings.Join(sig.Reasons, "; "))
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.LoadFromFile(path)
}
