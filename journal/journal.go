// Package journal persists evaluated signals and backtest runs so a
// dashboard or notifier can pick them up later. The engine itself never
// journals; callers decide what is worth recording.
package journal

import (
	"strings"
	"time"

	"github.com/phill-ed/forex-analytics-dashboard/backtest"
	"github.com/phill-ed/forex-analytics-dashboard/signal"
)

// SignalRecord is one persisted signal.
type SignalRecord struct {
	ID         string
	Pair       string
	Time       time.Time
	Type       string
	Confidence float64
	Entry      float64
	StopLoss   float64
	TakeProfit float64
	Reasons    string // "; "-joined rationale
}

// NewSignalRecord flattens a signal for persistence under the given ID.
func NewSignalRecord(id string, s signal.Signal) SignalRecord {
	return SignalRecord{
		ID:         id,
		Pair:       s.Pair,
		Time:       s.Time,
		Type:       string(s.Type),
		Confidence: s.Confidence,
		Entry:      s.Entry,
		StopLoss:   s.StopLoss,
		TakeProfit: s.TakeProfit,
		Reasons:    strings.Join(s.Reasons, "; "),
	}
}

// BacktestRun is one persisted crossover replay with its events.
type BacktestRun struct {
	RunID   string
	Created time.Time
	Pair    string
	Short   int
	Long    int

	Buys      int
	Sells     int
	NetReturn float64

	Start time.Time
	End   time.Time

	Events []backtest.Event
}

// NewBacktestRun flattens a backtest result for persistence.
func NewBacktestRun(runID string, created time.Time, res backtest.Result) BacktestRun {
	return BacktestRun{
		RunID:     runID,
		Created:   created,
		Pair:      res.Pair,
		Short:     res.Short,
		Long:      res.Long,
		Buys:      res.Buys,
		Sells:     res.Sells,
		NetReturn: res.NetReturn,
		Start:     res.Start,
		End:       res.End,
		Events:    res.Events,
	}
}

type Journal interface {
	RecordSignal(SignalRecord) error
	RecordBacktest(BacktestRun) error
	Close() error
}
