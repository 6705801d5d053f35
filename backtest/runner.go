// Package backtest replays a price series through a moving-average crossover
// rule and reports the discrete buy/sell events plus summary statistics.
package backtest

import (
	"fmt"
	"time"

	"github.com/phill-ed/forex-analytics-dashboard/indicators"
	"github.com/phill-ed/forex-analytics-dashboard/market"
)

// Side classifies a crossover event.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// Event is one crossover observed during replay.
type Event struct {
	Index int
	Time  time.Time
	Side  Side
	Price float64
}

// Runner replays a series through an SMA crossover rule, candle by candle in
// chronological order. A BUY fires when the short average crosses from below
// to above the long average between two consecutive indices; SELL is the
// mirror. Each index is evaluated using only candles up to that index, so no
// event can be informed by future data.
type Runner struct {
	Series *market.Series
	Short  int
	Long   int
}

// Run executes the replay and returns the ordered event list with summary
// statistics.
func (r *Runner) Run() (Result, error) {
	if r.Series == nil {
		return Result{}, fmt.Errorf("backtest: Series is required")
	}
	if r.Short < 1 || r.Long < 1 {
		return Result{}, fmt.Errorf("%w: crossover periods must be positive (short=%d long=%d)",
			indicators.ErrInvalidParameter, r.Short, r.Long)
	}
	if r.Short >= r.Long {
		return Result{}, fmt.Errorf("%w: short period %d must be below long period %d",
			indicators.ErrInvalidParameter, r.Short, r.Long)
	}
	// A cross needs two consecutive indices where both averages exist.
	if r.Series.Len() < r.Long+1 {
		return Result{}, fmt.Errorf("%w: crossover(%d/%d) needs %d candles, got %d",
			indicators.ErrInsufficientData, r.Short, r.Long, r.Long+1, r.Series.Len())
	}

	short := indicators.NewSMAStream(r.Short)
	long := indicators.NewSMAStream(r.Long)

	var events []Event
	var prevDiff float64
	havePrev := false

	for i := 0; i < r.Series.Len(); i++ {
		c := r.Series.At(i)
		short.Update(c)
		long.Update(c)

		if !short.Ready() || !long.Ready() {
			continue
		}

		diff := short.Value() - long.Value()

		if havePrev {
			// short[i-1] <= long[i-1] && short[i] > long[i], and the mirror.
			if prevDiff <= 0 && diff > 0 {
				events = append(events, Event{Index: i, Time: c.Time, Side: SideBuy, Price: c.Close})
			} else if prevDiff >= 0 && diff < 0 {
				events = append(events, Event{Index: i, Time: c.Time, Side: SideSell, Price: c.Close})
			}
		}

		prevDiff = diff
		havePrev = true
	}

	res := Result{
		Pair:   r.Series.Pair(),
		Short:  r.Short,
		Long:   r.Long,
		Events: events,
		Start:  r.Series.At(0).Time,
		End:    r.Series.Last().Time,
	}
	res.summarize(r.Series.Last().Close)

	return res, nil
}

// summarize replays the event list once: counts events and computes the net
// return of holding one unit long from each BUY until the next SELL. A
// position still open at the end is marked to the final close.
func (res *Result) summarize(finalClose float64) {
	entry := 0.0
	open := false

	for _, ev := range res.Events {
		switch ev.Side {
		case SideBuy:
			res.Buys++
			if !open {
				entry = ev.Price
				open = true
			}
		case SideSell:
			res.Sells++
			if open {
				res.NetReturn += ev.Price - entry
				open = false
			}
		}
	}

	if open {
		res.NetReturn += finalClose - entry
	}
}
