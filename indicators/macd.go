package indicators

import (
	"fmt"

	"github.com/phill-ed/forex-analytics-dashboard/market"
)

// MACDResult carries the three MACD output lines, each aligned with the
// source series. All three report availability from the same index, the one
// where the signal EMA of the MACD line first has a value: slow + signal - 2.
type MACDResult struct {
	Line      Line // EMA(fast) - EMA(slow)
	Signal    Line // EMA(Line, signal)
	Histogram Line // Line - Signal
}

// MACD computes Moving Average Convergence Divergence over closing prices.
func MACD(s *market.Series, fast, slow, signal int) (MACDResult, error) {
	if fast < 1 || slow < 1 || signal < 1 {
		return MACDResult{}, fmt.Errorf("%w: MACD periods must be positive (fast=%d slow=%d signal=%d)",
			ErrInvalidParameter, fast, slow, signal)
	}
	if fast >= slow {
		return MACDResult{}, fmt.Errorf("%w: MACD fast period %d must be below slow period %d",
			ErrInvalidParameter, fast, slow)
	}

	warmup := slow + signal - 1
	if s.Len() < warmup {
		return MACDResult{}, fmt.Errorf("%w: MACD(%d,%d,%d) needs %d candles, got %d",
			ErrInsufficientData, fast, slow, signal, warmup, s.Len())
	}

	closes := s.Closes()
	fastEMA := emaOver(closes, 0, fast)
	slowEMA := emaOver(closes, 0, slow)

	// The MACD line exists from slow-1 onward; earlier entries stay zero and
	// are masked by the shared firstValid below.
	macd := make([]float64, s.Len())
	for i := slow - 1; i < s.Len(); i++ {
		f, _ := fastEMA.ValueAt(i)
		sl, _ := slowEMA.ValueAt(i)
		macd[i] = f - sl
	}

	sig := emaOver(macd, slow-1, signal)

	firstValid := sig.FirstValid() // slow + signal - 2

	hist := make([]float64, s.Len())
	for i := firstValid; i < s.Len(); i++ {
		sv, _ := sig.ValueAt(i)
		hist[i] = macd[i] - sv
	}

	return MACDResult{
		Line:      newLine(macd, firstValid),
		Signal:    sig,
		Histogram: newLine(hist, firstValid),
	}, nil
}
