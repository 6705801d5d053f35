package indicators

import (
	"fmt"

	"github.com/phill-ed/forex-analytics-dashboard/market"
)

// SMA computes the Simple Moving Average of closing prices: the arithmetic
// mean of the last period closes ending at each index. Values before index
// period-1 are not available.
func SMA(s *market.Series, period int) (Line, error) {
	if period < 1 {
		return Line{}, fmt.Errorf("%w: SMA period must be positive, got %d", ErrInvalidParameter, period)
	}
	if s.Len() < period {
		return Line{}, fmt.Errorf("%w: SMA(%d) needs %d candles, got %d", ErrInsufficientData, period, period, s.Len())
	}

	values := make([]float64, s.Len())

	sum := 0.0
	for i := 0; i < s.Len(); i++ {
		sum += s.At(i).Close
		if i >= period {
			sum -= s.At(i - period).Close
		}
		if i >= period-1 {
			values[i] = sum / float64(period)
		}
	}

	return newLine(values, period-1), nil
}

// EMA computes the Exponential Moving Average of closing prices using
// EMA[i] = price[i]*k + EMA[i-1]*(1-k) with k = 2/(period+1). The first
// value, at index period-1, is seeded with the SMA of the first period
// closes.
func EMA(s *market.Series, period int) (Line, error) {
	if period < 1 {
		return Line{}, fmt.Errorf("%w: EMA period must be positive, got %d", ErrInvalidParameter, period)
	}
	if s.Len() < period {
		return Line{}, fmt.Errorf("%w: EMA(%d) needs %d candles, got %d", ErrInsufficientData, period, period, s.Len())
	}

	return emaOver(s.Closes(), 0, period), nil
}

// emaOver runs the EMA recurrence over values[start:], seeding with the SMA
// of the first period entries. The returned line is aligned with the full
// values slice; its first defined index is start+period-1. Callers guarantee
// len(values)-start >= period.
func emaOver(values []float64, start, period int) Line {
	out := make([]float64, len(values))
	k := 2.0 / float64(period+1)

	sum := 0.0
	for i := start; i < start+period; i++ {
		sum += values[i]
	}
	ema := sum / float64(period)
	out[start+period-1] = ema

	for i := start + period; i < len(values); i++ {
		ema = values[i]*k + ema*(1-k)
		out[i] = ema
	}

	return newLine(out, start+period-1)
}
