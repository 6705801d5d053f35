package indicators

import (
	"fmt"
	"math"

	"github.com/phill-ed/forex-analytics-dashboard/market"
)

// ATR computes the Average True Range: a Wilder-smoothed average of the true
// range, where
//
//	trueRange[i] = max(high-low, |high-prevClose|, |low-prevClose|)
//
// The first true range needs a previous close, so the first defined value
// sits at index period and the series must hold at least period+1 candles.
func ATR(s *market.Series, period int) (Line, error) {
	if period < 1 {
		return Line{}, fmt.Errorf("%w: ATR period must be positive, got %d", ErrInvalidParameter, period)
	}
	if s.Len() < period+1 {
		return Line{}, fmt.Errorf("%w: ATR(%d) needs %d candles, got %d", ErrInsufficientData, period, period+1, s.Len())
	}

	values := make([]float64, s.Len())

	// Initial ATR is the plain average of the first period true ranges.
	sum := 0.0
	for i := 1; i <= period; i++ {
		sum += trueRange(s.At(i), s.At(i-1))
	}
	atr := sum / float64(period)
	values[period] = atr

	for i := period + 1; i < s.Len(); i++ {
		tr := trueRange(s.At(i), s.At(i-1))
		atr = (atr*float64(period-1) + tr) / float64(period)
		values[i] = atr
	}

	return newLine(values, period), nil
}

// trueRange calculates the True Range for a candle given the previous candle.
func trueRange(current, previous market.Candle) float64 {
	highLow := current.High - current.Low
	highClose := math.Abs(current.High - previous.Close)
	lowClose := math.Abs(current.Low - previous.Close)

	return math.Max(highLow, math.Max(highClose, lowClose))
}
