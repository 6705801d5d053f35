package indicators

import (
	"fmt"

	"github.com/phill-ed/forex-analytics-dashboard/market"
)

// RSI computes the Relative Strength Index over closing prices using Wilder
// smoothing: the initial average gain/loss is the mean over the first period
// price changes, then avg = (avg*(period-1) + x) / period for each later
// step. RSI = 100 - 100/(1 + avgGain/avgLoss).
//
// When avgLoss is zero the RSI is 100 by definition, not a division fault.
// That includes a perfectly flat series (zero gains and zero losses), which
// therefore reads 100 rather than 50.
//
// Values before index period are not available (a price change needs the
// previous close, so period changes consume period+1 candles).
func RSI(s *market.Series, period int) (Line, error) {
	if period < 1 {
		return Line{}, fmt.Errorf("%w: RSI period must be positive, got %d", ErrInvalidParameter, period)
	}
	if s.Len() < period+1 {
		return Line{}, fmt.Errorf("%w: RSI(%d) needs %d candles, got %d", ErrInsufficientData, period, period+1, s.Len())
	}

	values := make([]float64, s.Len())

	var avgGain, avgLoss float64
	for i := 1; i <= period; i++ {
		change := s.At(i).Close - s.At(i-1).Close
		if change > 0 {
			avgGain += change
		} else {
			avgLoss -= change
		}
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)
	values[period] = rsiValue(avgGain, avgLoss)

	for i := period + 1; i < s.Len(); i++ {
		change := s.At(i).Close - s.At(i-1).Close
		gain, loss := 0.0, 0.0
		if change > 0 {
			gain = change
		} else {
			loss = -change
		}
		avgGain = (avgGain*float64(period-1) + gain) / float64(period)
		avgLoss = (avgLoss*float64(period-1) + loss) / float64(period)
		values[i] = rsiValue(avgGain, avgLoss)
	}

	return newLine(values, period), nil
}

func rsiValue(avgGain, avgLoss float64) float64 {
	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}
