package indicators

import (
	"fmt"
	"math"

	"github.com/phill-ed/forex-analytics-dashboard/market"
)

// Bands holds the three Bollinger Band lines.
type Bands struct {
	Upper  Line
	Middle Line // SMA(period)
	Lower  Line
}

// Bollinger computes Bollinger Bands: a middle SMA with upper/lower bands at
// mult population standard deviations of the same window.
func Bollinger(s *market.Series, period int, mult float64) (Bands, error) {
	if period < 1 {
		return Bands{}, fmt.Errorf("%w: Bollinger period must be positive, got %d", ErrInvalidParameter, period)
	}
	if mult <= 0 {
		return Bands{}, fmt.Errorf("%w: Bollinger multiplier must be positive, got %v", ErrInvalidParameter, mult)
	}

	middle, err := SMA(s, period)
	if err != nil {
		return Bands{}, err
	}

	upper := make([]float64, s.Len())
	lower := make([]float64, s.Len())

	for i := period - 1; i < s.Len(); i++ {
		mean, _ := middle.ValueAt(i)

		variance := 0.0
		for j := i - period + 1; j <= i; j++ {
			d := s.At(j).Close - mean
			variance += d * d
		}
		sd := math.Sqrt(variance / float64(period))

		upper[i] = mean + mult*sd
		lower[i] = mean - mult*sd
	}

	return Bands{
		Upper:  newLine(upper, period-1),
		Middle: middle,
		Lower:  newLine(lower, period-1),
	}, nil
}
