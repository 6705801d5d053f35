// Package indicators provides technical analysis indicators computed over a
// market.Series. All functions are pure: the same series and parameters
// always produce the same output and the input is never mutated.
//
// Every output is a Line (or a struct of Lines) aligned 1:1 with the source
// series. Positions before an indicator's warm-up are explicitly "not yet
// available" and never reported as zero — zero is a valid MACD or RSI value
// and must stay distinguishable from undefined.
package indicators

import "errors"

var (
	// ErrInvalidParameter reports a non-positive period, a multiplier <= 0,
	// or a fast period that is not shorter than the slow one.
	ErrInvalidParameter = errors.New("invalid indicator parameter")

	// ErrInsufficientData reports a series shorter than the indicator's
	// warm-up window.
	ErrInsufficientData = errors.New("insufficient data")
)

// Line is one indicator output series aligned with its source series.
// Indices below FirstValid carry no meaningful value.
type Line struct {
	firstValid int
	values     []float64
}

func newLine(values []float64, firstValid int) Line {
	return Line{firstValid: firstValid, values: values}
}

// Len returns the line length, which always equals the source series length.
func (l Line) Len() int { return len(l.values) }

// FirstValid returns the first index with a defined value.
func (l Line) FirstValid() int { return l.firstValid }

// ValueAt returns the value at index i and whether it is defined.
func (l Line) ValueAt(i int) (float64, bool) {
	if i < l.firstValid || i >= len(l.values) {
		return 0, false
	}
	return l.values[i], true
}

// Last returns the most recent value and whether it is defined.
func (l Line) Last() (float64, bool) {
	return l.ValueAt(len(l.values) - 1)
}
