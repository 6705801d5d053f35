package market

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidSeries reports malformed input history: empty input, timestamps
// out of order, duplicate timestamps, or a candle violating the OHLC
// invariant.
var ErrInvalidSeries = errors.New("invalid series")

// MaxSeriesLen bounds how much history a single Series will accept. The
// engine does linear scans per indicator call, so pathological inputs are
// rejected up front instead of burning CPU.
const MaxSeriesLen = 1_000_000

// Series is an ordered, immutable view over historical candles for one
// currency pair. Insertion order is chronological order; timestamps are
// strictly increasing. Once constructed it is never mutated, so concurrent
// readers need no locking.
type Series struct {
	pair    string
	candles []Candle
}

// NewSeries validates and wraps the given candles. The slice is copied so
// later mutation by the caller cannot reach into the Series.
func NewSeries(pair string, candles []Candle) (*Series, error) {
	if len(candles) == 0 {
		return nil, fmt.Errorf("%w: no candles for %s", ErrInvalidSeries, pair)
	}
	if len(candles) > MaxSeriesLen {
		return nil, fmt.Errorf("%w: %d candles exceeds limit of %d", ErrInvalidSeries, len(candles), MaxSeriesLen)
	}

	for i, c := range candles {
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("%w: candle %d at %s: %v", ErrInvalidSeries, i, c.Time.Format(time.RFC3339), err)
		}
		if i > 0 && !candles[i-1].Time.Before(c.Time) {
			return nil, fmt.Errorf("%w: timestamps not strictly increasing at index %d (%s then %s)",
				ErrInvalidSeries, i,
				candles[i-1].Time.Format(time.RFC3339),
				c.Time.Format(time.RFC3339))
		}
	}

	cp := make([]Candle, len(candles))
	copy(cp, candles)

	return &Series{pair: pair, candles: cp}, nil
}

// Pair returns the currency pair identifier, e.g. "EUR_USD".
func (s *Series) Pair() string { return s.pair }

// Len returns the number of candles.
func (s *Series) Len() int { return len(s.candles) }

// At returns the candle at index i. It panics on an out-of-range index the
// same way a slice would; callers index within [0, Len()).
func (s *Series) At(i int) Candle { return s.candles[i] }

// Last returns the most recent candle.
func (s *Series) Last() Candle { return s.candles[len(s.candles)-1] }

// Closes returns a fresh slice of closing prices in chronological order.
func (s *Series) Closes() []float64 {
	out := make([]float64, len(s.candles))
	for i, c := range s.candles {
		out[i] = c.Close
	}
	return out
}

// Window returns the sub-series covering indices [from, to). The candles are
// already validated, so only the bounds are checked.
func (s *Series) Window(from, to int) (*Series, error) {
	if from < 0 || to > len(s.candles) || from >= to {
		return nil, fmt.Errorf("%w: window [%d,%d) out of range for %d candles",
			ErrInvalidSeries, from, to, len(s.candles))
	}

	cp := make([]Candle, to-from)
	copy(cp, s.candles[from:to])

	return &Series{pair: s.pair, candles: cp}, nil
}
