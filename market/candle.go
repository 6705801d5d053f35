// Package market holds the price history types the rest of the engine
// consumes: a single OHLC Candle and an immutable, validated Series of them.
package market

import (
	"fmt"
	"time"
)

// Candle represents one OHLC (Open, High, Low, Close) observation.
// Volume is optional; zero means "not reported".
type Candle struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// validate checks the OHLC invariant: high must cover both open and close,
// low must sit under both.
func (c Candle) validate() error {
	if c.High < c.Open || c.High < c.Close {
		return fmt.Errorf("high %.6f below open/close", c.High)
	}
	if c.Low > c.Open || c.Low > c.Close {
		return fmt.Errorf("low %.6f above open/close", c.Low)
	}
	return nil
}
