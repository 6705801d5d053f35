package indicators

import (
	"fmt"

	"github.com/phill-ed/forex-analytics-dashboard/market"
)

// Stream computes a single value incrementally from closed candles. It is
// deterministic, so the same candle sequence always yields the same values,
// which makes streams safe to use inside backtests.
type Stream interface {
	// Name returns a stable identifier like "SMA(20)" or "EMA(50)".
	Name() string

	// Warmup returns how many updates are needed before Ready() can be true.
	Warmup() int

	// Reset clears all internal state.
	Reset()

	// Update consumes the next closed candle.
	Update(c market.Candle)

	// Ready reports whether Value() is meaningful (warmup completed).
	Ready() bool

	// Value returns the current value. Callers should always check Ready();
	// before warmup it returns 0.
	Value() float64
}

// SMAStream is a streaming Simple Moving Average.
type SMAStream struct {
	period int
	closes []float64
}

// NewSMAStream creates a streaming SMA with the given period.
func NewSMAStream(period int) *SMAStream {
	return &SMAStream{
		period: period,
		closes: make([]float64, 0, period),
	}
}

func (m *SMAStream) Name() string {
	return fmt.Sprintf("SMA(%d)", m.period)
}

func (m *SMAStream) Warmup() int {
	return m.period
}

func (m *SMAStream) Reset() {
	m.closes = m.closes[:0]
}

func (m *SMAStream) Update(c market.Candle) {
	m.closes = append(m.closes, c.Close)
	// Keep only the last 'period' closes
	if len(m.closes) > m.period {
		m.closes = m.closes[1:]
	}
}

func (m *SMAStream) Ready() bool {
	return len(m.closes) >= m.period
}

func (m *SMAStream) Value() float64 {
	if !m.Ready() {
		return 0
	}

	sum := 0.0
	for _, c := range m.closes {
		sum += c
	}
	return sum / float64(len(m.closes))
}

// EMAStream is a streaming Exponential Moving Average.
type EMAStream struct {
	period     int
	multiplier float64
	ema        float64
	count      int
	warmupSum  float64
}

// NewEMAStream creates a streaming EMA with the given period.
func NewEMAStream(period int) *EMAStream {
	return &EMAStream{
		period:     period,
		multiplier: 2.0 / float64(period+1),
	}
}

func (e *EMAStream) Name() string {
	return fmt.Sprintf("EMA(%d)", e.period)
}

func (e *EMAStream) Warmup() int {
	return e.period
}

func (e *EMAStream) Reset() {
	e.ema = 0
	e.count = 0
	e.warmupSum = 0
}

func (e *EMAStream) Update(c market.Candle) {
	if e.count < e.period {
		// During warmup, accumulate sum for the SMA seed
		e.warmupSum += c.Close
		e.count++
		if e.count == e.period {
			e.ema = e.warmupSum / float64(e.period)
		}
	} else {
		e.ema = (c.Close-e.ema)*e.multiplier + e.ema
	}
}

func (e *EMAStream) Ready() bool {
	return e.count >= e.period
}

func (e *EMAStream) Value() float64 {
	if !e.Ready() {
		return 0
	}
	return e.ema
}
