package indicators

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phill-ed/forex-analytics-dashboard/market"
)

// seriesFromCloses builds a valid hourly series where each candle's OHLC
// collapses onto its close (within a small high/low envelope).
func seriesFromCloses(t *testing.T, closes ...float64) *market.Series {
	t.Helper()

	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	candles := make([]market.Candle, len(closes))
	for i, c := range closes {
		candles[i] = market.Candle{
			Time:  start.Add(time.Duration(i) * time.Hour),
			Open:  c,
			High:  c + 0.0005,
			Low:   c - 0.0005,
			Close: c,
		}
	}

	s, err := market.NewSeries("EUR_USD", candles)
	require.NoError(t, err)
	return s
}

func constantSeries(t *testing.T, value float64, n int) *market.Series {
	t.Helper()

	closes := make([]float64, n)
	for i := range closes {
		closes[i] = value
	}
	return seriesFromCloses(t, closes...)
}

func TestLineValueAt(t *testing.T) {
	l := newLine([]float64{0, 0, 3.5, 4.5}, 2)

	_, ok := l.ValueAt(0)
	assert.False(t, ok, "warm-up index must not report a value")
	_, ok = l.ValueAt(1)
	assert.False(t, ok)

	v, ok := l.ValueAt(2)
	assert.True(t, ok)
	assert.Equal(t, 3.5, v)

	last, ok := l.Last()
	assert.True(t, ok)
	assert.Equal(t, 4.5, last)

	_, ok = l.ValueAt(-1)
	assert.False(t, ok)
	_, ok = l.ValueAt(4)
	assert.False(t, ok)

	assert.Equal(t, 4, l.Len())
	assert.Equal(t, 2, l.FirstValid())
}

// A constant price series of 100 candles at 1.2000: every indicator settles
// on the constant after warm-up. RSI reads 100 (zero average loss is the
// documented edge case), MACD reads 0, and ATR settles on the constant
// high-low range of the synthetic candles.
func TestConstantSeries(t *testing.T) {
	s := constantSeries(t, 1.2000, 100)

	sma, err := SMA(s, 20)
	require.NoError(t, err)
	v, ok := sma.Last()
	require.True(t, ok)
	assert.Equal(t, 1.2000, v)

	ema, err := EMA(s, 20)
	require.NoError(t, err)
	v, ok = ema.Last()
	require.True(t, ok)
	assert.Equal(t, 1.2000, v)

	rsi, err := RSI(s, 14)
	require.NoError(t, err)
	v, ok = rsi.Last()
	require.True(t, ok)
	assert.Equal(t, 100.0, v, "flat series has zero average loss, defined as RSI 100")

	macd, err := MACD(s, 12, 26, 9)
	require.NoError(t, err)
	v, ok = macd.Histogram.Last()
	require.True(t, ok)
	assert.Equal(t, 0.0, v)
	v, ok = macd.Line.Last()
	require.True(t, ok)
	assert.Equal(t, 0.0, v)

	bands, err := Bollinger(s, 20, 2)
	require.NoError(t, err)
	for _, line := range []Line{bands.Upper, bands.Middle, bands.Lower} {
		v, ok = line.Last()
		require.True(t, ok)
		assert.InDelta(t, 1.2000, v, 1e-12)
	}

	atr, err := ATR(s, 14)
	require.NoError(t, err)
	v, ok = atr.Last()
	require.True(t, ok)
	assert.InDelta(t, 0.001, v, 1e-12, "flat series ATR is the fixed high-low envelope")
}
