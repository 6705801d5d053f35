package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRSIBounds(t *testing.T) {
	closes := []float64{1.0831, 1.0812, 1.0855, 1.0790, 1.0804, 1.0862, 1.0827,
		1.0845, 1.0799, 1.0810, 1.0822, 1.0808, 1.0835, 1.0818, 1.0840, 1.0829}
	s := seriesFromCloses(t, closes...)

	rsi, err := RSI(s, 14)
	require.NoError(t, err)

	assert.Equal(t, 14, rsi.FirstValid())
	for i := 14; i < s.Len(); i++ {
		v, ok := rsi.ValueAt(i)
		require.True(t, ok)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 100.0)
	}
}

func TestRSIMonotonicUp(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 1.08 + float64(i)*0.001
	}
	s := seriesFromCloses(t, closes...)

	rsi, err := RSI(s, 14)
	require.NoError(t, err)

	v, ok := rsi.Last()
	require.True(t, ok)
	assert.Equal(t, 100.0, v, "no losses at all pins RSI to 100")
}

func TestRSIMonotonicDown(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 1.10 - float64(i)*0.001
	}
	s := seriesFromCloses(t, closes...)

	rsi, err := RSI(s, 14)
	require.NoError(t, err)

	v, ok := rsi.Last()
	require.True(t, ok)
	assert.Equal(t, 0.0, v, "no gains at all pins RSI to 0")
}

// A single-step jump after balanced history: RSI sits near 50 while gains
// and losses cancel, then spikes on the jump.
func TestRSIJumpScenario(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		// alternate +-1 pip around 1.0800
		if i%2 == 0 {
			closes[i] = 1.0800
		} else {
			closes[i] = 1.0799
		}
	}
	closes = append(closes, 1.0900)
	s := seriesFromCloses(t, closes...)

	rsi, err := RSI(s, 14)
	require.NoError(t, err)

	before, ok := rsi.ValueAt(s.Len() - 2)
	require.True(t, ok)
	assert.InDelta(t, 50.0, before, 10.0)

	after, ok := rsi.Last()
	require.True(t, ok)
	assert.Greater(t, after, 90.0)
	assert.LessOrEqual(t, after, 100.0)
}

func TestRSIErrors(t *testing.T) {
	s := seriesFromCloses(t, 1, 2, 3)

	_, err := RSI(s, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = RSI(s, 3)
	assert.ErrorIs(t, err, ErrInsufficientData)
}
