package indicators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBollinger(t *testing.T) {
	s := seriesFromCloses(t, 1, 2, 3, 4, 5)

	bands, err := Bollinger(s, 5, 2)
	require.NoError(t, err)

	mid, ok := bands.Middle.ValueAt(4)
	require.True(t, ok)
	assert.InDelta(t, 3.0, mid, 1e-12)

	// population variance of {1..5} is 2
	sd := math.Sqrt(2)
	up, ok := bands.Upper.ValueAt(4)
	require.True(t, ok)
	assert.InDelta(t, 3+2*sd, up, 1e-12)

	lo, ok := bands.Lower.ValueAt(4)
	require.True(t, ok)
	assert.InDelta(t, 3-2*sd, lo, 1e-12)
}

func TestBollingerOrdering(t *testing.T) {
	s := seriesFromCloses(t, wavyCloses(60)...)

	bands, err := Bollinger(s, 20, 2)
	require.NoError(t, err)

	for i := bands.Middle.FirstValid(); i < s.Len(); i++ {
		up, ok := bands.Upper.ValueAt(i)
		require.True(t, ok)
		mid, ok := bands.Middle.ValueAt(i)
		require.True(t, ok)
		lo, ok := bands.Lower.ValueAt(i)
		require.True(t, ok)

		assert.GreaterOrEqual(t, up, mid, "index %d", i)
		assert.GreaterOrEqual(t, mid, lo, "index %d", i)
	}
}

func TestBollingerErrors(t *testing.T) {
	s := seriesFromCloses(t, 1, 2, 3)

	_, err := Bollinger(s, 0, 2)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Bollinger(s, 3, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Bollinger(s, 5, 2)
	assert.ErrorIs(t, err, ErrInsufficientData)
}
