package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMAStreamMatchesSeriesSMA(t *testing.T) {
	s := seriesFromCloses(t, wavyCloses(40)...)

	line, err := SMA(s, 5)
	require.NoError(t, err)

	stream := NewSMAStream(5)
	assert.Equal(t, "SMA(5)", stream.Name())
	assert.Equal(t, 5, stream.Warmup())

	for i := 0; i < s.Len(); i++ {
		stream.Update(s.At(i))

		want, ok := line.ValueAt(i)
		if !ok {
			assert.False(t, stream.Ready(), "index %d", i)
			assert.Equal(t, 0.0, stream.Value())
			continue
		}
		require.True(t, stream.Ready(), "index %d", i)
		assert.InDelta(t, want, stream.Value(), 1e-12, "index %d", i)
	}
}

func TestEMAStreamMatchesSeriesEMA(t *testing.T) {
	s := seriesFromCloses(t, wavyCloses(40)...)

	line, err := EMA(s, 10)
	require.NoError(t, err)

	stream := NewEMAStream(10)
	assert.Equal(t, "EMA(10)", stream.Name())

	for i := 0; i < s.Len(); i++ {
		stream.Update(s.At(i))

		want, ok := line.ValueAt(i)
		if !ok {
			assert.False(t, stream.Ready(), "index %d", i)
			continue
		}
		require.True(t, stream.Ready(), "index %d", i)
		assert.InDelta(t, want, stream.Value(), 1e-12, "index %d", i)
	}
}

func TestStreamReset(t *testing.T) {
	s := seriesFromCloses(t, wavyCloses(20)...)

	sma := NewSMAStream(5)
	ema := NewEMAStream(5)
	for i := 0; i < s.Len(); i++ {
		sma.Update(s.At(i))
		ema.Update(s.At(i))
	}
	require.True(t, sma.Ready())
	require.True(t, ema.Ready())

	sma.Reset()
	ema.Reset()
	assert.False(t, sma.Ready())
	assert.False(t, ema.Ready())
	assert.Equal(t, 0.0, sma.Value())
	assert.Equal(t, 0.0, ema.Value())
}
