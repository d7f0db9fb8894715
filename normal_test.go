package exrandom

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cartazio/exrandom-mirror/mt19937"
)

func TestNewNormalSamplerAcceptsWidePowerOfTwoBase(t *testing.T) {
	ds, err := NewRandDigitSource(1 << 20) // power of two, fine
	require.NoError(t, err)
	_, err = NewNormalSampler(ds)
	require.NoError(t, err)
}

func TestNormalValueMeanNearZero(t *testing.T) {
	ds, err := NewRandDigitSource(2)
	require.NoError(t, err)
	s, err := NewNormalSampler(ds)
	require.NoError(t, err)
	g := mt19937.New()
	const n = 4000
	sum := 0.0
	for i := 0; i < n; i++ {
		v, err := NormalValue[float64](s, g)
		require.NoError(t, err)
		sum += v
	}
	require.InDelta(t, 0.0, sum/n, 0.15)
}

func TestNormalValueSymmetricSign(t *testing.T) {
	ds, err := NewRandDigitSource(2)
	require.NoError(t, err)
	s, err := NewNormalSampler(ds)
	require.NoError(t, err)
	g := mt19937.New()
	pos, neg := 0, 0
	const n = 4000
	for i := 0; i < n; i++ {
		v, err := NormalValue[float64](s, g)
		require.NoError(t, err)
		if v >= 0 {
			pos++
		} else {
			neg++
		}
	}
	require.InDelta(t, n/2, pos, float64(n)/10)
	require.InDelta(t, n/2, neg, float64(n)/10)
}
