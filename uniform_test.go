package exrandom

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cartazio/exrandom-mirror/mt19937"
)

func TestUniformValueInUnitInterval(t *testing.T) {
	ds, err := NewRandDigitSource(2)
	require.NoError(t, err)
	s := NewUniformSampler(ds)
	g := mt19937.New()
	for i := 0; i < 1000; i++ {
		v, err := UniformValue[float64](s, g)
		require.NoError(t, err)
		require.True(t, v >= 0 && v < 1, "v=%v out of range", v)
	}
}

func TestUniformValueMeanNearHalf(t *testing.T) {
	ds, err := NewRandDigitSource(2)
	require.NoError(t, err)
	s := NewUniformSampler(ds)
	g := mt19937.New()
	const n = 4000
	sum := 0.0
	for i := 0; i < n; i++ {
		v, err := UniformValue[float64](s, g)
		require.NoError(t, err)
		sum += v
	}
	require.InDelta(t, 0.5, sum/n, 0.05)
}

func TestUniformGenerateResetsScratch(t *testing.T) {
	ds, err := NewRandDigitSource(2)
	require.NoError(t, err)
	s := NewUniformSampler(ds)
	g := mt19937.New()
	x := NewURand(ds)
	x.SetInteger(99)
	require.NoError(t, s.Generate(g, x))
	require.EqualValues(t, 0, x.Integer())
}
