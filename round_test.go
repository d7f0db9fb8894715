package exrandom

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cartazio/exrandom-mirror/mt19937"
)

func TestValueRequiresPowerOfTwoBase(t *testing.T) {
	ds, err := NewRandDigitSource(10)
	require.NoError(t, err)
	x := NewURand(ds)
	x.Init()
	require.Panics(t, func() {
		Value[float64](x, mt19937.New(), ToNearest)
	})
}

func TestValueOfIntegerFallsInItsUnitInterval(t *testing.T) {
	// x denotes 3 + f for an unresolved f in [0,1); Value must draw enough
	// fractional digits from g to round that continuum to float64 precision,
	// so the result lands in [3,4] (4 only in the vanishing all-ones case).
	ds, err := NewRandDigitSource(2)
	require.NoError(t, err)
	x := NewURand(ds)
	x.Init()
	x.SetInteger(3)
	g := mt19937.New()
	v, _ := Value[float64](x, g, ToNearest)
	require.True(t, v >= 3.0 && v <= 4.0, "v=%v", v)
}

func TestValueNegativeSign(t *testing.T) {
	ds, err := NewRandDigitSource(2)
	require.NoError(t, err)
	x := NewURand(ds)
	x.Init()
	x.SetInteger(7)
	x.Negate()
	g := mt19937.New()
	v, _ := Value[float64](x, g, ToNearest)
	require.True(t, v <= -7.0 && v >= -8.0, "v=%v", v)
}

func TestMidpointWithinRange(t *testing.T) {
	ds, err := NewRandDigitSource(2)
	require.NoError(t, err)
	g := mt19937.New()
	x := NewURand(ds)
	x.Init()
	x.Digit(g, 0)
	x.Digit(g, 1)
	lo, hi := Range[float64](x)
	mid := Midpoint[float64](x)
	require.True(t, mid >= lo && mid <= hi)
}
