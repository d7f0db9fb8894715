package exrandom

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cartazio/exrandom-mirror/mt19937"
)

func TestIRandRangeIsPowerOfBase(t *testing.T) {
	ds, err := NewRandDigitSource(3)
	require.NoError(t, err)
	g := mt19937.New()
	for m := int64(1); m < 30; m++ {
		h := NewIRand(ds)
		h.Init(g, m)
		width := h.Max() - h.Min() + 1
		p := int64(1)
		for i := int64(0); i < h.Entropy(); i++ {
			p *= int64(ds.Base())
		}
		require.Equal(t, p, width, "width must be base^entropy for m=%d", m)
		require.GreaterOrEqual(t, h.Min(), int64(0))
	}
}

func TestIRandCallFullyMaterializes(t *testing.T) {
	ds, err := NewRandDigitSource(2)
	require.NoError(t, err)
	g := mt19937.New()
	h := NewIRand(ds)
	h.Init(g, 7)
	v := h.Call(g)
	require.GreaterOrEqual(t, v, int64(0))
	require.Less(t, v, int64(7))
	require.Equal(t, int64(0), h.Entropy())
}

func TestIRandLessThanAgreesWithMaterializedValue(t *testing.T) {
	ds, err := NewRandDigitSource(2)
	require.NoError(t, err)
	for trial := 1; trial <= 20; trial++ {
		g := mt19937.NewSeeded(uint32(trial))
		h := NewIRand(ds)
		h.Init(g, 100)
		v := h.Call(g)

		g2 := mt19937.NewSeeded(uint32(trial))
		h2 := NewIRand(ds)
		h2.Init(g2, 100)
		lt := h2.LessThan(g2, 50, 1)
		require.Equal(t, v < 50, lt)
	}
}

func TestIRandAddAndNegate(t *testing.T) {
	ds, err := NewRandDigitSource(4)
	require.NoError(t, err)
	g := mt19937.New()
	h := NewIRand(ds)
	h.Init(g, 5)
	h.Add(10)
	require.GreaterOrEqual(t, h.Min(), int64(10))
	h.Negate()
	require.LessOrEqual(t, h.Max(), int64(-10))
}

func TestIRandString(t *testing.T) {
	ds, err := NewRandDigitSource(4)
	require.NoError(t, err)
	g := mt19937.New()
	h := NewIRand(ds)
	h.Init(g, 5)
	if h.Entropy() > 0 {
		require.Contains(t, h.String(), "+[0,")
	} else {
		require.NotContains(t, h.String(), "+[0,")
	}
}
