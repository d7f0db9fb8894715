package exrandom

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cartazio/exrandom-mirror/mt19937"
)

func TestExponentialValueNonNegative(t *testing.T) {
	ds, err := NewRandDigitSource(2)
	require.NoError(t, err)
	s := NewExponentialSampler(ds)
	g := mt19937.New()
	for i := 0; i < 1000; i++ {
		v, err := ExponentialValue[float64](s, g)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, 0.0)
	}
}

func TestExponentialValueMeanNearOne(t *testing.T) {
	ds, err := NewRandDigitSource(2)
	require.NoError(t, err)
	s := NewExponentialSampler(ds)
	g := mt19937.New()
	const n = 4000
	sum := 0.0
	for i := 0; i < n; i++ {
		v, err := ExponentialValue[float64](s, g)
		require.NoError(t, err)
		sum += v
	}
	require.InDelta(t, 1.0, sum/n, 0.15)
}

func TestExponentialBitOptimizedAndPlainAgreeInDistributionMean(t *testing.T) {
	ds1, err := NewRandDigitSource(2)
	require.NoError(t, err)
	ds2, err := NewRandDigitSource(2)
	require.NoError(t, err)

	fast := NewExponentialSampler(ds1)
	slow := NewExponentialSampler(ds2)
	slow.BitOptimized = false

	g1 := mt19937.New()
	g2 := mt19937.New()
	const n = 3000
	var sum1, sum2 float64
	for i := 0; i < n; i++ {
		v1, err := ExponentialValue[float64](fast, g1)
		require.NoError(t, err)
		v2, err := ExponentialValue[float64](slow, g2)
		require.NoError(t, err)
		sum1 += v1
		sum2 += v2
	}
	require.InDelta(t, sum1/n, sum2/n, 0.2)
}
