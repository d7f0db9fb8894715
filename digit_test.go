package exrandom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRandDigitSourceRejectsBadBase(t *testing.T) {
	_, err := NewRandDigitSource(1)
	require.Error(t, err)
	_, err = NewRandDigitSource(uint64(1) << 33)
	require.Error(t, err)
}

func TestRandDigitSourcePowerOfTwoFastPath(t *testing.T) {
	ds, err := NewRandDigitSource(16)
	require.NoError(t, err)
	require.True(t, ds.PowerOfTwo())
	require.Equal(t, 4, ds.Bits())

	src := &fixedSource{vs: []uint32{0xf0000000, 0x00000000, 0xabcd1234}}
	for i, want := range []uint32{0xf, 0x0, 0xa} {
		d := ds.Draw(src)
		require.Equal(t, want, d, "digit %d", i)
	}
	require.EqualValues(t, 3, ds.Count())
}

func TestRandDigitSourceNonPowerOfTwoRange(t *testing.T) {
	ds, err := NewRandDigitSource(10)
	require.NoError(t, err)
	require.False(t, ds.PowerOfTwo())
	src := &fixedSource{vs: []uint32{0x12345678, 0x9abcdef0, 0x0f0f0f0f, 0xffffffff, 0xffffffff}}
	for i := 0; i < 3; i++ {
		d := ds.Draw(src)
		require.Less(t, d, uint32(10), "digit %d", i)
	}
}

func TestTableDigitSourceExhaustion(t *testing.T) {
	ts, err := NewTableDigitSource("314")
	require.NoError(t, err)
	require.Equal(t, uint32(3), ts.Draw(nil))
	require.Equal(t, uint32(1), ts.Draw(nil))
	require.Equal(t, uint32(4), ts.Draw(nil))
	require.PanicsWithValue(t, overflowSignal{}, func() { ts.Draw(nil) })
}

func TestTableDigitSourceReset(t *testing.T) {
	ts, err := NewTableDigitSource("12")
	require.NoError(t, err)
	ts.Draw(nil)
	require.NoError(t, ts.Reset(""))
	require.Equal(t, uint32(1), ts.Draw(nil), "reset with empty string rewinds the same digits")
	require.NoError(t, ts.Reset("9"))
	require.Equal(t, uint32(9), ts.Draw(nil))
}

func TestNewTableDigitSourceRejectsNonDigits(t *testing.T) {
	_, err := NewTableDigitSource("31x4")
	require.Error(t, err)
}

func TestTableDigitSourceResetRejectsNonDigits(t *testing.T) {
	ts, err := NewTableDigitSource("12")
	require.NoError(t, err)
	require.Error(t, ts.Reset("9a"))
	// t is left unchanged on a rejected reset.
	require.Equal(t, uint32(1), ts.Draw(nil))
}
