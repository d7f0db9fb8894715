package exrandom

import (
	"math"
	"math/bits"
)

// DigitSource draws random digits in [0, Base()) from a Source supplied at
// each call, and counts how many digits it has produced. Implementations are
// shared (borrowed) by every URand and IRand built on top of them; they are
// never copied along with the values that reference them.
type DigitSource interface {
	// Draw returns the next digit in [0, Base()), consuming g as needed.
	Draw(g Source) uint32
	// Base returns b, the radix of the digit stream.
	Base() uint64
	// Bits returns the number of bits needed to hold a digit, i.e.
	// ceil(log2(Base())). Only meaningful when PowerOfTwo is true.
	Bits() int
	// PowerOfTwo reports whether Base is an exact power of two.
	PowerOfTwo() bool
	// Count returns the number of digits drawn so far.
	Count() int64
}

// RandDigitSource is the ordinary DigitSource: it adapts a 32-bit word
// Source into a stream of base-b digits, for 2 <= b <= 2^32.
type RandDigitSource struct {
	base       uint64
	bitsNeeded int
	powerOf2   bool
	count      int64
}

// NewRandDigitSource constructs a digit source for base b, which must
// satisfy 2 <= b <= 2^32.
func NewRandDigitSource(base uint64) (*RandDigitSource, error) {
	if base < 2 || base > 1<<32 {
		return nil, NewParamError("digit source: base must satisfy 2 <= b <= 2^32")
	}
	basem1 := base - 1
	return &RandDigitSource{
		base:       base,
		bitsNeeded: bits.Len64(basem1),
		powerOf2:   base&(base-1) == 0,
	}, nil
}

func (d *RandDigitSource) Base() uint64     { return d.base }
func (d *RandDigitSource) Bits() int        { return d.bitsNeeded }
func (d *RandDigitSource) PowerOfTwo() bool { return d.powerOf2 }
func (d *RandDigitSource) Count() int64     { return d.count }

// Draw returns the next digit in [0, base). When base is a power of two, the
// digit is the top Bits() bits of one 32-bit word (the fast path); otherwise
// it is drawn with UniformUint32, i.e. Lemire's rejection sampler, which may
// consume more than one word.
func (d *RandDigitSource) Draw(g Source) uint32 {
	d.count++
	if d.powerOf2 {
		if d.bitsNeeded >= 32 {
			return g.Uint32()
		}
		return g.Uint32() >> (32 - d.bitsNeeded)
	}
	return UniformUint32(g, uint32(d.base))
}

// invBase computes 1/base as a float64, exact when base is a power of two.
func invBase(base uint64) float64 {
	if base&(base-1) == 0 {
		// base = 2^k for some k; scale a power of two exactly.
		shift := bits.Len64(base) - 1
		return math.Ldexp(1, -shift)
	}
	return 1 / float64(base)
}
