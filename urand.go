package exrandom

import (
	"fmt"
	"strings"
)

// URand is a partially-materialized real number, represented as
//
//	s * (n + sum_{k=0}^{K-1} d_k * b^(-k-1) + b^(-K) * U)
//
// where s is +1 or -1, n is a non-negative integer, K is the number of
// fractional digits materialized so far, each d_k is in [0,b), and U is an
// unrealized uniform deviate on [0,1). A URand therefore denotes a half-open
// real interval of width b^(-K), mapped by s; every comparison and rounding
// operation below draws exactly as many further digits as it needs to reach
// a decision, and no more.
//
// A URand borrows its DigitSource; it never owns or copies it. It borrows a
// Source (the underlying word generator) only for the duration of each call.
type URand struct {
	sign    int
	integer uint64
	digits  []uint32
	ds      DigitSource
}

// NewURand returns a URand in its initial state (sign +1, integer 0, no
// fractional digits materialized), borrowing ds.
func NewURand(ds DigitSource) *URand {
	return &URand{sign: 1, ds: ds}
}

// Init resets x to its initial state and returns x, so that callers can
// write x.Init().LessThan(g, y).
func (x *URand) Init() *URand {
	x.sign = 1
	x.integer = 0
	x.digits = x.digits[:0]
	return x
}

// Swap exchanges the sign, integer part, and fractional digits of x and t.
// The DigitSource is not swapped; x and t must already share one.
func (x *URand) Swap(t *URand) {
	if x == t {
		return
	}
	x.sign, t.sign = t.sign, x.sign
	x.integer, t.integer = t.integer, x.integer
	x.digits, t.digits = t.digits, x.digits
}

// Sign returns +1 or -1.
func (x *URand) Sign() int { return x.sign }

// Negate flips the sign of x.
func (x *URand) Negate() { x.sign = -x.sign }

// Integer returns the integer part of x.
func (x *URand) Integer() uint64 { return x.integer }

// SetInteger sets the integer part of x.
func (x *URand) SetInteger(n uint64) { x.integer = n }

// NDigits returns the number of fractional digits materialized so far.
func (x *URand) NDigits() int { return len(x.digits) }

// DigitSource returns the DigitSource borrowed by x.
func (x *URand) DigitSource() DigitSource { return x.ds }

// Digit returns the k'th fractional digit, drawing whatever digits are
// missing up to and including k.
func (x *URand) Digit(g Source, k int) uint32 {
	for i := len(x.digits); i <= k; i++ {
		x.digits = append(x.digits, x.ds.Draw(g))
	}
	return x.digits[k]
}

// RawDigit returns the k'th fractional digit, which must already have been
// materialized by a prior call to Digit.
func (x *URand) RawDigit(k int) uint32 { return x.digits[k] }

// AddRawDigit adds delta to the (already materialized) k'th digit. It exists
// to support Algorithm E's half-boundary correction in the exponential
// sampler.
func (x *URand) AddRawDigit(k int, delta uint32) { x.digits[k] += delta }

// LessThan reports whether x < t, drawing digits of both from g as needed.
// Comparing x against itself always returns false. For unequal-valued reals
// this terminates with probability one.
func (x *URand) LessThan(g Source, t *URand) bool {
	if x == t {
		return false
	}
	if x.sign != t.sign {
		return x.sign < t.sign
	}
	if x.integer != t.integer {
		return (x.sign < 0) != (x.integer < t.integer)
	}
	for k := 0; ; k++ {
		a := x.Digit(g, k)
		b := t.Digit(g, k)
		if a != b {
			return (x.sign < 0) != (a < b)
		}
	}
}

// LessThanHalf reports whether x < 1/2.
func (x *URand) LessThanHalf(g Source) bool {
	if x.sign < 0 {
		return true
	}
	if x.integer > 0 {
		return false
	}
	return x.Truncate(g, 0)
}

// Truncate reports whether x can be rounded towards zero at its k'th
// fractional digit, i.e. whether x < (d_0...d_{k-1} + half*b^-k) * sign. It
// implements exact round-to-nearest-even: ties (only possible when b is
// odd and d_k = (b-1)/2, the digit that straddles one half) are broken by
// recursing into d_{k+1}, so the
// decision never depends on digits that turn out not to matter.
func (x *URand) Truncate(g Source, k int) bool {
	bm1 := uint32(x.ds.Base() - 1)
	for {
		d := x.Digit(g, k)
		if d <= (bm1-1)/2 {
			return true
		}
		if d > bm1/2 {
			return false
		}
		k++
	}
}

// Compare tests x against the fractions u1/v and u2/v, where 0 <= u1 < u2
// and v > 0. It returns -sign(x) if |x| < u1/v, +sign(x) if |x| > u2/v, and
// 0 if u1/v <= |x| <= u2/v. All arithmetic is exact int64, reduced modulo v
// as digits of x are consumed; the caller is responsible for ensuring no
// intermediate product overflows 64 bits.
func (x *URand) Compare(g Source, u1, u2, v int64) int {
	base := int64(x.ds.Base())
	s := int64(x.sign)
	n := int64(x.integer)
	u1 = max64(0, s*u1-n*v)
	u2 = min64(v, s*u2-n*v)
	for k := 0; ; k++ {
		if u1 >= v {
			return -x.sign
		}
		if u2 <= 0 {
			return x.sign
		}
		if u1 <= 0 && u2 >= v {
			return 0
		}
		d := int64(x.Digit(g, k))
		u1 = max64(0, u1*base-d*v)
		u2 = min64(v, u2*base-d*v)
	}
}

// LessThanIRand reports whether x < (u0 + c*h)/v, where h is an IRand and
// v, c > 0. It repeatedly narrows h until Compare can decide the question.
func (x *URand) LessThanIRand(g Source, u0, c, v int64, h *IRand) bool {
	for {
		r := x.Compare(g, u0+h.Min()*c, u0+h.Max()*c, v)
		if r < 0 {
			return true
		}
		if r > 0 {
			return false
		}
		h.Refine(g)
	}
}

// Rational returns the lower end of the interval denoted by x, truncated to
// its first k (already-materialized) fractional digits, as a fraction with
// denominator b^k. The fraction is not reduced to lowest terms, so the
// upper end is simply (numerator+1)/denominator. Requires base <= 256.
func (x *URand) Rational(k int) (num, den int64) {
	if x.ds.Base() > 256 {
		panic("exrandom: Rational requires base <= 256")
	}
	base := int64(x.ds.Base())
	num = int64(x.integer)
	den = 1
	for j := 0; j < k; j++ {
		num = base*num + int64(x.digits[j])
		den *= base
	}
	if x.sign < 0 {
		num = -num - 1
	}
	return num, den
}

// RationalDraw is Rational, but first draws whatever digits up to the
// (k-1)'th are still missing.
func (x *URand) RationalDraw(g Source, k int) (num, den int64) {
	if k > 0 {
		x.Digit(g, k-1)
	}
	return x.Rational(k)
}

// String prints x in u-rand format: sign, integer part, '.', the
// materialized fractional digits in hex, and a trailing ellipsis to mark the
// undrawn suffix. Only defined for base <= 16 or a power of 16.
func (x *URand) String() string {
	return x.bareString() + "..."
}

// PrintFixed prints x rounded to k fractional digits, drawing whatever
// digits Truncate needs to decide the rounding direction. The trailing
// "(+)" marks that the printed magnitude was rounded up (the true magnitude
// lies below it), and "(-)" that it was rounded down (the true magnitude
// lies above it).
func (x *URand) PrintFixed(g Source, k int) string {
	trunc := x.Truncate(g, k)
	tmp := &URand{sign: x.sign, integer: x.integer, ds: x.ds}
	tmp.digits = append(tmp.digits, x.digits[:k]...)
	for len(tmp.digits) < k {
		tmp.digits = append(tmp.digits, 0)
	}
	if !trunc {
		bm1 := uint32(x.ds.Base() - 1)
		j := k
		carried := false
		for j > 0 {
			j--
			if tmp.digits[j] < bm1 {
				tmp.digits[j]++
				carried = true
				break
			}
			tmp.digits[j] = 0
		}
		if !carried {
			tmp.integer++
		}
	}
	suffix := "(-)"
	if !trunc {
		suffix = "(+)"
	}
	return tmp.bareString() + suffix
}

func (x *URand) bareString() string {
	bits := x.ds.Bits()
	allowed := x.ds.Base()-1 < 15 || (x.ds.PowerOfTwo() && bits%4 == 0)
	if !allowed {
		panic("exrandom: String output requires base < 16 or a power of 16")
	}
	var b strings.Builder
	if x.sign < 0 {
		b.WriteByte('-')
	} else {
		b.WriteByte('+')
	}
	fmt.Fprintf(&b, "%x", x.integer)
	if len(x.digits) > 0 {
		b.WriteByte('.')
		width := (bits + 3) / 4
		for _, d := range x.digits {
			fmt.Fprintf(&b, "%0*x", width, d)
		}
	}
	return b.String()
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
