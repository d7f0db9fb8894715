package exrandom

import "strconv"

// IRand is a lazily-materialized integer, uniform on a closed interval
// [a, a+d-1] where d = b^l for the DigitSource's base b. l counts the
// digits still needed to pin the value down exactly; comparisons against a
// rational draw only as many of those digits as they need to decide the
// question.
type IRand struct {
	a, d, l int64
	ds      DigitSource
}

// NewIRand returns an IRand representing the (fixed) value 0, borrowing ds.
func NewIRand(ds DigitSource) *IRand {
	return &IRand{a: 0, d: 1, l: 0, ds: ds}
}

// Init sets h to a fresh integer uniform on [0, m), m > 0, using Lumbroso's
// algorithm generalized to base b, with early stopping: rather than drawing
// digits until j is pinned down exactly, it stops as soon as the current
// range narrows to a power of b, and returns that narrowed range directly.
func (h *IRand) Init(g Source, m int64) *IRand {
	if m <= 0 {
		m = 1
	}
	base := int64(h.ds.Base())
	v, c := int64(1), int64(0)
	for {
		h.l = 0
		w, a, d := v, c, int64(1)
		for {
			if w >= m {
				j := (a / m) * m
				a -= j
				w -= j
				if w >= m {
					if a+d <= m {
						h.a, h.d = a, d
						return h
					}
					break
				}
			}
			w *= base
			a *= base
			d *= base
			h.l++
		}
		j := (v / m) * m
		v -= j
		c -= j
		v *= base
		c *= base
		c += int64(h.ds.Draw(g))
	}
}

// Call fully materializes h by drawing whatever digits remain, and returns
// its value.
func (h *IRand) Call(g Source) int64 {
	for h.l > 0 {
		h.Refine(g)
	}
	return h.a
}

// Min returns the current lower end of h's range.
func (h *IRand) Min() int64 { return h.a }

// Max returns the current upper end of h's range.
func (h *IRand) Max() int64 { return h.a + h.d - 1 }

// Entropy returns the number of digits still needed to pin down h's value.
func (h *IRand) Entropy() int64 { return h.l }

// Negate replaces h's range with its negation.
func (h *IRand) Negate() { h.a = -h.Max() }

// Add shifts h's range by the constant c.
func (h *IRand) Add(c int64) { h.a += c }

// LessThan reports whether h < m/n (n > 0), refining h as needed.
func (h *IRand) LessThan(g Source, m, n int64) bool {
	for {
		if n*h.Max() < m {
			return true
		}
		if !(n*h.Min() < m) {
			return false
		}
		h.Refine(g)
	}
}

// LessThanEqual reports whether h <= m/n (n > 0).
func (h *IRand) LessThanEqual(g Source, m, n int64) bool {
	return h.LessThan(g, m+1, n)
}

// GreaterThan reports whether h > m/n (n > 0).
func (h *IRand) GreaterThan(g Source, m, n int64) bool {
	return !h.LessThanEqual(g, m, n)
}

// GreaterThanEqual reports whether h >= m/n (n > 0).
func (h *IRand) GreaterThanEqual(g Source, m, n int64) bool {
	return !h.LessThan(g, m, n)
}

// Refine draws one more digit, narrowing h's range by a factor of the
// DigitSource's base.
func (h *IRand) Refine(g Source) {
	if h.l > 0 {
		h.l--
		h.d /= int64(h.ds.Base())
		h.a += int64(h.ds.Draw(g)) * h.d
	}
}

// String renders h as "min+[0,width)" while entropy remains, or the fixed
// value once it reaches zero.
func (h *IRand) String() string {
	if h.l != 0 {
		return strconv.FormatInt(h.a, 10) + "+[0," + strconv.FormatInt(h.Max()-h.a+1, 10) + ")"
	}
	return strconv.FormatInt(h.a, 10)
}
