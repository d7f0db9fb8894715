package exrandom

// ExponentialSampler samples exactly from the unit exponential distribution
// P(x) = exp(-x), x > 0, via von Neumann's method (Algorithm V), or its
// bit-optimized variant (Algorithm E) when BitOptimized is true, which
// requires an even base.
//
// A simple rejection method (F, below) produces the fractional part of the
// result with the 1/2 bit folded in as a rejection count; the count of
// rejections gives the multiples of 1/2 that make up the integer part.
// Bit-optimized mode bails out of F early whenever the candidate is >= 1/2,
// folding that comparison's result directly into the integer part instead
// of running the rejection loop on it, which roughly halves the expected
// digit consumption.
type ExponentialSampler struct {
	ds           DigitSource
	BitOptimized bool
	v, w         *URand
}

// NewExponentialSampler constructs a sampler drawing digits from ds, with
// Algorithm E (bit-optimized) selected by default; ds's base must be even
// for Algorithm E.
func NewExponentialSampler(ds DigitSource) *ExponentialSampler {
	return &ExponentialSampler{
		ds:           ds,
		BitOptimized: true,
		v:            NewURand(ds),
		w:            NewURand(ds),
	}
}

// DigitSource returns the DigitSource borrowed by s.
func (s *ExponentialSampler) DigitSource() DigitSource { return s.ds }

// Generate sets x to a fresh exponential deviate.
func (s *ExponentialSampler) Generate(g Source, x *URand) (err error) {
	defer recoverOverflow(&err)
	k := 0
	for !s.f(g, x) {
		k++
	}
	if s.BitOptimized && k%2 != 0 {
		x.AddRawDigit(0, (uint32(s.ds.Base())-1-1)/2+1)
	}
	if s.BitOptimized {
		x.SetInteger(uint64(k / 2))
	} else {
		x.SetInteger(uint64(k))
	}
	return nil
}

// ExponentialValue samples an exponential deviate and rounds it to R.
func ExponentialValue[R Float](s *ExponentialSampler, g Source) (result R, err error) {
	defer recoverOverflow(&err)
	x := NewURand(s.ds)
	if e := s.Generate(g, x); e != nil {
		return 0, e
	}
	result, _ = Value[R](x, g, ToNearest)
	return result, nil
}

// f runs the von Neumann sub-procedure: p is initialized fresh and tested
// against alternating draws until either p is accepted (F returns true) or
// a rejection is detected (F returns false, meaning the caller should
// increment its integer-part counter and retry with a fresh p).
func (s *ExponentialSampler) f(g Source, p *URand) bool {
	p.Init()
	if s.BitOptimized && !p.LessThanHalf(g) {
		return false
	}
	if !s.w.Init().LessThan(g, p) {
		return true
	}
	for {
		if !s.v.Init().LessThan(g, s.w) {
			return false
		}
		if !s.w.Init().LessThan(g, s.v) {
			return true
		}
	}
}
