package exrandom

// NormalSampler samples exactly from the unit normal distribution
// P(x) = exp(-x^2/2) / sqrt(2*pi), via Algorithm N (a rejection algorithm
// built from three simpler sub-algorithms, H, G/P, and C/B).
//
// The DigitSource's base must be less than 2^15 or a power of two, so that
// Algorithm C's trichotomy arithmetic cannot overflow 64 bits.
type NormalSampler struct {
	ds   DigitSource
	y, z *URand
}

// NewNormalSampler constructs a sampler drawing digits from ds.
func NewNormalSampler(ds DigitSource) (*NormalSampler, error) {
	if !(ds.Base()-1 < 1<<15 || (ds.PowerOfTwo() && ds.Bits() <= 32)) {
		return nil, NewParamError("normal sampler: base must be less than 2^15 or a power of two")
	}
	return &NormalSampler{
		ds: ds,
		y:  NewURand(ds),
		z:  NewURand(ds),
	}, nil
}

// DigitSource returns the DigitSource borrowed by s.
func (s *NormalSampler) DigitSource() DigitSource { return s.ds }

// Generate sets x to a fresh normal deviate.
func (s *NormalSampler) Generate(g Source, x *URand) (err error) {
	defer recoverOverflow(&err)
	for {
		k := s.g(g)                     // step 1
		if !s.p(g, k*(k-1)) {           // step 2
			continue
		}
		x.Init() // step 3
		j := k + 1
		ok := true
		for ; j > 0; j-- {
			if !s.b(g, k, x) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		x.SetInteger(uint64(k)) // step 5
		if s.y.Init().LessThanHalf(g) {
			x.Negate() // step 6
		}
		return nil // step 7
	}
}

// NormalValue samples a normal deviate and rounds it to R.
func NormalValue[R Float](s *NormalSampler, g Source) (result R, err error) {
	defer recoverOverflow(&err)
	x := NewURand(s.ds)
	if e := s.Generate(g, x); e != nil {
		return 0, e
	}
	result, _ = Value[R](x, g, ToNearest)
	return result, nil
}

// h returns true with probability exp(-1/2).
func (s *NormalSampler) h(g Source) bool {
	if !s.y.Init().LessThanHalf(g) {
		return true
	}
	for {
		if !s.z.Init().LessThan(g, s.y) {
			return false
		}
		if !s.y.Init().LessThan(g, s.z) {
			return true
		}
	}
}

// g (step N1) returns n >= 0 with probability exp(-n/2)*(1-exp(-1/2)).
func (s *NormalSampler) g(gen Source) int {
	n := 0
	for s.h(gen) {
		n++
	}
	return n
}

// p (step N2) returns true with probability exp(-n/2).
func (s *NormalSampler) p(gen Source, n int) bool {
	for n > 0 && s.h(gen) {
		n--
	}
	return n <= 0
}

// c (Algorithm C) returns -1 with probability 1/m, 0 with probability 1/m,
// and +1 with probability 1-2/m, using integer arithmetic on raw digits (not
// on x or y) that cannot overflow 64 bits: for power-of-two bases wider than
// 2^15, each step is truncated to a 2^15-valued digit.
func (s *NormalSampler) c(g Source, m int) int {
	n1, n2 := int64(1), int64(2)
	const maxbits = 15
	bitsN := s.ds.Bits()
	shift := 0
	tbase := int64(s.ds.Base())
	if s.ds.PowerOfTwo() && bitsN > maxbits {
		shift = bitsN - maxbits
		tbase = int64(1) << maxbits
	}
	mm := int64(m)
	for {
		d := int64(s.ds.Draw(g)) >> uint(shift)
		n1 = max64(0, n1*tbase-d*mm)
		if n1 >= mm {
			return -1
		}
		n2 = min64(mm, n2*tbase-d*mm)
		if n2 <= 0 {
			return +1
		}
		if n1 <= 0 && n2 >= mm {
			return 0
		}
	}
}

// b (Algorithm B) returns true with probability
// exp(-x*(2k+x)/(2k+2)), the acceptance test for the k'th ring of the
// normal density around x.
func (s *NormalSampler) b(g Source, k int, x *URand) bool {
	n := 0
	m := 2*k + 2
	for ; ; n++ {
		f := 0
		if k == 0 {
			f = s.c(g, m)
		}
		if f < 0 {
			break
		}
		var lessThan bool
		if n == 0 {
			lessThan = s.z.Init().LessThan(g, x)
		} else {
			lessThan = s.z.Init().LessThan(g, s.y)
		}
		if !lessThan {
			break
		}
		if k > 0 {
			f = s.c(g, m)
		}
		if f < 0 {
			break
		}
		if f == 0 && !s.y.Init().LessThan(g, x) {
			break
		}
		s.y.Swap(s.z)
	}
	return n%2 == 0
}
