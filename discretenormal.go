package exrandom

import (
	"fmt"
	"math"
)

// DiscreteNormalParams holds mu and sigma for the discrete normal
// distribution, each as a reduced fraction: mu = MuNum/MuDen, sigma =
// SigmaNum/SigmaDen. Constructors always reduce to lowest terms via gcd, so
// two params built from equal-valued fractions compare Equal.
type DiscreteNormalParams struct {
	MuNum, MuDen       int
	SigmaNum, SigmaDen int
}

func gcdInt(u, v int) int {
	if u < 0 {
		u = -u
	}
	if v < 0 {
		v = -v
	}
	for v > 0 {
		u, v = v, u%v
	}
	return u
}

// NewDiscreteNormalParams builds params from mu = muNum/muDen and sigma =
// sigmaNum/sigmaDen, requiring sigmaNum, sigmaDen, muDen > 0.
func NewDiscreteNormalParams(muNum, muDen, sigmaNum, sigmaDen int) (DiscreteNormalParams, error) {
	if !(sigmaNum > 0 && sigmaDen > 0 && muDen > 0 && muNum > math.MinInt32) {
		return DiscreteNormalParams{}, NewParamError("discrete normal params: need sigma > 0 and mu_den > 0")
	}
	l := gcdInt(muNum, muDen)
	if l == 0 {
		l = 1
	}
	p := DiscreteNormalParams{MuNum: muNum / l, MuDen: muDen / l}
	l = gcdInt(sigmaNum, sigmaDen)
	p.SigmaNum, p.SigmaDen = sigmaNum/l, sigmaDen/l
	return p, nil
}

// NewDiscreteNormalParamsInt builds params for integer mu and sigma.
func NewDiscreteNormalParamsInt(mu, sigma int) (DiscreteNormalParams, error) {
	return NewDiscreteNormalParams(mu, 1, sigma, 1)
}

// NewDiscreteNormalParamsCommonDen builds params from mu = muNum/den and
// sigma = sigmaNum/den, a common denominator for both.
func NewDiscreteNormalParamsCommonDen(muNum, sigmaNum, den int) (DiscreteNormalParams, error) {
	return NewDiscreteNormalParams(muNum, den, sigmaNum, den)
}

// DefaultDiscreteNormalParams returns mu = 0, sigma = 1.
func DefaultDiscreteNormalParams() DiscreteNormalParams {
	return DiscreteNormalParams{MuNum: 0, MuDen: 1, SigmaNum: 1, SigmaDen: 1}
}

// Equal reports whether p and q denote the same mu and sigma. Since both are
// always stored in lowest terms, this is a plain field comparison.
func (p DiscreteNormalParams) Equal(q DiscreteNormalParams) bool {
	return p == q
}

// String renders p as "mu_num mu_den sigma_num sigma_den".
func (p DiscreteNormalParams) String() string {
	return fmt.Sprintf("%d %d %d %d", p.MuNum, p.MuDen, p.SigmaNum, p.SigmaDen)
}

// ParseDiscreteNormalParams parses the format produced by String.
func ParseDiscreteNormalParams(s string) (DiscreteNormalParams, error) {
	var muNum, muDen, sigmaNum, sigmaDen int
	if _, err := fmt.Sscanf(s, "%d %d %d %d", &muNum, &muDen, &sigmaNum, &sigmaDen); err != nil {
		return DiscreteNormalParams{}, NewParamError("discrete normal params: malformed input: " + err.Error())
	}
	return NewDiscreteNormalParams(muNum, muDen, sigmaNum, sigmaDen)
}

// discreteNormalKmax bounds the integer part of a discrete normal deviate;
// the probability that the underlying unit normal sampler reaches this many
// rings is about 10^-543, so it is treated as an overflow guard rather than
// a real limit on the distribution's support.
const discreteNormalKmax = 51

// DiscreteNormalSampler samples exactly from the discrete normal
// distribution P_i proportional to exp(-((i-mu)/sigma)^2/2), via Algorithm
// D, built on top of the same H/G/P/B sub-algorithms as NormalSampler but
// keeping mu and sigma exact as reduced fractions throughout.
//
// The DigitSource's base must be at most 2^24, so that the overflow
// guards computed at construction time (which bound max(2, sigma) times the
// base times kmax) stay within 64 bits.
type DiscreteNormalSampler struct {
	ds     DigitSource
	y, z   *URand
	params DiscreteNormalParams

	sig, mu, d int64 // sigma = sig/d, mu = imu + mu/d
	imu, isig  int64 // isig = ceil(sigma)
}

func iceilInt64(n, d int64) int64 {
	k := n / d
	if k*d < n {
		k++
	}
	return k
}

// NewDiscreteNormalSampler constructs a sampler with the given parameters,
// drawing digits from ds. It returns an error if ds's base is too wide, or
// if the parameters could overflow the sampler's internal 64-bit arithmetic.
func NewDiscreteNormalSampler(ds DigitSource, params DiscreteNormalParams) (*DiscreteNormalSampler, error) {
	if ds.Bits() > 24 {
		return nil, NewParamError("discrete normal sampler: base must be at most 2^24")
	}
	s := &DiscreteNormalSampler{
		ds:     ds,
		y:      NewURand(ds),
		z:      NewURand(ds),
		params: params,
	}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

// Params returns the sampler's current parameters.
func (s *DiscreteNormalSampler) Params() DiscreteNormalParams { return s.params }

// SetParams reconfigures the sampler with new parameters, re-running the
// same overflow guards NewDiscreteNormalSampler applies.
func (s *DiscreteNormalSampler) SetParams(params DiscreteNormalParams) error {
	old := s.params
	s.params = params
	if err := s.init(); err != nil {
		s.params = old
		return err
	}
	return nil
}

// DigitSource returns the DigitSource borrowed by s.
func (s *DiscreteNormalSampler) DigitSource() DigitSource { return s.ds }

func (s *DiscreteNormalSampler) init() error {
	const maxI64 = math.MaxInt64
	p := s.params
	imu := int64(p.MuNum / p.MuDen)
	fmuNum := int64(p.MuNum) - imu*int64(p.MuDen)
	isig := iceilInt64(int64(p.SigmaNum), int64(p.SigmaDen))
	l := gcdInt(p.SigmaDen, p.MuDen)
	if l == 0 {
		l = 1
	}
	ll := int64(l)
	muDenOverL := int64(p.MuDen) / ll
	sigmaDenOverL := int64(p.SigmaDen) / ll
	if !(muDenOverL <= maxI64/int64(p.SigmaNum) &&
		absInt64(fmuNum) <= maxI64/sigmaDenOverL &&
		muDenOverL <= maxI64/int64(p.SigmaDen)) {
		return NewParamError("discrete normal sampler: sigma or mu overflow")
	}
	sig := int64(p.SigmaNum) * muDenOverL
	mu := fmuNum * sigmaDenOverL
	d := int64(p.SigmaDen) * muDenOverL
	if !(isig <= maxI64/d) {
		return NewParamError("discrete normal sampler: sigma or mu overflow")
	}
	const kmax = discreteNormalKmax
	const maxI32 = math.MaxInt32
	if !(isig <= maxI32/kmax) {
		return NewParamError("discrete normal sampler: possible overflow (isig)")
	}
	if !(absInt64(imu) <= maxI32-isig*kmax) {
		return NewParamError("discrete normal sampler: possible overflow (imu)")
	}
	base := int64(s.ds.Base())
	if !(maxInt64(2, sig) <= maxI64/(base*kmax)) {
		return NewParamError("discrete normal sampler: possible overflow (base)")
	}
	s.imu, s.isig, s.sig, s.mu, s.d = imu, isig, sig, mu, d
	return nil
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// h returns true with probability exp(-1/2).
func (s *DiscreteNormalSampler) h(g Source) bool {
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

func (s *DiscreteNormalSampler) g(gen Source) int {
	n := 0
	for s.h(gen) {
		n++
	}
	return n
}

func (s *DiscreteNormalSampler) p(gen Source, n int) bool {
	for n > 0 && s.h(gen) {
		n--
	}
	return n <= 0
}

// b (Algorithm B) tests x = (xn0 + d*j)/sig against the k'th ring of the
// normal density, where j narrows lazily via an IRand rather than a URand.
func (s *DiscreteNormalSampler) b(g Source, k int, xn0 int64, j *IRand) bool {
	n := 0
	m := int64(2*k + 2)
	for ; ; n++ {
		var f int
		if k > 0 {
			f = 0
		} else {
			f = s.z.Init().Compare(g, 1, 2, m)
		}
		if f < 0 {
			break
		}
		s.z.Init()
		var lessThan bool
		if n == 0 {
			lessThan = s.z.LessThanIRand(g, xn0, s.d, s.sig, j)
		} else {
			lessThan = s.z.LessThan(g, s.y)
		}
		if !lessThan {
			break
		}
		if k > 0 {
			f = s.y.Init().Compare(g, 1, 2, m)
		}
		if f < 0 {
			break
		}
		if f == 0 && !s.y.Init().LessThanIRand(g, xn0, s.d, s.sig, j) {
			break
		}
		s.y.Swap(s.z)
	}
	return n%2 == 0
}

// Generate sets j to a fresh discrete normal deviate, as an IRand rather
// than a fully materialized int, so a caller who only needs a comparison
// against j can avoid drawing every digit needed to pin it down exactly.
func (s *DiscreteNormalSampler) Generate(g Source, j *IRand) (err error) {
	defer recoverOverflow(&err)
	for {
		k := s.g(g) // step 1
		if !s.p(g, k*(k-1)) {
			continue // step 2
		}
		sgn := int64(1)
		if j.Init(g, 2).Call(g) != 0 {
			sgn = -1
		}
		xn0 := s.sig*int64(k) + sgn*s.mu
		i0 := iceilInt64(xn0, s.d) // step 5
		xn0 = i0*s.d - xn0         // step 3: xn = xn0 + j*d
		j.Init(g, s.isig)          // i = s*(i0+j)
		if !j.LessThan(g, s.sig-xn0, s.d) ||
			(k == 0 && sgn < 0 && !j.GreaterThan(g, -xn0, s.d)) {
			continue
		}
		h := k + 1
		ok := true
		for ; h > 0; h-- {
			if !s.b(g, k, xn0, j) {
				ok = false
				break
			}
		}
		if !ok {
			continue
		}
		j.Add(i0 + sgn*s.imu) // step 5
		if sgn < 0 {
			j.Negate() // step 6
		}
		return nil // step 7
	}
}

// Sample draws one fully materialized discrete normal deviate.
func (s *DiscreteNormalSampler) Sample(g Source) (v int, err error) {
	defer recoverOverflow(&err)
	j := NewIRand(s.ds)
	if err := s.Generate(g, j); err != nil {
		return 0, err
	}
	return int(j.Call(g)), nil
}
