package exrandom

// UniformSampler samples exactly from the unit uniform distribution
// P(x) = 1 for 0 < x < 1. Generate is trivial: a fresh URand already
// denotes a uniform deviate.
type UniformSampler struct {
	ds DigitSource
}

// NewUniformSampler constructs a sampler drawing digits from ds.
func NewUniformSampler(ds DigitSource) *UniformSampler {
	return &UniformSampler{ds: ds}
}

// DigitSource returns the DigitSource borrowed by s.
func (s *UniformSampler) DigitSource() DigitSource { return s.ds }

// Generate resets x to a fresh uniform deviate. err is non-nil only when ds
// is a TableDigitSource that has run dry.
func (s *UniformSampler) Generate(g Source, x *URand) (err error) {
	defer recoverOverflow(&err)
	x.Init()
	return nil
}

// UniformValue samples a uniform deviate and rounds it to R under
// round-to-nearest.
func UniformValue[R Float](s *UniformSampler, g Source) (result R, err error) {
	defer recoverOverflow(&err)
	x := NewURand(s.ds)
	x.Init()
	result, _ = Value[R](x, g, ToNearest)
	return result, nil
}
