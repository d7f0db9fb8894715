package exrandom

// TableDigitSource is a DigitSource backed by a fixed string of decimal
// digits, for reproducibility demos where the digit stream itself is the
// specification rather than the output of some word generator. Base is
// fixed at 10. It ignores the Source argument passed to Draw, since it is
// entirely self-contained; callers may pass a nil Source.
//
// On exhaustion, Draw panics with an internal overflowSignal, which is
// recovered at every sampler's exported entry point and reported as
// ErrTableExhausted.
type TableDigitSource struct {
	digits string
	pos    int
	count  int64
}

// NewTableDigitSource constructs a table digit source from a string of
// decimal digit characters ('0'..'9'). It returns a ParamError if s contains
// any other byte.
func NewTableDigitSource(s string) (*TableDigitSource, error) {
	if err := checkDecimalDigits(s); err != nil {
		return nil, err
	}
	return &TableDigitSource{digits: s}, nil
}

// Reset rewinds the source to the given digit string (or re-uses the current
// one if s is empty), starting again from position zero. It returns a
// ParamError, leaving t unchanged, if s contains a non-digit byte.
func (t *TableDigitSource) Reset(s string) error {
	if s != "" {
		if err := checkDecimalDigits(s); err != nil {
			return err
		}
		t.digits = s
	}
	t.pos = 0
	return nil
}

func checkDecimalDigits(s string) error {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return NewParamError("table digit source: digit string must contain only '0'..'9'")
		}
	}
	return nil
}

func (t *TableDigitSource) Base() uint64     { return 10 }
func (t *TableDigitSource) Bits() int        { return 4 }
func (t *TableDigitSource) PowerOfTwo() bool { return false }
func (t *TableDigitSource) Count() int64     { return t.count }

// Draw returns the next tabulated digit, or panics with overflowSignal if
// the table is exhausted.
func (t *TableDigitSource) Draw(_ Source) uint32 {
	if t.pos >= len(t.digits) {
		panic(overflowSignal{})
	}
	c := t.digits[t.pos]
	t.pos++
	t.count++
	return uint32(c - '0')
}
