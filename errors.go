package exrandom

import "github.com/pkg/errors"

// ParamError reports an invalid distribution parameter or a construction-time
// overflow guard that failed. It is always a caller error, surfaced from a
// constructor; it is never returned from a sampling call.
type ParamError struct {
	msg string
}

func (e *ParamError) Error() string { return e.msg }

// NewParamError constructs a ParamError with the given message.
func NewParamError(msg string) error {
	return errors.WithStack(&ParamError{msg: msg})
}

// ErrTableExhausted is returned by a sampler's Generate/Value entry point
// when a TableDigitSource runs out of tabulated digits mid-draw. The state
// of any u-rand or i-rand touched during that call is undefined; callers
// must discard it.
var ErrTableExhausted = errors.New("exrandom: table digit source exhausted")

// overflowSignal is panicked by TableDigitSource.Draw on exhaustion and
// recovered by the samplers' exported entry points (Generate, the *Value
// helpers, and DiscreteNormalSampler.Sample). The original C++ signals the same
// condition with an exception raised from many stack frames deep inside
// nested accept/reject loops; Go's panic/recover plays the identical role
// here without threading an error return through every digit-consuming
// comparison.
type overflowSignal struct{}

// recoverOverflow turns a panicked overflowSignal into ErrTableExhausted.
// Any other panic value propagates unchanged.
func recoverOverflow(errp *error) {
	if r := recover(); r != nil {
		if _, ok := r.(overflowSignal); ok {
			*errp = ErrTableExhausted
			return
		}
		panic(r)
	}
}
