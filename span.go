package primecache

import (
	"fmt"
	"math"
	"strconv"
)

// Unbounded marks a Span component as absent.
const Unbounded = math.MinInt

// Span selects primes by position with extended slice semantics.
//
// Forward spans (Step > 0) walk Start, Start+Step, ... strictly below
// Stop. Start defaults to 0; Stop must be bounded - the prime sequence
// is infinite, so an open forward span cannot be materialized.
//
// Backward spans (Step < 0) walk from Start down to, but excluding,
// Stop. Start defaults to the last currently cached index; Stop may be
// Unbounded, meaning "down through index 0".
//
// Step must be non-zero. Construct with NewSpan/NewSpanStep, or as a
// struct literal with an explicit Step.
type Span struct {
	Start int
	Stop  int
	Step  int
}

// NewSpan returns the single-step forward span [start, stop).
func NewSpan(start, stop int) Span {
	return Span{Start: start, Stop: stop, Step: 1}
}

// NewSpanStep returns the span [start, stop) walked with the given step.
func NewSpanStep(start, stop, step int) Span {
	return Span{Start: start, Stop: stop, Step: step}
}

func (sp Span) String() string {
	part := func(v int) string {
		if v == Unbounded {
			return ""
		}
		return strconv.Itoa(v)
	}
	return fmt.Sprintf("[%s:%s:%d]", part(sp.Start), part(sp.Stop), sp.Step)
}

type spanKind int

const (
	spanInvalid spanKind = iota
	spanForward
	spanBackward
)

// classify resolves a span request into forward, backward or invalid
// before the cache is touched. Invalid spans report the violated
// precondition via one of the Err* sentinels.
func (sp Span) classify() (spanKind, error) {
	switch {
	case sp.Step == 0:
		return spanInvalid, ErrZeroStep
	case sp.Step > 0:
		if sp.Start != Unbounded && sp.Start < 0 {
			return spanInvalid, ErrNegativeBound
		}
		if sp.Stop == Unbounded {
			return spanInvalid, ErrUnboundedSpan
		}
		if sp.Stop < 0 {
			return spanInvalid, ErrNegativeBound
		}
		return spanForward, nil
	default:
		if sp.Start != Unbounded && sp.Start < 0 {
			return spanInvalid, ErrNegativeBound
		}
		if sp.Stop != Unbounded && sp.Stop < 0 {
			return spanInvalid, ErrNegativeBound
		}
		return spanBackward, nil
	}
}
