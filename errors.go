package primecache

import (
	"errors"
	"fmt"
)

var (
	// ErrNegativeIndex is returned by Sequence.At for i < 0. The prime
	// sequence is unbounded in the positive direction only, so "index
	// from the end" has no meaning.
	ErrNegativeIndex = errors.New("primecache: index must be non-negative")

	// ErrNonPositiveN is returned by NthPrime for n < 1.
	ErrNonPositiveN = errors.New("primecache: n must be >= 1")

	// ErrEmptyKnown is returned by NextPrime when no primes are supplied.
	ErrEmptyKnown = errors.New("primecache: known primes must be non-empty")

	// ErrZeroStep is returned for spans with Step == 0.
	ErrZeroStep = errors.New("primecache: span step cannot be zero")

	// ErrUnboundedSpan is returned for forward spans without a Stop:
	// materializing an infinite slice is impossible.
	ErrUnboundedSpan = errors.New("primecache: forward span requires a bounded stop")

	// ErrNegativeBound is returned for spans whose explicit Start or Stop
	// is negative where a non-negative index is required.
	ErrNegativeBound = errors.New("primecache: span bounds must be non-negative")
)

// SpanError reports a span that could not be resolved against the
// sequence. Err is one of the Err* sentinels above.
type SpanError struct {
	Span Span
	Err  error
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("resolve span %s: %v", e.Span, e.Err)
}

func (e *SpanError) Unwrap() error { return e.Err }

func spanErr(sp Span, err error) error {
	return &SpanError{Span: sp, Err: err}
}
