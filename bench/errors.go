package bench

import (
	"errors"
	"fmt"
)

// ErrMissingInput is returned when a case that needs an input signal is
// constructed without one.
var ErrMissingInput = errors.New("filterbench/bench: case requires an input signal")

// ComputationError reports that a backend rejected its parameters or failed
// during execution. The case it belongs to is aborted; it is never retried.
type ComputationError struct {
	Backend string
	Case    string
	Err     error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s backend failed for case %q: %v", e.Backend, e.Case, e.Err)
}

func (e *ComputationError) Unwrap() error {
	return e.Err
}

// EquivalenceError reports that the accelerated output deviates from the
// reference output beyond the case tolerance.
type EquivalenceError struct {
	Case         string
	MaxDeviation float64
	Tol          Tolerance
}

func (e *EquivalenceError) Error() string {
	return fmt.Sprintf("case %q: outputs differ by %g (tolerance abs=%g rel=%g)",
		e.Case, e.MaxDeviation, e.Tol.Abs, e.Tol.Rel)
}
