package bench

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Sample is the element type of a benchmark output array.
type Sample interface {
	float64 | complex128
}

// Tolerance bounds the allowed deviation between a reference and an
// accelerated output. Two elements match when
//
//	|got - want| <= Abs + Rel*max(|got|, |want|)
type Tolerance struct {
	Abs float64
	Rel float64
}

// DefaultTolerance matches double-precision results that took different but
// equivalent arithmetic paths.
func DefaultTolerance() Tolerance {
	return Tolerance{Abs: 1e-12, Rel: 1e-9}
}

func (t Tolerance) within(dev, scale float64) bool {
	return dev <= t.Abs+t.Rel*scale
}

// MaxDeviation returns the largest element-wise distance between a and b.
func MaxDeviation[T Sample](a, b []T) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	worst := 0.0
	for i := range a {
		if d := distance(a[i], b[i]); d > worst {
			worst = d
		}
	}
	return worst, nil
}

// Verify checks the accelerated output against the reference output.
// It returns nil on a match and an *EquivalenceError (or a length-mismatch
// error) otherwise.
func Verify[T Sample](caseName string, reference, accelerated []T, tol Tolerance) error {
	if len(reference) != len(accelerated) {
		return fmt.Errorf("case %q: length mismatch: reference %d, accelerated %d",
			caseName, len(reference), len(accelerated))
	}

	worst := 0.0
	ok := true
	for i := range reference {
		d := distance(reference[i], accelerated[i])
		if d > worst {
			worst = d
		}
		if !tol.within(d, math.Max(magnitude(reference[i]), magnitude(accelerated[i]))) {
			ok = false
		}
	}
	if ok {
		return nil
	}

	return &EquivalenceError{Case: caseName, MaxDeviation: worst, Tol: tol}
}

func distance[T Sample](a, b T) float64 {
	switch x := any(a).(type) {
	case float64:
		return math.Abs(x - any(b).(float64))
	case complex128:
		return cmplx.Abs(x - any(b).(complex128))
	default:
		return math.Inf(1)
	}
}

func magnitude[T Sample](v T) float64 {
	switch x := any(v).(type) {
	case float64:
		return math.Abs(x)
	case complex128:
		return cmplx.Abs(x)
	default:
		return 0
	}
}
