package bench

import (
	"fmt"
	"math/rand"

	"github.com/cwbudde/algo-filterbench/design"
	"github.com/cwbudde/algo-filterbench/gpu"
)

// SuiteParams is the declarative parameter matrix the benchmark cases are
// collected from. The FirWin group runs the full cross product of its value
// sets; the remaining groups each run over their explicitly constructed
// input signal.
type SuiteParams struct {
	FirWinTaps     []int
	FirWinLowCuts  []float64
	FirWinHighCuts []float64

	// KaiserBetaInput holds attenuation values (dB) evaluated element-wise.
	KaiserBetaInput []float64

	// KaiserAttenTaps and KaiserAttenWidths define the attenuation cases:
	// one case per tap count, each evaluated over all widths.
	KaiserAttenTaps   []int
	KaiserAttenWidths []float64

	CmplxSortInput []complex128

	Tol Tolerance
}

// DefaultSuiteParams mirrors the historical benchmark matrix: 2^15-tap
// band-pass designs over {0.1, 0.15} x {0.2, 0.4}, plus constructed inputs
// for the Kaiser helpers and the complex sort.
func DefaultSuiteParams() SuiteParams {
	return SuiteParams{
		FirWinTaps:        []int{1 << 15},
		FirWinLowCuts:     []float64{0.1, 0.15},
		FirWinHighCuts:    []float64{0.2, 0.4},
		KaiserBetaInput:   ramp(8, 0.02, 4096),
		KaiserAttenTaps:   []int{8192, 32768},
		KaiserAttenWidths: ramp(0.005, 0.0025, 64),
		CmplxSortInput:    complexNoise(1, 16384),
		Tol:               DefaultTolerance(),
	}
}

// Suite collects the runnable cases for the given matrix. Collection fails
// fast when a group that needs an input signal has none; it never executes
// a backend.
func Suite(eng *gpu.Engine, p SuiteParams) ([]Runner, error) {
	tol := p.Tol
	if tol == (Tolerance{}) {
		tol = DefaultTolerance()
	}

	var runners []Runner

	for _, taps := range p.FirWinTaps {
		for _, f1 := range p.FirWinLowCuts {
			for _, f2 := range p.FirWinHighCuts {
				runners = append(runners, FirWinCase(eng, taps, f1, f2, tol))
			}
		}
	}

	kb, err := KaiserBetaCase(eng, p.KaiserBetaInput, tol)
	if err != nil {
		return nil, err
	}
	runners = append(runners, kb)

	for _, taps := range p.KaiserAttenTaps {
		ka, err := KaiserAttenCase(eng, taps, p.KaiserAttenWidths, tol)
		if err != nil {
			return nil, err
		}
		runners = append(runners, ka)
	}

	cs, err := CmplxSortCase(eng, p.CmplxSortInput, tol)
	if err != nil {
		return nil, err
	}
	runners = append(runners, cs)

	return runners, nil
}

// FirWinCase builds one band-pass design case. Parameter validation happens
// inside the backends at run time; an invalid tuple surfaces as a
// ComputationError for this case only.
func FirWinCase(eng *gpu.Engine, numTaps int, f1, f2 float64, tol Tolerance) Runner {
	cutoffs := []float64{f1, f2}

	return Case[float64]{
		Group: "FirWin",
		Name:  fmt.Sprintf("taps=%d f1=%g f2=%g", numTaps, f1, f2),
		Tol:   tol,
		Reference: func() ([]float64, error) {
			return design.FirWin(numTaps, cutoffs, design.WithPassZero(false))
		},
		Accelerated: func() ([]float64, error) {
			return eng.FirWin(numTaps, cutoffs, false)
		},
	}.Runner()
}

// KaiserBetaCase builds the element-wise beta case over an explicitly
// constructed attenuation array. An absent input fails fast.
func KaiserBetaCase(eng *gpu.Engine, attensDB []float64, tol Tolerance) (Runner, error) {
	if len(attensDB) == 0 {
		return nil, fmt.Errorf("kaiser_beta: %w", ErrMissingInput)
	}
	input := append([]float64(nil), attensDB...)

	return Case[float64]{
		Group: "KaiserBeta",
		Name:  fmt.Sprintf("n=%d", len(input)),
		Tol:   tol,
		Reference: func() ([]float64, error) {
			return design.KaiserBetaSlice(input), nil
		},
		Accelerated: func() ([]float64, error) {
			return eng.KaiserBetaSlice(input)
		},
	}.Runner(), nil
}

// KaiserAttenCase builds one attenuation case: a fixed tap count evaluated
// over an explicitly constructed width array. An absent input fails fast.
func KaiserAttenCase(eng *gpu.Engine, numTaps int, widths []float64, tol Tolerance) (Runner, error) {
	if len(widths) == 0 {
		return nil, fmt.Errorf("kaiser_atten: %w", ErrMissingInput)
	}
	input := append([]float64(nil), widths...)

	return Case[float64]{
		Group: "KaiserAtten",
		Name:  fmt.Sprintf("taps=%d n=%d", numTaps, len(input)),
		Tol:   tol,
		Reference: func() ([]float64, error) {
			out := make([]float64, len(input))
			for i, w := range input {
				out[i] = design.KaiserAtten(numTaps, w)
			}
			return out, nil
		},
		Accelerated: func() ([]float64, error) {
			out := make([]float64, len(input))
			for i, w := range input {
				v, err := eng.KaiserAtten(numTaps, w)
				if err != nil {
					return nil, err
				}
				out[i] = v
			}
			return out, nil
		},
	}.Runner(), nil
}

// CmplxSortCase builds the magnitude-sort case over an explicitly
// constructed complex signal. An absent input fails fast.
func CmplxSortCase(eng *gpu.Engine, signal []complex128, tol Tolerance) (Runner, error) {
	if len(signal) == 0 {
		return nil, fmt.Errorf("cmplx_sort: %w", ErrMissingInput)
	}
	input := append([]complex128(nil), signal...)

	return Case[complex128]{
		Group: "CmplxSort",
		Name:  fmt.Sprintf("n=%d", len(input)),
		Tol:   tol,
		Reference: func() ([]complex128, error) {
			sorted, _ := design.CmplxSort(input)
			return sorted, nil
		},
		Accelerated: func() ([]complex128, error) {
			return eng.CmplxSort(input)
		},
	}.Runner(), nil
}

func ramp(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

func complexNoise(seed int64, n int) []complex128 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}
	return out
}
