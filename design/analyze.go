package design

import (
	"math"
	"math/cmplx"

	algofft "github.com/cwbudde/algo-fft"
)

// StopbandAttenuationDB reports the worst-case suppression (positive dB) of
// a coefficient set over the normalized band [f0, f1] with Nyquist = 1.
// The magnitude response is taken from a zero-padded forward FFT.
func StopbandAttenuationDB(coeffs []float64, f0, f1 float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}
	if f0 < 0 || f1 > 1 || f0 >= f1 {
		return 0, errBandOrder
	}

	fftSize := nextPow2(8 * len(coeffs))
	if fftSize < 1024 {
		fftSize = 1024
	}

	in := make([]complex128, fftSize)
	for i, c := range coeffs {
		in[i] = complex(c, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, err
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return 0, err
	}

	// Only non-negative frequencies matter for real coefficients.
	half := fftSize / 2
	worst := 0.0
	for k := 0; k <= half; k++ {
		f := float64(k) / float64(half)
		if f < f0 || f > f1 {
			continue
		}
		if mag := cmplx.Abs(out[k]); mag > worst {
			worst = mag
		}
	}

	if worst == 0 {
		return math.Inf(1), nil
	}

	return -20 * math.Log10(worst), nil
}

func nextPow2(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
