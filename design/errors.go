package design

import (
	"errors"
	"fmt"
)

var (
	errNoCutoffs    = errors.New("firwin: at least one cutoff frequency is required")
	errEvenNyquist  = errors.New("firwin: a filter passing Nyquist must have an odd number of taps")
	errEmptyCoeffs  = errors.New("design: coefficient slice must not be empty")
	errBandOrder    = errors.New("design: band edges must satisfy 0 <= f0 < f1 <= 1")
	errRippleBounds = errors.New("kaiserord: ripple attenuation must be at least 8 dB")
)

func validateTaps(numTaps int) error {
	if numTaps < 1 {
		return fmt.Errorf("firwin: number of taps must be >= 1: %d", numTaps)
	}
	return nil
}

func validateCutoffs(cutoffs []float64) error {
	if len(cutoffs) == 0 {
		return errNoCutoffs
	}
	prev := 0.0
	for i, f := range cutoffs {
		if f <= 0 || f >= 1 {
			return fmt.Errorf("firwin: cutoff must lie in (0, 1), Nyquist normalized: cutoff[%d] = %g", i, f)
		}
		if f <= prev {
			return fmt.Errorf("firwin: cutoffs must be strictly increasing: cutoff[%d] = %g after %g", i, f, prev)
		}
		prev = f
	}
	return nil
}

func validateWidth(widthNorm float64) error {
	if widthNorm <= 0 || widthNorm >= 1 {
		return fmt.Errorf("design: transition width must lie in (0, 1): %g", widthNorm)
	}
	return nil
}
