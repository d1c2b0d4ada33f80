package design

import "math"

// KaiserBeta returns the Kaiser window shape parameter that achieves the
// given stop-band attenuation in dB.
func KaiserBeta(attenDB float64) float64 {
	switch {
	case attenDB > 50:
		return 0.1102 * (attenDB - 8.7)
	case attenDB > 21:
		d := attenDB - 21
		return 0.5842*math.Pow(d, 0.4) + 0.07886*d
	default:
		return 0
	}
}

// KaiserBetaSlice applies KaiserBeta element-wise.
func KaiserBetaSlice(attensDB []float64) []float64 {
	out := make([]float64, len(attensDB))
	for i, a := range attensDB {
		out[i] = KaiserBeta(a)
	}
	return out
}

// KaiserAtten returns the stop-band attenuation in dB reached by a Kaiser
// FIR filter with the given tap count and transition width (normalized to
// Nyquist = 1).
func KaiserAtten(numTaps int, widthNorm float64) float64 {
	return 2.285*float64(numTaps-1)*math.Pi*widthNorm + 7.95
}

// KaiserOrd returns the tap count and Kaiser beta required to reach the
// given ripple attenuation (dB) with the given transition width.
func KaiserOrd(rippleDB, widthNorm float64) (int, float64, error) {
	if err := validateWidth(widthNorm); err != nil {
		return 0, 0, err
	}

	a := math.Abs(rippleDB)
	if a < 8 {
		// Below 8 dB the approximation breaks down entirely.
		return 0, 0, errRippleBounds
	}

	numTaps := int(math.Ceil((a-7.95)/(2.285*math.Pi*widthNorm) + 1))

	return numTaps, KaiserBeta(a), nil
}
