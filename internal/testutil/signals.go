package testutil

import "math/rand"

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DeterministicComplexNoise generates complex white noise with a fixed seed.
func DeterministicComplexNoise(seed int64, amplitude float64, length int) []complex128 {
	out := make([]complex128, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = complex((rng.Float64()*2-1)*amplitude, (rng.Float64()*2-1)*amplitude)
	}
	return out
}

// Ramp generates a linearly increasing sequence starting at start.
func Ramp(start, step float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}
