package design

import (
	"math"
	"testing"
)

func TestStopbandAttenuationDB_KaiserLowPass(t *testing.T) {
	beta := KaiserBeta(60)
	h, err := FirWin(101, []float64{0.3}, WithKaiserBeta(beta))
	if err != nil {
		t.Fatalf("FirWin: %v", err)
	}

	atten, err := StopbandAttenuationDB(h, 0.45, 1)
	if err != nil {
		t.Fatalf("StopbandAttenuationDB: %v", err)
	}
	if atten < 50 {
		t.Errorf("attenuation: got %v dB, want >= 50 dB", atten)
	}
}

func TestStopbandAttenuationDB_PassbandNearUnity(t *testing.T) {
	h, err := FirWin(101, []float64{0.3})
	if err != nil {
		t.Fatalf("FirWin: %v", err)
	}

	// Suppression inside the passband must be close to 0 dB.
	atten, err := StopbandAttenuationDB(h, 0, 0.2)
	if err != nil {
		t.Fatalf("StopbandAttenuationDB: %v", err)
	}
	if math.Abs(atten) > 1 {
		t.Errorf("passband deviation: got %v dB, want within 1 dB of 0", atten)
	}
}

func TestStopbandAttenuationDB_Validation(t *testing.T) {
	if _, err := StopbandAttenuationDB(nil, 0, 1); err == nil {
		t.Error("empty coefficients: expected error")
	}
	if _, err := StopbandAttenuationDB([]float64{1}, 0.5, 0.4); err == nil {
		t.Error("inverted band: expected error")
	}
	if _, err := StopbandAttenuationDB([]float64{1}, -0.1, 0.4); err == nil {
		t.Error("negative band edge: expected error")
	}
}
