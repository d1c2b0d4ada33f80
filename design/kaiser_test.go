package design

import (
	"math"
	"testing"
)

func TestKaiserBeta(t *testing.T) {
	tests := []struct {
		attenDB float64
		want    float64
	}{
		{10, 0},
		{21, 0},
		{22, 0.66306},
		{65, 6.20426},
		{100, 10.06126},
	}
	for _, tt := range tests {
		got := KaiserBeta(tt.attenDB)
		if !almostEqual(got, tt.want, 1e-9) {
			t.Errorf("KaiserBeta(%v): got %v, want %v", tt.attenDB, got, tt.want)
		}
	}
}

func TestKaiserBetaSlice(t *testing.T) {
	in := []float64{10, 22, 65}
	got := KaiserBetaSlice(in)
	if len(got) != len(in) {
		t.Fatalf("length: got %d, want %d", len(got), len(in))
	}
	for i, a := range in {
		if got[i] != KaiserBeta(a) {
			t.Errorf("element %d: got %v, want %v", i, got[i], KaiserBeta(a))
		}
	}
}

func TestKaiserAtten(t *testing.T) {
	got := KaiserAtten(211, 0.0375)
	if !almostEqual(got, 64.48099630593983, 1e-9) {
		t.Errorf("KaiserAtten(211, 0.0375): got %v", got)
	}
}

func TestKaiserOrd(t *testing.T) {
	numTaps, beta, err := KaiserOrd(65, 0.0375)
	if err != nil {
		t.Fatalf("KaiserOrd: %v", err)
	}
	if numTaps != 213 {
		t.Errorf("numTaps: got %d, want 213", numTaps)
	}
	if !almostEqual(beta, 6.20426, 1e-9) {
		t.Errorf("beta: got %v, want 6.20426", beta)
	}

	// Round trip: the attenuation the sized filter reaches must cover the
	// requested ripple.
	if got := KaiserAtten(numTaps, 0.0375); got < 65 {
		t.Errorf("round trip attenuation: got %v, want >= 65", got)
	}
}

func TestKaiserOrd_Validation(t *testing.T) {
	if _, _, err := KaiserOrd(7.9, 0.1); err == nil {
		t.Error("ripple below 8 dB: expected error")
	}
	if _, _, err := KaiserOrd(60, 0); err == nil {
		t.Error("zero width: expected error")
	}
	if _, _, err := KaiserOrd(60, 1); err == nil {
		t.Error("width at one: expected error")
	}
}

func TestKaiserBeta_Monotonic(t *testing.T) {
	prev := math.Inf(-1)
	for a := 8.0; a <= 120; a += 0.5 {
		b := KaiserBeta(a)
		if b < prev {
			t.Fatalf("KaiserBeta not monotonic at %v: %v < %v", a, b, prev)
		}
		prev = b
	}
}
