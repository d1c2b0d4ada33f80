package design

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-filterbench/internal/testutil"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// responseMagnitude evaluates |H(f)| at a normalized frequency (Nyquist = 1)
// by direct summation.
func responseMagnitude(coeffs []float64, f float64) float64 {
	w := math.Pi * f
	var re, im float64
	for k, c := range coeffs {
		re += c * math.Cos(w*float64(k))
		im -= c * math.Sin(w*float64(k))
	}
	return math.Hypot(re, im)
}

func TestFirWin_LowPassUnityAtDC(t *testing.T) {
	h, err := FirWin(31, []float64{0.3})
	if err != nil {
		t.Fatalf("FirWin: %v", err)
	}
	if len(h) != 31 {
		t.Fatalf("length: got %d, want 31", len(h))
	}

	sum := 0.0
	for _, c := range h {
		sum += c
	}
	if !almostEqual(sum, 1, 1e-9) {
		t.Errorf("DC gain: got %v, want 1", sum)
	}
}

func TestFirWin_Symmetry(t *testing.T) {
	for _, numTaps := range []int{15, 16, 64} {
		h, err := FirWin(numTaps, []float64{0.1, 0.2}, WithPassZero(false))
		if err != nil {
			t.Fatalf("FirWin(%d): %v", numTaps, err)
		}
		for i := range h {
			j := len(h) - 1 - i
			if !almostEqual(h[i], h[j], eps) {
				t.Fatalf("taps %d: h[%d]=%v != h[%d]=%v", numTaps, i, h[i], j, h[j])
			}
		}
	}
}

func TestFirWin_BandPassResponse(t *testing.T) {
	h, err := FirWin(128, []float64{0.1, 0.2}, WithPassZero(false))
	if err != nil {
		t.Fatalf("FirWin: %v", err)
	}

	center := responseMagnitude(h, 0.15)
	if !almostEqual(center, 1, 1e-6) {
		t.Errorf("band center gain: got %v, want 1", center)
	}

	dc := responseMagnitude(h, 0)
	if dc > 0.01 {
		t.Errorf("DC leakage: got %v, want < 0.01", dc)
	}
	nyq := responseMagnitude(h, 1)
	if nyq > 0.01 {
		t.Errorf("Nyquist leakage: got %v, want < 0.01", nyq)
	}
}

func TestFirWin_KaiserWindowOption(t *testing.T) {
	h, err := FirWin(65, []float64{0.25}, WithKaiserBeta(8.6))
	if err != nil {
		t.Fatalf("FirWin: %v", err)
	}
	testutil.RequireFinite(t, h)

	sum := 0.0
	for _, c := range h {
		sum += c
	}
	if !almostEqual(sum, 1, 1e-9) {
		t.Errorf("DC gain: got %v, want 1", sum)
	}
}

func TestFirWin_SingleTap(t *testing.T) {
	h, err := FirWin(1, []float64{0.5})
	if err != nil {
		t.Fatalf("FirWin: %v", err)
	}
	if len(h) != 1 || !almostEqual(h[0], 1, eps) {
		t.Fatalf("got %v, want [1]", h)
	}
}

func TestFirWin_EdgeCutoffs(t *testing.T) {
	for _, cut := range [][]float64{{0.001, 0.002}, {0.998, 0.999}} {
		h, err := FirWin(257, cut, WithPassZero(false), WithoutScaling())
		if err != nil {
			t.Fatalf("FirWin(%v): %v", cut, err)
		}
		testutil.RequireFinite(t, h)
	}
}

func TestFirWin_Validation(t *testing.T) {
	tests := []struct {
		name    string
		numTaps int
		cutoffs []float64
		opts    []Option
	}{
		{"zero taps", 0, []float64{0.5}, nil},
		{"no cutoffs", 8, nil, nil},
		{"cutoff at zero", 8, []float64{0}, nil},
		{"cutoff at one", 8, []float64{1}, nil},
		{"descending cutoffs", 8, []float64{0.4, 0.2}, nil},
		{"duplicate cutoffs", 8, []float64{0.3, 0.3}, nil},
		{"even high-pass", 8, []float64{0.5}, []Option{WithPassZero(false)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FirWin(tt.numTaps, tt.cutoffs, tt.opts...); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestFirWin_Deterministic(t *testing.T) {
	a, err := FirWin(512, []float64{0.15, 0.4}, WithPassZero(false))
	if err != nil {
		t.Fatalf("FirWin: %v", err)
	}
	b, err := FirWin(512, []float64{0.15, 0.4}, WithPassZero(false))
	if err != nil {
		t.Fatalf("FirWin: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("tap %d: %v != %v", i, a[i], b[i])
		}
	}
}
