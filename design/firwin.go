package design

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Window selects the taper applied to the truncated sinc kernel.
type Window int

const (
	WindowHamming Window = iota
	WindowHann
	WindowBlackman
	WindowRectangular
	WindowKaiser
)

// Option configures FIR design.
type Option func(*config)

type config struct {
	passZero   bool
	scale      bool
	window     Window
	kaiserBeta float64
}

func defaultConfig() config {
	return config{
		passZero: true,
		scale:    true,
		window:   WindowHamming,
	}
}

// WithPassZero selects whether the DC bin belongs to a passband. The default
// is true (low-pass/band-stop layout); pass false for band-pass/high-pass.
func WithPassZero(pass bool) Option {
	return func(c *config) {
		c.passZero = pass
	}
}

// WithoutScaling disables unity-gain scaling at the first passband center.
func WithoutScaling() Option {
	return func(c *config) {
		c.scale = false
	}
}

// WithWindow selects the window applied to the sinc kernel.
func WithWindow(w Window) Option {
	return func(c *config) {
		c.window = w
	}
}

// WithKaiserBeta selects a Kaiser window with the given shape parameter.
func WithKaiserBeta(beta float64) Option {
	return func(c *config) {
		if beta >= 0 {
			c.window = WindowKaiser
			c.kaiserBeta = beta
		}
	}
}

// FirWin designs a linear-phase FIR filter with the window method.
//
// Cutoff frequencies are normalized so that 1 corresponds to Nyquist and
// must be strictly increasing within (0, 1). Band membership alternates
// starting at DC: with pass-zero the first band [0, cutoff[0]] is a
// passband, without it the first passband starts at cutoff[0]. A design
// whose passband includes Nyquist requires an odd tap count.
func FirWin(numTaps int, cutoffs []float64, opts ...Option) ([]float64, error) {
	if err := validateTaps(numTaps); err != nil {
		return nil, err
	}
	if err := validateCutoffs(cutoffs); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	// Close the band list with 0 and/or 1 so edges pair up.
	passNyquist := (len(cutoffs)%2 == 1) != cfg.passZero
	if passNyquist && numTaps%2 == 0 {
		return nil, errEvenNyquist
	}

	edges := make([]float64, 0, len(cutoffs)+2)
	if cfg.passZero {
		edges = append(edges, 0)
	}
	edges = append(edges, cutoffs...)
	if passNyquist {
		edges = append(edges, 1)
	}

	// Superpose windowed ideal responses, one per passband pair.
	alpha := 0.5 * float64(numTaps-1)
	h := make([]float64, numTaps)
	for b := 0; b < len(edges); b += 2 {
		left, right := edges[b], edges[b+1]
		for i := range h {
			m := float64(i) - alpha
			h[i] += right*sinc(right*m) - left*sinc(left*m)
		}
	}

	win := windowCoeffs(cfg.window, numTaps, cfg.kaiserBeta)
	vecmath.MulBlockInPlace(h, win)

	if cfg.scale {
		left, right := edges[0], edges[1]
		var scaleFreq float64
		switch {
		case left == 0:
			scaleFreq = 0
		case right == 1:
			scaleFreq = 1
		default:
			scaleFreq = 0.5 * (left + right)
		}

		s := 0.0
		for i := range h {
			m := float64(i) - alpha
			s += h[i] * math.Cos(math.Pi*m*scaleFreq)
		}
		vecmath.ScaleBlock(h, h, 1/s)
	}

	return h, nil
}

func windowCoeffs(w Window, n int, beta float64) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = 1
		return out
	}

	for i := range out {
		x := float64(i) / float64(n-1)
		switch w {
		case WindowRectangular:
			out[i] = 1
		case WindowHann:
			out[i] = 0.5 - 0.5*math.Cos(2*math.Pi*x)
		case WindowBlackman:
			out[i] = 0.42 - 0.5*math.Cos(2*math.Pi*x) + 0.08*math.Cos(4*math.Pi*x)
		case WindowKaiser:
			out[i] = kaiserAt(x, beta)
		default:
			out[i] = 0.54 - 0.46*math.Cos(2*math.Pi*x)
		}
	}

	return out
}

func kaiserAt(x, beta float64) float64 {
	if beta <= 0 {
		return 1
	}

	r := 2*x - 1
	term := math.Sqrt(math.Max(0, 1-r*r))

	return besselI0(beta*term) / besselI0(beta)
}

func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}

	px := math.Pi * x

	return math.Sin(px) / px
}

// besselI0 returns a numerical approximation of the modified Bessel function I0.
func besselI0(x float64) float64 {
	ax := math.Abs(x)
	if ax < 3.75 {
		y := x / 3.75
		y *= y

		return 1.0 + y*(3.5156229+y*(3.0899424+y*(1.2067492+y*(0.2659732+y*(0.0360768+y*0.0045813)))))
	}

	y := 3.75 / ax

	return (math.Exp(ax) / math.Sqrt(ax)) *
		(0.39894228 + y*(0.01328592+y*(0.00225319+y*(-0.00157565+y*(0.00916281+y*(-0.02057706+y*(0.02635537+y*(-0.01647633+y*0.00392377))))))))
}
