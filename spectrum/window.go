package spectrum

import (
	"github.com/go-sfht/sfht/buffer"
	"github.com/go-sfht/sfht/internal/numeric"
)

// Window selects one of the analysis windows ported from andewx-gofft's
// ApplyWindow, generalized to the generic Float constraint.
type Window int

const (
	Rectangular Window = iota
	Hanning
	Hamming
	Blackman
)

// ApplyWindow multiplies x (interleaved as reIn/imIn pairs at index i, in
// place) by the selected window function. n is len(re)==len(im).
func ApplyWindow[T buffer.Float](re, im []T, window Window) {
	n := len(re)
	two := numeric.Pi[T]() * 2
	four := numeric.Pi[T]() * 4
	denom := T(n - 1)
	for i := 0; i < n; i++ {
		var w T
		phase := T(i) / denom
		switch window {
		case Rectangular:
			w = 1
		case Hanning:
			w = T(0.5) * (1 - numeric.Cos(two*phase))
		case Hamming:
			w = T(0.54) - T(0.46)*numeric.Cos(two*phase)
		case Blackman:
			w = T(0.42) - T(0.5)*numeric.Cos(two*phase) + T(0.08)*numeric.Cos(four*phase)
		}
		re[i] *= w
		im[i] *= w
	}
}

// PowerSpectrum computes |x_k|^2 element-wise from a complex spectrum
// (re, im), ported from andewx-gofft's PowerSpectrum/PowerSpectrumPrecision.
func PowerSpectrum[T buffer.Float](re, im []T) []T {
	out := make([]T, len(re))
	for i := range re {
		out[i] = re[i]*re[i] + im[i]*im[i]
	}
	return out
}
