// Package fft implements the radix-2 decimation-in-time FFT kernel:
// bit-reversal reordering followed by the iterative butterfly loop with
// cached or recurrence-generated twiddle factors, plus a fast path for
// contiguous float32/float64 storage that bypasses the sample-array
// vocabulary entirely.
package fft

import (
	"math/bits"

	"github.com/go-sfht/sfht/bitrev"
	"github.com/go-sfht/sfht/internal/errs"
	"github.com/go-sfht/sfht/internal/progress"
	"github.com/go-sfht/sfht/roots"
	"github.com/go-sfht/sfht/sample"
)

// Config is the transform configuration shared across kernels.
type Config struct {
	// NormalizeDirect places the 1/N factor after the direct transform when
	// true, after the inverse transform otherwise.
	NormalizeDirect bool
}

// Transform runs the FFT (inverse=false) or IFFT (inverse=true) in place on
// samples, a complex sample array of length N=2^k. Returns
// ErrUnsupportedKind if samples is real-only, ErrInvalidLength if its
// length is not a power of two.
func Transform[T sampleFloat](samples *sample.Array[T], inverse bool, cfg Config, ctx *progress.Context) error {
	if samples == nil {
		return errs.NullArgument("samples")
	}
	if !samples.IsComplex() {
		return errs.UnsupportedKind("fft requires a complex sample array")
	}
	n := samples.Length()
	if n == 0 || n&(n-1) != 0 {
		return errs.InvalidLength("fft length %d is not a power of two", n)
	}
	if n <= 1 {
		return nil
	}

	if fastSamples, ok := asContiguous[T](samples); ok {
		return fastTransform(fastSamples, inverse, cfg, ctx)
	}

	if err := bitrev.Reorder(samples, n, ctx); err != nil {
		return err
	}

	k := bits.Len64(n) - 1
	sign := -1.0
	if inverse {
		sign = 1.0
	}
	for bitIndex := 0; bitIndex < k; bitIndex++ {
		step := 1 << (bitIndex + 1)
		half := step / 2
		series := roots.NewTwiddleSource(step, sign, roots.CacheSize)
		for i := 0; i < int(n); i += step {
			series.Reset()
			for j := 0; j < half; j++ {
				cosT, sinT := series.Next(j)
				l := uint64(i + j)
				r := l + uint64(half)
				lRe, lIm := samples.At(l)
				rRe, rIm := samples.At(r)
				workRe := rRe*T(cosT) - rIm*T(sinT)
				workIm := rRe*T(sinT) + rIm*T(cosT)
				samples.Set(r, lRe-workRe, lIm-workIm)
				samples.Set(l, lRe+workRe, lIm+workIm)
			}
			if ctx.CheckInterruption() {
				return errs.Cancelled()
			}
		}
		ctx.UpdateProgress("fft-butterfly", uint64(bitIndex+1), uint64(k))
	}

	normalize(samples, inverse, cfg, n)
	return nil
}

func normalize[T sampleFloat](samples *sample.Array[T], inverse bool, cfg Config, n uint64) {
	if (inverse && !cfg.NormalizeDirect) || (!inverse && cfg.NormalizeDirect) {
		samples.MulRange(0, n, T(1)/T(n))
	}
}

