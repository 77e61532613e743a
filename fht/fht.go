// Package fht implements the Separable Fast Hartley Transform kernel: a
// recursive radix-2 decimation-in-time butterfly exploiting
// real-input symmetry, with hand-unrolled base cases for N in {2,4} (N=8
// is built from two N=4 base cases plus the combine butterflies) and a
// cache/recurrence twiddle strategy shared with package fft, plus a fast
// path for contiguous float32/float64 storage that bypasses the
// sample-array vocabulary entirely, mirroring package fft. Complex sample
// arrays are supported by running the same real-valued butterfly formulas
// on each sample's (re, im) pair independently, since a Hartley twiddle is
// always a real scalar multiplier and never rotates re into im.
package fht

import (
	"math/bits"

	"github.com/go-sfht/sfht/bitrev"
	"github.com/go-sfht/sfht/internal/errs"
	"github.com/go-sfht/sfht/internal/progress"
	"github.com/go-sfht/sfht/sample"
)

// Config mirrors fft.Config: where the 1/N normalization factor lands.
type Config struct {
	NormalizeDirect bool
}

// Transform runs the FHT (inverse=false) or inverse FHT (inverse=true) in
// place on samples, a real or complex sample array of length N=2^k.
func Transform[T sampleFloat](samples *sample.Array[T], inverse bool, cfg Config, ctx *progress.Context) error {
	if samples == nil {
		return errs.NullArgument("samples")
	}
	n := samples.Length()
	if n&(n-1) != 0 {
		return errs.InvalidLength("fht length %d is not a power of two", n)
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
	logN := bits.Len64(n) - 1
	if err := fhtMain(samples, 0, logN, ctx); err != nil {
		return err
	}
	// The FHT is its own (unnormalized) inverse, so inverse and direct use
	// the same butterfly; only the 1/N placement differs.
	if (inverse && !cfg.NormalizeDirect) || (!inverse && cfg.NormalizeDirect) {
		samples.MulRange(0, n, T(1)/T(n))
	}
	return nil
}

// fhtMain is the recursive radix-2 butterfly over the length-2^logN segment
// starting at pos.
func fhtMain[T sampleFloat](s *sample.Array[T], pos uint64, logN int, ctx *progress.Context) error {
	switch logN {
	case 0:
		return nil
	case 1:
		base2(s, pos)
		return nil
	case 2:
		base4(s, pos)
		return nil
	case 3:
		base8(s, pos)
		return nil
	}

	n := uint64(1) << logN
	half := n / 2

	if err := fhtMain(s, pos, logN-1, ctx); err != nil {
		return err
	}
	if err := fhtMain(s, pos+half, logN-1, ctx); err != nil {
		return err
	}
	if err := combine(s, pos, half, ctx); err != nil {
		return err
	}
	ctx.UpdateProgress("fht-combine", pos+n, 0)
	return nil
}
