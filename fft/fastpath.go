package fft

import (
	"math/bits"

	"github.com/go-sfht/sfht/buffer"
	"github.com/go-sfht/sfht/internal/errs"
	"github.com/go-sfht/sfht/internal/progress"
	"github.com/go-sfht/sfht/roots"
	"github.com/go-sfht/sfht/sample"
)

// sampleFloat is the scalar constraint shared with package buffer/sample.
type sampleFloat = buffer.Float

// contiguousComplex is the raw-slice view a fast path operates on directly,
// bypassing sample.Array's per-element dispatch.
type contiguousComplex[T sampleFloat] struct {
	re, im         []T
	reBase, imBase uint64
	n              uint64
}

func asContiguous[T sampleFloat](samples *sample.Array[T]) (contiguousComplex[T], bool) {
	re, im, reBase, imBase, ok := samples.Fast()
	if !ok || im == nil {
		return contiguousComplex[T]{}, false
	}
	return contiguousComplex[T]{re: re, im: im, reBase: reBase, imBase: imBase, n: samples.Length()}, true
}

func (c contiguousComplex[T]) at(i uint64) (re, im T) {
	return c.re[c.reBase+i], c.im[c.imBase+i]
}

func (c contiguousComplex[T]) set(i uint64, re, im T) {
	c.re[c.reBase+i] = re
	c.im[c.imBase+i] = im
}

func (c contiguousComplex[T]) Swap(i, j uint64) {
	c.re[c.reBase+i], c.re[c.reBase+j] = c.re[c.reBase+j], c.re[c.reBase+i]
	c.im[c.imBase+i], c.im[c.imBase+j] = c.im[c.imBase+j], c.im[c.imBase+i]
}

// fastTransform is the contiguous float32/float64 specialization of
// Transform: identical algorithm, but indexing raw slices with inline
// complex multiplication instead of going through sample.Array's vocabulary.
func fastTransform[T sampleFloat](c contiguousComplex[T], inverse bool, cfg Config, ctx *progress.Context) error {
	n := c.n
	if err := bitrevFast(c, n, ctx); err != nil {
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
				lRe, lIm := c.at(l)
				rRe, rIm := c.at(r)
				workRe := rRe*T(cosT) - rIm*T(sinT)
				workIm := rRe*T(sinT) + rIm*T(cosT)
				c.set(r, lRe-workRe, lIm-workIm)
				c.set(l, lRe+workRe, lIm+workIm)
			}
		}
		if ctx.CheckInterruption() {
			return errs.Cancelled()
		}
	}

	if (inverse && !cfg.NormalizeDirect) || (!inverse && cfg.NormalizeDirect) {
		invN := T(1) / T(n)
		for i := uint64(0); i < n; i++ {
			re, im := c.at(i)
			c.set(i, re*invN, im*invN)
		}
	}
	return nil
}

func bitrevFast[T sampleFloat](c contiguousComplex[T], n uint64, ctx *progress.Context) error {
	if n <= 2 {
		return nil
	}
	kk := bits.Len64(n) - 1
	shift := uint(64 - kk)
	for i := uint64(1); i <= n-2; i++ {
		j := reverseBits64(i) >> shift
		if i < j {
			c.Swap(i, j)
		}
	}
	ctx.UpdateProgress("bit-reversal", n-2, n-2)
	return nil
}

func reverseBits64(i uint64) uint64 {
	return bits.Reverse64(i)
}
