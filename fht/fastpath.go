package fht

import (
	"math/bits"

	"github.com/go-sfht/sfht/internal/errs"
	"github.com/go-sfht/sfht/internal/numeric"
	"github.com/go-sfht/sfht/internal/progress"
	"github.com/go-sfht/sfht/roots"
	"github.com/go-sfht/sfht/sample"
)

// contiguousSamples is the raw-slice view the fast path operates on
// directly, bypassing sample.Array's per-element dispatch. im is nil for
// a real array.
type contiguousSamples[T sampleFloat] struct {
	re, im         []T
	reBase, imBase uint64
	n              uint64
}

func asContiguous[T sampleFloat](samples *sample.Array[T]) (contiguousSamples[T], bool) {
	re, im, reBase, imBase, ok := samples.Fast()
	if !ok {
		return contiguousSamples[T]{}, false
	}
	return contiguousSamples[T]{re: re, im: im, reBase: reBase, imBase: imBase, n: samples.Length()}, true
}

func (c contiguousSamples[T]) at(i uint64) (re, im T) {
	if c.im == nil {
		return c.re[c.reBase+i], 0
	}
	return c.re[c.reBase+i], c.im[c.imBase+i]
}

func (c contiguousSamples[T]) set(i uint64, re, im T) {
	c.re[c.reBase+i] = re
	if c.im != nil {
		c.im[c.imBase+i] = im
	}
}

func (c contiguousSamples[T]) swap(i, j uint64) {
	c.re[c.reBase+i], c.re[c.reBase+j] = c.re[c.reBase+j], c.re[c.reBase+i]
	if c.im != nil {
		c.im[c.imBase+i], c.im[c.imBase+j] = c.im[c.imBase+j], c.im[c.imBase+i]
	}
}

func (c contiguousSamples[T]) mulRange(from, to uint64, scalar T) {
	for i := from; i < to; i++ {
		re, im := c.at(i)
		c.set(i, re*scalar, im*scalar)
	}
}

// fastTransform is the contiguous float32/float64 specialization of
// Transform: the identical recursive butterfly, indexing raw slices
// directly with inline arithmetic instead of going through sample.Array's
// vocabulary, mirroring package fft's fastTransform.
func fastTransform[T sampleFloat](c contiguousSamples[T], inverse bool, cfg Config, ctx *progress.Context) error {
	n := c.n
	if err := bitrevFast(c, n, ctx); err != nil {
		return err
	}
	logN := bits.Len64(n) - 1
	if err := fastFhtMain(c, 0, logN, ctx); err != nil {
		return err
	}
	if (inverse && !cfg.NormalizeDirect) || (!inverse && cfg.NormalizeDirect) {
		c.mulRange(0, n, T(1)/T(n))
	}
	return nil
}

func bitrevFast[T sampleFloat](c contiguousSamples[T], n uint64, ctx *progress.Context) error {
	if n <= 2 {
		return nil
	}
	kk := bits.Len64(n) - 1
	shift := uint(64 - kk)
	for i := uint64(1); i <= n-2; i++ {
		j := reverseBits64(i) >> shift
		if i < j {
			c.swap(i, j)
		}
	}
	ctx.UpdateProgress("bit-reversal", n-2, n-2)
	return nil
}

func reverseBits64(i uint64) uint64 {
	return bits.Reverse64(i)
}

func fastFhtMain[T sampleFloat](c contiguousSamples[T], pos uint64, logN int, ctx *progress.Context) error {
	switch logN {
	case 0:
		return nil
	case 1:
		fastBase2(c, pos)
		return nil
	case 2:
		fastBase4(c, pos)
		return nil
	case 3:
		fastBase8(c, pos)
		return nil
	}

	n := uint64(1) << logN
	half := n / 2

	if err := fastFhtMain(c, pos, logN-1, ctx); err != nil {
		return err
	}
	if err := fastFhtMain(c, pos+half, logN-1, ctx); err != nil {
		return err
	}
	if err := fastCombine(c, pos, half, ctx); err != nil {
		return err
	}
	ctx.UpdateProgress("fht-combine", pos+n, 0)
	return nil
}

// fastCombine mirrors combine, operating on the contiguous view.
func fastCombine[T sampleFloat](c contiguousSamples[T], pos, half uint64, ctx *progress.Context) error {
	n := 2 * half
	quarter := half / 2
	eighth := quarter / 2

	fastEndpoint(c, pos, half, 0)
	if quarter > 0 {
		fastEndpoint(c, pos, half, quarter)
	}
	if eighth > 0 {
		inv2 := numeric.InvSqrt2[T]()
		fastQuad(c, pos, half, eighth, inv2, inv2)
	}

	series := roots.NewTwiddleSource(int(n), 1, cacheThreshold)
	series.Reset()
	for j := uint64(1); j < eighth; j++ {
		cosT, sinT := series.Next(int(j))
		cc, sn := T(cosT), T(sinT)
		fastQuad(c, pos, half, j, cc, sn)
		fastQuad(c, pos, half, quarter-j, sn, cc)

		if progress.ShouldCheck(j, progress.MaskMedium) && ctx.CheckInterruption() {
			return errs.Cancelled()
		}
	}
	return nil
}

func fastQuad[T sampleFloat](c contiguousSamples[T], pos, half, k uint64, cc, sn T) {
	kPair := half - k
	eRe, eIm := c.at(pos + k)
	ePairRe, ePairIm := c.at(pos + kPair)
	oRe, oIm := c.at(pos + half + k)
	oPairRe, oPairIm := c.at(pos + half + kPair)

	c.set(pos+k, eRe+oRe*cc+oPairRe*sn, eIm+oIm*cc+oPairIm*sn)
	c.set(pos+k+half, eRe-oRe*cc-oPairRe*sn, eIm-oIm*cc-oPairIm*sn)

	c.set(pos+kPair, ePairRe-oPairRe*cc+oRe*sn, ePairIm-oPairIm*cc+oIm*sn)
	c.set(pos+kPair+half, ePairRe+oPairRe*cc-oRe*sn, ePairIm+oPairIm*cc-oIm*sn)
}

func fastEndpoint[T sampleFloat](c contiguousSamples[T], pos, half, k uint64) {
	eRe, eIm := c.at(pos + k)
	oRe, oIm := c.at(pos + half + k)
	c.set(pos+k, eRe+oRe, eIm+oIm)
	c.set(pos+k+half, eRe-oRe, eIm-oIm)
}

func fastBase2[T sampleFloat](c contiguousSamples[T], pos uint64) {
	x0re, x0im := c.at(pos)
	x1re, x1im := c.at(pos + 1)
	c.set(pos, x0re+x1re, x0im+x1im)
	c.set(pos+1, x0re-x1re, x0im-x1im)
}

func fastBase4[T sampleFloat](c contiguousSamples[T], pos uint64) {
	x0re, x0im := c.at(pos)
	x1re, x1im := c.at(pos + 1)
	x2re, x2im := c.at(pos + 2)
	x3re, x3im := c.at(pos + 3)

	s01re, s01im := x0re+x1re, x0im+x1im
	d01re, d01im := x0re-x1re, x0im-x1im
	s23re, s23im := x2re+x3re, x2im+x3im
	d23re, d23im := x2re-x3re, x2im-x3im

	c.set(pos, s01re+s23re, s01im+s23im)
	c.set(pos+1, d01re+d23re, d01im+d23im)
	c.set(pos+2, s01re-s23re, s01im-s23im)
	c.set(pos+3, d01re-d23re, d01im-d23im)
}

// fastBase8 composes two fastBase4 transforms of the even/odd halves with
// the shared fastCombine step, mirroring base8.
func fastBase8[T sampleFloat](c contiguousSamples[T], pos uint64) {
	fastBase4(c, pos)
	fastBase4(c, pos+4)
	fastQuad(c, pos, 4, 1, numeric.InvSqrt2[T](), numeric.InvSqrt2[T]())
	fastEndpoint(c, pos, 4, 0)
	fastEndpoint(c, pos, 4, 2)
}
