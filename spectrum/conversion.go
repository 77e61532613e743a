// Package spectrum implements the spectrum-domain operators: Hartley<->
// Fourier conversion and the Fourier/Hartley convolution-spectrum operators
// built on top of them.
//
// The n-dimensional conversion is a recursive pairwise traversal of the
// outermost remaining dimension: at each level the array is split into two
// paired slabs at indices k1 and N-k1, each slab is converted recursively
// (bottoming out at the 1-D closed form once only the innermost dimension
// remains), and the two converted slabs are combined with s=(w1+w2)/2,
// d=(w1-w2)/2, producing f1=s-i*d, f2=s+i*d element-wise across the slab.
// This module implements that recursion directly over flat row-major
// slices rather than hand-coding specialized closed forms per depth
// separately (see DESIGN.md for the tradeoff). The outer k1 loop at every
// level runs through runK1, which splits it across a TaskConfig's thread
// pool when the operands are contiguous; every slab allocated only to feed
// the next combine step is charged against the TaskConfig's memory budget
// and released as soon as it is consumed.
package spectrum

import (
	"github.com/go-sfht/sfht/buffer"
	"github.com/go-sfht/sfht/internal/errs"
	"github.com/go-sfht/sfht/internal/pool"
)

func prod(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// hartleyToFourierRecursive converts a real-valued SFHT spectrum h (flat,
// row-major, shape=shape) into a complex Fourier spectrum (fre, fim). The
// returned scratch is owned by the caller: intermediate callers release it
// once consumed, the outermost caller keeps it as the result.
func hartleyToFourierRecursive[T buffer.Float](h []T, shape []int, cfg TaskConfig, budget *pool.Budget) (fre, fim scratch[T], err error) {
	if len(shape) == 1 {
		fre, fim = convert1D(h, nil, shape[0], budget)
		return fre, fim, nil
	}
	n := shape[0]
	slabShape := shape[1:]
	slabSize := prod(slabShape)
	fre = acquireScratch[T](n*slabSize, budget)
	fim = acquireScratch[T](n*slabSize, budget)
	err = runK1(n, cfg, func(k1 int) error {
		k2 := (n - k1) % n
		w1, w1i, werr := hartleyToFourierRecursive[T](h[k1*slabSize:(k1+1)*slabSize], slabShape, cfg, budget)
		if werr != nil {
			return werr
		}
		w2, w2i, werr := hartleyToFourierRecursive[T](h[k2*slabSize:(k2+1)*slabSize], slabShape, cfg, budget)
		if werr != nil {
			w1.release()
			w1i.release()
			return werr
		}
		combineSlabForward(w1.buf, w1i.buf, w2.buf, w2i.buf, fre.buf[k1*slabSize:], fim.buf[k1*slabSize:], fre.buf[k2*slabSize:], fim.buf[k2*slabSize:], slabSize)
		w1.release()
		w1i.release()
		w2.release()
		w2i.release()
		return nil
	})
	return fre, fim, err
}

// hartleyToFourierComplexRecursive is the complex-input variant: the
// backing Hartley spectrum itself has a real and imaginary component, for
// transforms of complex-valued input data.
func hartleyToFourierComplexRecursive[T buffer.Float](hre, him []T, shape []int, cfg TaskConfig, budget *pool.Budget) (fre, fim scratch[T], err error) {
	if len(shape) == 1 {
		fre, fim = convert1D(hre, him, shape[0], budget)
		return fre, fim, nil
	}
	n := shape[0]
	slabShape := shape[1:]
	slabSize := prod(slabShape)
	fre = acquireScratch[T](n*slabSize, budget)
	fim = acquireScratch[T](n*slabSize, budget)
	err = runK1(n, cfg, func(k1 int) error {
		k2 := (n - k1) % n
		w1, w1i, werr := hartleyToFourierComplexRecursive[T](hre[k1*slabSize:(k1+1)*slabSize], him[k1*slabSize:(k1+1)*slabSize], slabShape, cfg, budget)
		if werr != nil {
			return werr
		}
		w2, w2i, werr := hartleyToFourierComplexRecursive[T](hre[k2*slabSize:(k2+1)*slabSize], him[k2*slabSize:(k2+1)*slabSize], slabShape, cfg, budget)
		if werr != nil {
			w1.release()
			w1i.release()
			return werr
		}
		combineSlabForward(w1.buf, w1i.buf, w2.buf, w2i.buf, fre.buf[k1*slabSize:], fim.buf[k1*slabSize:], fre.buf[k2*slabSize:], fim.buf[k2*slabSize:], slabSize)
		w1.release()
		w1i.release()
		w2.release()
		w2i.release()
		return nil
	})
	return fre, fim, err
}

// convert1D is the depth==1 closed form: for each pair (k1, N-k1),
// F_k = (H_k+H_{-k})/2 - i*(H_k-H_{-k})/2. him may be nil for a real H.
func convert1D[T buffer.Float](hre, him []T, n int, budget *pool.Budget) (fre, fim scratch[T]) {
	fre = acquireScratch[T](n, budget)
	fim = acquireScratch[T](n, budget)
	two := T(2)
	for k1 := 0; k1 <= n/2; k1++ {
		k2 := (n - k1) % n
		h1re := hre[k1]
		h2re := hre[k2]
		var h1im, h2im T
		if him != nil {
			h1im, h2im = him[k1], him[k2]
		}
		sRe, sIm := (h1re+h2re)/two, (h1im+h2im)/two
		dRe, dIm := (h1re-h2re)/two, (h1im-h2im)/two
		// f1 = s - i*d = (sRe+dIm) + i*(sIm-dRe); f2 = s + i*d.
		fre.buf[k1], fim.buf[k1] = sRe+dIm, sIm-dRe
		fre.buf[k2], fim.buf[k2] = sRe-dIm, sIm+dRe
	}
	return fre, fim
}

// combineSlabForward applies s=(w1+w2)/2, d=(w1-w2)/2, f1=s-i*d, f2=s+i*d
// element-wise across a slab of size n, writing into f1re/f1im/f2re/f2im.
func combineSlabForward[T buffer.Float](w1re, w1im, w2re, w2im, f1re, f1im, f2re, f2im []T, n int) {
	two := T(2)
	for i := 0; i < n; i++ {
		sRe, sIm := (w1re[i]+w2re[i])/two, (w1im[i]+w2im[i])/two
		dRe, dIm := (w1re[i]-w2re[i])/two, (w1im[i]-w2im[i])/two
		f1re[i], f1im[i] = sRe+dIm, sIm-dRe
		f2re[i], f2im[i] = sRe-dIm, sIm+dRe
	}
}

// HartleyToFourierReal converts a real SFHT spectrum h into a complex
// Fourier spectrum (fRe, fIm), parallelizing the outer k1 iteration across
// cfg.Pool and charging recursive scratch slabs against cfg.MaxTempMemory.
func HartleyToFourierReal[T buffer.Float](h []T, shape []int, cfg TaskConfig) (fRe, fIm []T, err error) {
	if err := checkShape(shape, h); err != nil {
		return nil, nil, err
	}
	fre, fim, err := hartleyToFourierRecursive[T](h, shape, cfg, cfg.budget())
	if err != nil {
		return nil, nil, err
	}
	return fre.buf, fim.buf, nil
}

// HartleyToFourierComplex converts a complex SFHT spectrum (hRe, hIm) into
// a complex Fourier spectrum.
func HartleyToFourierComplex[T buffer.Float](hRe, hIm []T, shape []int, cfg TaskConfig) (fRe, fIm []T, err error) {
	if err := checkShape(shape, hRe); err != nil {
		return nil, nil, err
	}
	if len(hIm) != len(hRe) {
		return nil, nil, errs.SizeMismatch("hRe/hIm length mismatch: %d vs %d", len(hRe), len(hIm))
	}
	fre, fim, err := hartleyToFourierComplexRecursive[T](hRe, hIm, shape, cfg, cfg.budget())
	if err != nil {
		return nil, nil, err
	}
	return fre.buf, fim.buf, nil
}

// FourierToHartleyReal converts a complex Fourier spectrum (fRe, fIm) back
// into a real SFHT spectrum. For a 1-D shape it uses the elementwise identity
// H_k = Re(F_k) - Im(F_k) (valid whenever the original time-domain data was
// real, which conjugate-symmetrizes F), in a single pass split across
// cfg.Pool the same way the recursive operators do. For a multi-dimensional
// shape it runs the recursive pairwise inversion and keeps its real part.
func FourierToHartleyReal[T buffer.Float](fRe, fIm []T, shape []int, cfg TaskConfig) (h []T, err error) {
	if err := checkShape(shape, fRe); err != nil {
		return nil, err
	}
	if len(fIm) != len(fRe) {
		return nil, errs.SizeMismatch("fRe/fIm length mismatch: %d vs %d", len(fRe), len(fIm))
	}
	if len(shape) > 1 {
		hre, him, err := fourierToHartleyRecursive[T](fRe, fIm, shape, cfg, cfg.budget())
		if err != nil {
			return nil, err
		}
		him.release()
		return hre.buf, nil
	}
	h = make([]T, len(fRe))
	err = runPartitioned(len(h), cfg, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			h[i] = fRe[i] - fIm[i]
		}
		return nil
	})
	return h, err
}

// FourierToHartleyComplex converts a complex Fourier spectrum back into a
// complex SFHT spectrum via the general recursive pairwise inversion (no
// real-symmetry shortcut is available here).
func FourierToHartleyComplex[T buffer.Float](fRe, fIm []T, shape []int, cfg TaskConfig) (hRe, hIm []T, err error) {
	if err := checkShape(shape, fRe); err != nil {
		return nil, nil, err
	}
	if len(fIm) != len(fRe) {
		return nil, nil, errs.SizeMismatch("fRe/fIm length mismatch: %d vs %d", len(fRe), len(fIm))
	}
	hre, him, err := fourierToHartleyRecursive[T](fRe, fIm, shape, cfg, cfg.budget())
	if err != nil {
		return nil, nil, err
	}
	return hre.buf, him.buf, nil
}

func fourierToHartleyRecursive[T buffer.Float](fre, fim []T, shape []int, cfg TaskConfig, budget *pool.Budget) (hre, him scratch[T], err error) {
	n := shape[0]
	if len(shape) == 1 {
		hre, him = invert1D(fre, fim, n, budget)
		return hre, him, nil
	}
	slabShape := shape[1:]
	slabSize := prod(slabShape)
	hre = acquireScratch[T](n*slabSize, budget)
	him = acquireScratch[T](n*slabSize, budget)
	err = runK1(n, cfg, func(k1 int) error {
		k2 := (n - k1) % n
		h1re, h1im, h2re, h2im := combineSlabInverse(
			fre[k1*slabSize:(k1+1)*slabSize], fim[k1*slabSize:(k1+1)*slabSize],
			fre[k2*slabSize:(k2+1)*slabSize], fim[k2*slabSize:(k2+1)*slabSize], slabSize, budget)
		w1, w1i, werr := fourierToHartleyRecursive[T](h1re.buf, h1im.buf, slabShape, cfg, budget)
		h1re.release()
		h1im.release()
		if werr != nil {
			h2re.release()
			h2im.release()
			return werr
		}
		w2, w2i, werr := fourierToHartleyRecursive[T](h2re.buf, h2im.buf, slabShape, cfg, budget)
		h2re.release()
		h2im.release()
		if werr != nil {
			w1.release()
			w1i.release()
			return werr
		}
		copy(hre.buf[k1*slabSize:], w1.buf)
		copy(him.buf[k1*slabSize:], w1i.buf)
		copy(hre.buf[k2*slabSize:], w2.buf)
		copy(him.buf[k2*slabSize:], w2i.buf)
		w1.release()
		w1i.release()
		w2.release()
		w2i.release()
		return nil
	})
	return hre, him, err
}

// invert1D is the base-case inverse of convert1D: given f1=F[k1], f2=F[N-k1],
// recover w1=H[k1], w2=H[N-k1] via s=(f1+f2)/2, d=i*(f1-f2)/2, w1=s+d, w2=s-d.
func invert1D[T buffer.Float](fre, fim []T, n int, budget *pool.Budget) (hre, him scratch[T]) {
	hre = acquireScratch[T](n, budget)
	him = acquireScratch[T](n, budget)
	two := T(2)
	for k1 := 0; k1 <= n/2; k1++ {
		k2 := (n - k1) % n
		f1re, f1im := fre[k1], fim[k1]
		f2re, f2im := fre[k2], fim[k2]
		sRe, sIm := (f1re+f2re)/two, (f1im+f2im)/two
		// d = i*(f1-f2)/2 = i*((f1re-f2re)+i(f1im-f2im))/2
		//   = (-(f1im-f2im) + i*(f1re-f2re))/2
		dRe := -(f1im - f2im) / two
		dIm := (f1re - f2re) / two
		hre.buf[k1], him.buf[k1] = sRe+dRe, sIm+dIm
		hre.buf[k2], him.buf[k2] = sRe-dRe, sIm-dIm
	}
	return hre, him
}

// combineSlabInverse is the multi-dimensional analogue of invert1D's
// s/d split, applied element-wise across a slab, returning the two
// recovered (still-complex) sub-slabs to recurse into.
func combineSlabInverse[T buffer.Float](f1re, f1im, f2re, f2im []T, n int, budget *pool.Budget) (h1re, h1im, h2re, h2im scratch[T]) {
	h1re, h1im = acquireScratch[T](n, budget), acquireScratch[T](n, budget)
	h2re, h2im = acquireScratch[T](n, budget), acquireScratch[T](n, budget)
	two := T(2)
	for i := 0; i < n; i++ {
		sRe, sIm := (f1re[i]+f2re[i])/two, (f1im[i]+f2im[i])/two
		dRe := -(f1im[i] - f2im[i]) / two
		dIm := (f1re[i] - f2re[i]) / two
		h1re.buf[i], h1im.buf[i] = sRe+dRe, sIm+dIm
		h2re.buf[i], h2im.buf[i] = sRe-dRe, sIm-dIm
	}
	return
}

func checkShape[T buffer.Float](shape []int, data []T) error {
	if len(shape) == 0 {
		return errs.InvalidLength("shape must have at least one dimension")
	}
	n := prod(shape)
	if n == 0 || n&(n-1) != 0 {
		return errs.InvalidLength("outermost-pairing requires a power-of-two total size, got %d", n)
	}
	if len(data) != n {
		return errs.SizeMismatch("data length %d does not match shape product %d", len(data), n)
	}
	return nil
}
