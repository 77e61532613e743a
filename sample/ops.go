package sample

// This file implements the sample array's arithmetic vocabulary. Every op
// loops over the vector dimension (1 iteration for scalar kinds); each
// element access branches on a.kind to pick the contiguous fast path (direct
// slice access) or the buffer.Buffer fallback (paged/common). Aliasing between
// dest and src indices is always safe: every op reads its operands into
// locals before writing.

// Copy sets self[dest] := src[srcI].
func (a *Array[T]) Copy(dest uint64, src *Array[T], srcI uint64) {
	for v := uint64(0); v < a.vectorLen; v++ {
		re, im := src.getAt(srcI, v)
		a.setAt(dest, v, re, im)
	}
}

// Swap exchanges self[i] and self[j].
func (a *Array[T]) Swap(i, j uint64) {
	for v := uint64(0); v < a.vectorLen; v++ {
		iRe, iIm := a.getAt(i, v)
		jRe, jIm := a.getAt(j, v)
		a.setAt(i, v, jRe, jIm)
		a.setAt(j, v, iRe, iIm)
	}
}

// Add sets self[dest] := src[i] + src[j].
func (a *Array[T]) Add(dest uint64, src *Array[T], i, j uint64) {
	for v := uint64(0); v < a.vectorLen; v++ {
		iRe, iIm := src.getAt(i, v)
		jRe, jIm := src.getAt(j, v)
		a.setAt(dest, v, iRe+jRe, iIm+jIm)
	}
}

// Sub sets self[dest] := src[i] - src[j].
func (a *Array[T]) Sub(dest uint64, src *Array[T], i, j uint64) {
	for v := uint64(0); v < a.vectorLen; v++ {
		iRe, iIm := src.getAt(i, v)
		jRe, jIm := src.getAt(j, v)
		a.setAt(dest, v, iRe-jRe, iIm-jIm)
	}
}

// AddFrom sets self[dest] := self[i] + src2[j].
func (a *Array[T]) AddFrom(dest, i uint64, src2 *Array[T], j uint64) {
	for v := uint64(0); v < a.vectorLen; v++ {
		iRe, iIm := a.getAt(i, v)
		jRe, jIm := src2.getAt(j, v)
		a.setAt(dest, v, iRe+jRe, iIm+jIm)
	}
}

// SubFrom sets self[dest] := self[i] - src2[j].
func (a *Array[T]) SubFrom(dest, i uint64, src2 *Array[T], j uint64) {
	for v := uint64(0); v < a.vectorLen; v++ {
		iRe, iIm := a.getAt(i, v)
		jRe, jIm := src2.getAt(j, v)
		a.setAt(dest, v, iRe-jRe, iIm-jIm)
	}
}

// AddSelf sets self[dest] := self[i] + self[j].
func (a *Array[T]) AddSelf(dest, i, j uint64) { a.Add(dest, a, i, j) }

// SubSelf sets self[dest] := self[i] - self[j].
func (a *Array[T]) SubSelf(dest, i, j uint64) { a.Sub(dest, a, i, j) }

// MulScalar performs complex multiplication self[dest] := src[i] * (aRe+i*aIm).
// For real kinds aIm is ignored and the result is src[i] * aRe.
func (a *Array[T]) MulScalar(dest uint64, src *Array[T], i uint64, aRe, aIm T) {
	for v := uint64(0); v < a.vectorLen; v++ {
		re, im := src.getAt(i, v)
		if !a.isComplex {
			a.setAt(dest, v, re*aRe, 0)
			continue
		}
		nRe := re*aRe - im*aIm
		nIm := re*aIm + im*aRe
		a.setAt(dest, v, nRe, nIm)
	}
}

// MulReal sets self[i] := self[i] * a.
func (a *Array[T]) MulReal(i uint64, scalar T) {
	for v := uint64(0); v < a.vectorLen; v++ {
		re, im := a.getAt(i, v)
		a.setAt(i, v, re*scalar, im*scalar)
	}
}

// CombineReal sets self[dest] := a1*self[i1] + a2*self[i2].
func (a *Array[T]) CombineReal(dest, i1 uint64, a1 T, i2 uint64, a2 T) {
	for v := uint64(0); v < a.vectorLen; v++ {
		r1, im1 := a.getAt(i1, v)
		r2, im2 := a.getAt(i2, v)
		a.setAt(dest, v, a1*r1+a2*r2, a1*im1+a2*im2)
	}
}

// MulRange scalar-multiplies the half-open range [from, to).
func (a *Array[T]) MulRange(from, to uint64, scalar T) {
	for i := from; i < to; i++ {
		a.MulReal(i, scalar)
	}
}

// getAt reads the vector element v of logical sample i, returning (re, im);
// im is 0 for real arrays.
func (a *Array[T]) getAt(i, v uint64) (re, im T) {
	phys := i*a.vectorStep + v
	switch a.kind {
	case fastReal:
		return a.reFast[a.reBase+phys], 0
	case fastComplex:
		return a.reFast[a.reBase+phys], a.imFast[a.imBase+phys]
	case slowReal:
		return a.re.Get(phys), 0
	default: // slowComplex
		return a.re.Get(phys), a.im.Get(phys)
	}
}

func (a *Array[T]) setAt(i, v uint64, re, im T) {
	phys := i*a.vectorStep + v
	switch a.kind {
	case fastReal:
		a.reFast[a.reBase+phys] = re
	case fastComplex:
		a.reFast[a.reBase+phys] = re
		a.imFast[a.imBase+phys] = im
	case slowReal:
		a.re.Set(phys, re)
	default: // slowComplex
		a.re.Set(phys, re)
		a.im.Set(phys, im)
	}
}

// At returns the scalar (vectorLen==1) sample at logical index i as (re, im).
func (a *Array[T]) At(i uint64) (re, im T) { return a.getAt(i, 0) }

// Set writes the scalar sample at logical index i.
func (a *Array[T]) Set(i uint64, re, im T) { a.setAt(i, 0, re, im) }

// AtVec returns vector element v of logical sample i.
func (a *Array[T]) AtVec(i, v uint64) (re, im T) { return a.getAt(i, v) }

// SetVec writes vector element v of logical sample i.
func (a *Array[T]) SetVec(i, v uint64, re, im T) { a.setAt(i, v, re, im) }

// Fast exposes the raw contiguous backing region(s) for the scalar
// (vectorLen==1, vectorStep==1) case, for use by kernel fast paths that
// bypass the arithmetic vocabulary entirely. ok is false unless this array
// is a fast-path scalar array.
func (a *Array[T]) Fast() (re, im []T, reBase, imBase uint64, ok bool) {
	if a.vectorLen != 1 || a.vectorStep != 1 {
		return nil, nil, 0, 0, false
	}
	switch a.kind {
	case fastReal:
		return a.reFast, nil, a.reBase, 0, true
	case fastComplex:
		return a.reFast, a.imFast, a.reBase, a.imBase, true
	default:
		return nil, nil, 0, 0, false
	}
}
