// Package sample implements the sample-array abstraction: an ordered,
// fixed-length sequence of uniform real or complex samples, optionally
// vectors of numbers, backed by one or two numeric buffers, that hides
// storage layout behind a small arithmetic vocabulary the transform kernels
// use.
//
// Real/complex and scalar/vector combine with contiguous or paged/common
// backing storage to give several concrete layouts. Here a single generic
// Array[T] carries a storageKind tag selected once at construction: the
// contiguous cases collapse into one "fast" branch operating on a cached raw
// slice, and the paged/common cases collapse into a "slow" branch going
// through the buffer.Buffer interface, since buffer.Paged already hides the
// block-windowing machinery at that layer.
package sample

import (
	"github.com/go-sfht/sfht/buffer"
	"github.com/go-sfht/sfht/internal/errs"
)

// storageKind is the tag selected once at construction, avoiding dynamic
// dispatch in the contiguous fast paths.
type storageKind uint8

const (
	fastReal storageKind = iota
	fastComplex
	slowReal
	slowComplex
)

// Array is the sample-array abstraction. It is never resized after
// construction.
type Array[T buffer.Float] struct {
	length     uint64
	isComplex  bool
	vectorLen  uint64 // 1 for scalar kinds
	vectorStep uint64

	kind storageKind

	re, im buffer.Buffer[T]

	reFast, imFast []T
	reBase, imBase uint64
}

// GuaranteedCompatibleSamplesArrayLength is the floor below which
// NewCompatible never fails for lengths up to max(self.length, this) given
// enough memory.
const GuaranteedCompatibleSamplesArrayLength = 64

// NewReal builds a real scalar or vector sample array over re, with
// vectorLen==1 meaning scalar. vectorStep must be >= vectorLen.
func NewReal[T buffer.Float](re buffer.Buffer[T], length, vectorLen, vectorStep uint64) (*Array[T], error) {
	return newArray[T](re, nil, length, false, vectorLen, vectorStep)
}

// NewComplex builds a complex scalar or vector sample array over (re, im).
func NewComplex[T buffer.Float](re, im buffer.Buffer[T], length, vectorLen, vectorStep uint64) (*Array[T], error) {
	return newArray[T](re, im, length, true, vectorLen, vectorStep)
}

func newArray[T buffer.Float](re, im buffer.Buffer[T], length uint64, isComplex bool, vectorLen, vectorStep uint64) (*Array[T], error) {
	if re == nil {
		return nil, errs.NullArgument("re")
	}
	if isComplex && im == nil {
		return nil, errs.NullArgument("im")
	}
	if vectorLen == 0 {
		vectorLen = 1
	}
	if vectorStep == 0 {
		vectorStep = vectorLen
	}
	if vectorStep < vectorLen {
		return nil, errs.InvalidLength("vector_step %d < vector_length %d", vectorStep, vectorLen)
	}
	// (length-1)*vectorStep + vectorLen <= backing_buffer.length, checked
	// without overflowing even for lengths beyond 2^63.
	if length > 0 {
		needed, overflow := checkedSpan(length, vectorStep, vectorLen)
		if overflow || needed > re.Length() || (isComplex && needed > im.Length()) {
			return nil, errs.InvalidLength("backing buffer too short for shape (length=%d, vectorLen=%d, vectorStep=%d)", length, vectorLen, vectorStep)
		}
	}

	a := &Array[T]{
		length:     length,
		isComplex:  isComplex,
		vectorLen:  vectorLen,
		vectorStep: vectorStep,
		re:         re,
		im:         im,
	}
	if region, base, ok := re.AsContiguous(); ok {
		a.reFast, a.reBase = region, base
		if isComplex {
			if iregion, ibase, iok := im.AsContiguous(); iok {
				a.imFast, a.imBase = iregion, ibase
				a.kind = fastComplex
			} else {
				a.kind = slowComplex
			}
		} else {
			a.kind = fastReal
		}
	} else if isComplex {
		a.kind = slowComplex
	} else {
		a.kind = slowReal
	}
	return a, nil
}

// checkedSpan computes (length-1)*vectorStep + vectorLen without overflowing
// uint64 arithmetic, reporting overflow via the second return value.
func checkedSpan(length, vectorStep, vectorLen uint64) (uint64, bool) {
	n := length - 1
	hi, lo := bits64Mul(n, vectorStep)
	if hi != 0 {
		return 0, true
	}
	sum := lo + vectorLen
	if sum < lo {
		return 0, true
	}
	return sum, false
}

func bits64Mul(a, b uint64) (hi, lo uint64) {
	const mask32 = 1<<32 - 1
	aLo, aHi := a&mask32, a>>32
	bLo, bHi := b&mask32, b>>32
	t := aLo * bLo
	lo = t & mask32
	carry := t >> 32
	t = aHi*bLo + carry
	mid := t & mask32
	hi = t >> 32
	t = aLo*bHi + mid
	lo |= (t & mask32) << 32
	hi += t >> 32
	hi += aHi * bHi
	return
}

func (a *Array[T]) Length() uint64     { return a.length }
func (a *Array[T]) IsComplex() bool    { return a.isComplex }
func (a *Array[T]) VectorLen() uint64  { return a.vectorLen }
func (a *Array[T]) VectorStep() uint64 { return a.vectorStep }

// IsFast reports whether this array's backing storage is contiguous and
// directly indexable, the fast-path case checked before enabling concurrent
// task decomposition.
func (a *Array[T]) IsFast() bool { return a.kind == fastReal || a.kind == fastComplex }

// NewCompatible allocates a fresh array of the same kind and length len,
// backed by plain in-memory slices; this is guaranteed to succeed for
// len <= max(self.length, GuaranteedCompatibleSamplesArrayLength).
func (a *Array[T]) NewCompatible(length uint64) (*Array[T], error) {
	span, overflow := checkedSpan(maxU64(length, 1), a.vectorStep, a.vectorLen)
	if overflow {
		return nil, errs.TooLarge("length %d overflows with vectorStep=%d", length, a.vectorStep)
	}
	re := buffer.NewSlice[T](make([]T, span))
	if !a.isComplex {
		return NewReal[T](re, length, a.vectorLen, a.vectorStep)
	}
	im := buffer.NewSlice[T](make([]T, span))
	return NewComplex[T](re, im, length, a.vectorLen, a.vectorStep)
}

func maxU64(a, b uint64) uint64 {
	if a > b {
		return a
	}
	return b
}

