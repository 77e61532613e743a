// Package matrix provides the minimal Matrix collaborator: a k-dimensional
// array with a flat backing sample sequence, an array() view, and sub_arr()
// windows. Dimension equality, tiling metadata and untiling are external
// concerns this package does not model; it exists so TransformMatrix and
// the spectrum operators have a concrete type to orchestrate.
package matrix

import (
	"github.com/go-sfht/sfht/buffer"
	"github.com/go-sfht/sfht/internal/errs"
	"github.com/go-sfht/sfht/sample"
)

// Matrix is a k-dimensional array of real samples with a flat backing
// sequence of length prod(dims).
type Matrix[T buffer.Float] struct {
	dims []int
	buf  *buffer.Slice[T]
	arr  *sample.Array[T]
}

// New allocates a zero-filled matrix with the given dimensions.
func New[T buffer.Float](dims []int) (*Matrix[T], error) {
	n, err := product(dims)
	if err != nil {
		return nil, err
	}
	data := make([]T, n)
	return Wrap[T](dims, data)
}

// Wrap builds a Matrix viewing data (length must equal prod(dims)) without
// copying.
func Wrap[T buffer.Float](dims []int, data []T) (*Matrix[T], error) {
	n, err := product(dims)
	if err != nil {
		return nil, err
	}
	if uint64(len(data)) != n {
		return nil, errs.SizeMismatch("backing data length %d does not match dims product %d", len(data), n)
	}
	buf := buffer.NewSlice[T](data)
	arr, err := sample.NewReal[T](buf, n, 1, 1)
	if err != nil {
		return nil, err
	}
	return &Matrix[T]{dims: append([]int(nil), dims...), buf: buf, arr: arr}, nil
}

func product(dims []int) (uint64, error) {
	if len(dims) == 0 {
		return 0, errs.InvalidLength("matrix must have at least one dimension")
	}
	n := uint64(1)
	for _, d := range dims {
		if d < 0 {
			return 0, errs.InvalidLength("negative dimension %d", d)
		}
		n *= uint64(d)
	}
	return n, nil
}

// Dims returns a copy of the dimension vector.
func (m *Matrix[T]) Dims() []int { return append([]int(nil), m.dims...) }

// Data exposes the flat backing slice directly, for callers (like the
// spectrum package) that need contiguous access without going through the
// sample-array vocabulary.
func (m *Matrix[T]) Data() []T { return m.buf.Raw() }

// Array returns the flat backing sample sequence as a sample.Array, i.e.
// the array() view.
func (m *Matrix[T]) Array() *sample.Array[T] { return m.arr }

// SubArr returns a sample.Array view over [offset, offset+count) of the
// flat backing sequence.
func (m *Matrix[T]) SubArr(offset, count uint64) (*sample.Array[T], error) {
	sub := m.buf.SubArr(offset, count)
	return sample.NewReal[T](sub, count, 1, 1)
}

// DimSize returns the size of dimension d.
func (m *Matrix[T]) DimSize(d int) int { return m.dims[d] }

// RowMajorStride returns the flat-index stride of dimension d (the product
// of all dimension sizes after d).
func (m *Matrix[T]) RowMajorStride(d int) uint64 {
	s := uint64(1)
	for i := d + 1; i < len(m.dims); i++ {
		s *= uint64(m.dims[i])
	}
	return s
}
