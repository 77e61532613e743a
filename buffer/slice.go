package buffer

// Slice is the reference contiguous, in-RAM Buffer implementation: a thin
// wrapper over a Go slice plus a base offset, always answering true from
// AsContiguous. This is the fast common case the contiguous direct-access
// fast paths are built around.
type Slice[T Float] struct {
	data []T
	base uint64
}

// NewSlice wraps data as a zero-offset contiguous Buffer.
func NewSlice[T Float](data []T) *Slice[T] {
	return &Slice[T]{data: data}
}

func (s *Slice[T]) Length() uint64 { return uint64(len(s.data)) }

func (s *Slice[T]) Get(i uint64) T { return s.data[i] }

func (s *Slice[T]) Set(i uint64, v T) { s.data[i] = v }

func (s *Slice[T]) BulkGet(offset uint64, dst []T, dstOffset int, count int) {
	copy(dst[dstOffset:dstOffset+count], s.data[offset:offset+uint64(count)])
}

func (s *Slice[T]) BulkSet(offset uint64, src []T, srcOffset int, count int) {
	copy(s.data[offset:offset+uint64(count)], src[srcOffset:srcOffset+count])
}

func (s *Slice[T]) SubArr(offset, count uint64) Buffer[T] {
	return &Slice[T]{data: s.data[offset : offset+count]}
}

func (s *Slice[T]) AsContiguous() ([]T, uint64, bool) {
	return s.data, s.base, true
}

// Raw returns the underlying Go slice directly.
func (s *Slice[T]) Raw() []T { return s.data }
