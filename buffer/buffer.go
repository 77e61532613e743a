// Package buffer models the numeric-buffer collaborator layer: ordered
// sequences of floating-point samples with random-access get/set, bulk
// block transfer, and an optional contiguous-region escape hatch that the
// sample-array layer (package sample) uses to pick its fastest
// specialization.
package buffer

// Float is the scalar constraint shared by every generic kernel in this
// module, giving a single generic implementation for both float32 and
// float64 instead of separate hand-duplicated code paths.
type Float interface {
	~float32 | ~float64
}

// Buffer is the external numeric-buffer collaborator interface.
type Buffer[T Float] interface {
	Length() uint64
	Get(i uint64) T
	Set(i uint64, v T)

	// BulkGet copies count samples starting at offset into dst starting at
	// dstOffset.
	BulkGet(offset uint64, dst []T, dstOffset int, count int)
	// BulkSet copies count samples from src starting at srcOffset into this
	// buffer starting at offset.
	BulkSet(offset uint64, src []T, srcOffset int, count int)

	// SubArr returns a view over [offset, offset+count).
	SubArr(offset, count uint64) Buffer[T]

	// AsContiguous returns the underlying contiguous region and the logical
	// base offset of index 0 within it, when this buffer is backed by a
	// single in-memory slice. ok is false for paged/remote buffers.
	AsContiguous() (region []T, base uint64, ok bool)
}
