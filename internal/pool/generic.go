package pool

import "github.com/go-sfht/sfht/buffer"

// AcquireFloat acquires a length-n scratch buffer of T from the
// process-wide float32/float64 pool, dispatching on T the way
// internal/numeric dispatches its scalar math helpers.
func AcquireFloat[T buffer.Float](n int) []T {
	switch any(*new(T)).(type) {
	case float32:
		return any(For32().Acquire(n)).([]T)
	case float64:
		return any(For64().Acquire(n)).([]T)
	default:
		return make([]T, n)
	}
}

// ReleaseFloat returns buf to the process-wide pool matching T. Safe to
// call with a buffer that did not originate from AcquireFloat.
func ReleaseFloat[T buffer.Float](buf []T) {
	switch any(*new(T)).(type) {
	case float32:
		For32().Release(any(buf).([]float32))
	case float64:
		For64().Release(any(buf).([]float64))
	}
}

// SizeOfFloat returns the size in bytes of one T, for budgeting pooled
// allocations against a byte-denominated cap.
func SizeOfFloat[T buffer.Float]() uint64 {
	switch any(*new(T)).(type) {
	case float32:
		return 4
	default:
		return 8
	}
}
