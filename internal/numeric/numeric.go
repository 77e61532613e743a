// Package numeric holds the tiny per-scalar-type math helpers the generic
// transform kernels need (sqrt, constants), dispatching to
// github.com/chewxy/math32 for T=float32 and the standard math package for
// T=float64, so the float32 instantiation of each generic kernel gets true
// float32 math rather than promote-to-float64-and-truncate.
package numeric

import (
	"math"

	"github.com/chewxy/math32"

	"github.com/go-sfht/sfht/buffer"
)

// Sqrt returns sqrt(x) using the scalar type's native math library.
func Sqrt[T buffer.Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Sqrt(v))
	case float64:
		return T(math.Sqrt(v))
	default:
		panic("numeric: unsupported scalar type")
	}
}

// Sqrt2 returns sqrt(2) in T's native precision.
func Sqrt2[T buffer.Float]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(math32.Sqrt2)
	default:
		return T(math.Sqrt2)
	}
}

// InvSqrt2 returns 1/sqrt(2) == sqrt(2)/2 in T's native precision, the
// twiddle used by the FHT recursion's midpoint butterfly.
func InvSqrt2[T buffer.Float]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(1 / math32.Sqrt2)
	default:
		return T(1 / math.Sqrt2)
	}
}

// Cos returns cos(x) using the scalar type's native math library.
func Cos[T buffer.Float](x T) T {
	switch v := any(x).(type) {
	case float32:
		return T(math32.Cos(v))
	case float64:
		return T(math.Cos(v))
	default:
		panic("numeric: unsupported scalar type")
	}
}

// Pi returns pi in T's native precision.
func Pi[T buffer.Float]() T {
	var zero T
	switch any(zero).(type) {
	case float32:
		return T(math32.Pi)
	default:
		return T(math.Pi)
	}
}
