// Package bitrev implements the bit-reversal reorder permutation required
// before the iterative radix-2 butterfly loop in both the FFT and FHT
// kernels.
package bitrev

import (
	"math/bits"

	"github.com/go-sfht/sfht/internal/errs"
	"github.com/go-sfht/sfht/internal/progress"
	"github.com/go-sfht/sfht/roots"
)

// swapper is satisfied by sample.Array[T]; declared narrowly here to avoid
// an import cycle between package sample and package bitrev.
type swapper interface {
	Swap(i, j uint64)
}

// progressBlock reports progress in blocks of 1024 or 65536 items: small
// transforms report every 1024 indices visited, large ones every 65536, to keep the
// reporting overhead proportional to the work.
func progressBlock(n uint64) uint64 {
	if n <= 1<<20 {
		return 1024
	}
	return 65536
}

// Reorder permutes a length-N (N a power of two) sample array into the
// bit-reversed order the iterative butterfly requires. N<=2 is a no-op.
func Reorder(samples swapper, n uint64, ctx *progress.Context) error {
	if n&(n-1) != 0 {
		return errs.InvalidLength("bit-reversal length %d is not a power of two", n)
	}
	if n <= 2 {
		return nil
	}

	// n == 2^k; reversing all 64 bits of i and shifting right by (64-k)
	// brings the reversed low-k bits of i into the low-k bit positions.
	k := bits.Len64(n) - 1
	shift := uint(64 - k)

	block := progressBlock(n)
	done := uint64(0)
	for i := uint64(1); i <= n-2; i++ {
		j := reverseBits64(i) >> shift
		if i < j {
			samples.Swap(i, j)
		}
		done++
		if done%block == 0 {
			ctx.UpdateProgress("bit-reversal", done, n-2)
			if ctx.CheckInterruption() {
				return errs.Cancelled()
			}
		}
	}
	ctx.UpdateProgress("bit-reversal", n-2, n-2)
	return nil
}

// reverseBits64 reverses the bits of a 64-bit index using the 16-bit
// REVERSE_16 table four times.
func reverseBits64(i uint64) uint64 {
	r0 := uint64(roots.Reverse16[uint16(i)])
	r1 := uint64(roots.Reverse16[uint16(i>>16)])
	r2 := uint64(roots.Reverse16[uint16(i>>32)])
	r3 := uint64(roots.Reverse16[uint16(i>>48)])
	return (r0 << 48) | (r1 << 32) | (r2 << 16) | r3
}
