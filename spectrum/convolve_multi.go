package spectrum

import (
	"fmt"
	"math/bits"

	"github.com/go-sfht/sfht/buffer"
	"github.com/go-sfht/sfht/fft"
	"github.com/go-sfht/sfht/sample"
	"github.com/go-sfht/sfht/threadpool"
)

// isPow2 reports whether n is a power of two, ported from andewx-gofft's
// utils.go IsPow2.
func isPow2(n int) bool {
	if n == 0 {
		return false
	}
	return uint64(n)&uint64(n-1) == 0
}

// nextPow2 returns the smallest power of two >= n, ported from
// andewx-gofft's utils.go NextPow2.
func nextPow2(n int) int {
	if n == 0 {
		return 1
	}
	return 1 << uint(bits.Len64(uint64(n-1)))
}

func zeroPad[T buffer.Float](re, im []T, n int) (reOut, imOut []T) {
	reOut, imOut = make([]T, n), make([]T, n)
	copy(reOut, re)
	copy(imOut, im)
	return
}

func fftComplex[T buffer.Float](re, im []T, inverse bool) error {
	buf := buffer.NewSlice[T](re)
	ibuf := buffer.NewSlice[T](im)
	arr, err := sample.NewComplex[T](buf, ibuf, uint64(len(re)), 1, 1)
	if err != nil {
		return err
	}
	return fft.Transform[T](arr, inverse, fft.Config{}, nil)
}

// convolvePair multiplies x and y in the Fourier domain in place, storing
// the result in x and zeroing y, mirroring andewx-gofft's convolve.
func convolvePair[T buffer.Float](xre, xim, yre, yim []T) error {
	if err := fftComplex(xre, xim, false); err != nil {
		return err
	}
	if err := fftComplex(yre, yim, false); err != nil {
		return err
	}
	if err := FourierConvolve(xre, xim, yre, yim, xre, xim, TaskConfig{}); err != nil {
		return err
	}
	for i := range yre {
		yre[i], yim[i] = 0, 0
	}
	return fftComplex(xre, xim, true)
}

// Convolve computes the discrete linear convolution of x and y via FFT,
// zero-padding both to the next power of two at least len(x)+len(y)-1,
// ported from andewx-gofft's Convolve.
func Convolve[T buffer.Float](xre, xim, yre, yim []T) (re, im []T, err error) {
	if len(xre) == 0 && len(yre) == 0 {
		return nil, nil, nil
	}
	n := len(xre) + len(yre) - 1
	N := nextPow2(n)
	xre, xim = zeroPad(xre, xim, N)
	yre, yim = zeroPad(yre, yim, N)
	if err := convolvePair(xre, xim, yre, yim); err != nil {
		return nil, nil, err
	}
	return xre[:n], xim[:n], nil
}

// FastMultiConvolve computes the discrete convolution of N/n arrays of
// length n each (concatenated into X), each already zero-padded and N/n a
// power of two, mirroring andewx-gofft's FastMultiConvolve. When pool is
// non-nil the per-level pairwise convolutions run across it via
// threadpool.Partition.
func FastMultiConvolve[T buffer.Float](xre, xim []T, n int, pool threadpool.ThreadPool) error {
	N := len(xre)
	if N != len(xim) {
		return fmt.Errorf("sfht: xre/xim length mismatch: %d vs %d", len(xre), len(xim))
	}
	if N%n != 0 {
		return fmt.Errorf("sfht: len(X) %d not divisible by n (%d)", N, n)
	}
	if !isPow2(n) || !isPow2(N/n) {
		return fmt.Errorf("sfht: both the per-array length %d and array count %d must be powers of two", n, N/n)
	}
	for ; n != N; n <<= 1 {
		n2 := n << 1
		pairs := N / n2
		work := func(lo, hi int) error {
			for i := lo; i < hi; i++ {
				base := i * n2
				if err := convolvePair(xre[base:base+n], xim[base:base+n], xre[base+n:base+n2], xim[base+n:base+n2]); err != nil {
					return err
				}
			}
			return nil
		}
		if pool == nil || pairs <= 1 {
			if err := work(0, pairs); err != nil {
				return err
			}
			continue
		}
		tasks := threadpool.Partition(pairs, pool.RecommendedParallelism(), work)
		if err := pool.PerformTasks(tasks); err != nil {
			return err
		}
	}
	return nil
}

// MultiConvolve computes the discrete convolution of many arrays using the
// hierarchical pairwise-FFT algorithm of andewx-gofft's MultiConvolve,
// generalized to the (re, im) slice-pair representation used throughout
// this package. arrays with mismatched lengths are handled by bucketing by
// padded length and merging buckets level by level.
func MultiConvolve[T buffer.Float](xre, xim [][]T) (re, im []T, err error) {
	type bucket struct{ re, im [][]T }
	byLength := map[int]*bucket{}
	mx := 1
	returnLength := 1
	for i := range xre {
		n := nextPow2(2 * len(xre[i]))
		re, im := zeroPad(xre[i], xim[i], n)
		b := byLength[n]
		if b == nil {
			b = &bucket{}
			byLength[n] = b
		}
		b.re = append(b.re, re)
		b.im = append(b.im, im)
		if n > mx {
			mx = n
		}
		returnLength += len(xre[i]) - 1
	}
	if returnLength <= 0 {
		return nil, nil, nil
	}
	for i := 1; i <= mx; i *= 2 {
		b := byLength[i]
		if b != nil && len(b.re) > 0 {
			if len(byLength) == 1 {
				return mergeSingleLevel[T](b.re, b.im, returnLength)
			}
			for j := 0; j+1 < len(b.re); j += 2 {
				if err := convolvePair(b.re[j], b.im[j], b.re[j+1], b.im[j+1]); err != nil {
					return nil, nil, err
				}
				nr, ni := zeroPad(b.re[j], b.im[j], 2*i)
				nb := byLength[2*i]
				if nb == nil {
					nb = &bucket{}
					byLength[2*i] = nb
				}
				nb.re = append(nb.re, nr)
				nb.im = append(nb.im, ni)
				if 2*i > mx {
					mx = 2 * i
				}
			}
			if len(b.re)%2 == 1 {
				last := len(b.re) - 1
				nr, ni := zeroPad(b.re[last], b.im[last], 2*i)
				nb := byLength[2*i]
				if nb == nil {
					nb = &bucket{}
					byLength[2*i] = nb
				}
				nb.re = append(nb.re, nr)
				nb.im = append(nb.im, ni)
			}
		}
		delete(byLength, i)
	}
	last := byLength[mx]
	return last.re[0][:returnLength], last.im[0][:returnLength], nil
}

func mergeSingleLevel[T buffer.Float](re, im [][]T, returnLength int) ([]T, []T, error) {
	if len(re) == 1 {
		return re[0][:returnLength], im[0][:returnLength], nil
	}
	if len(re) == 2 {
		if err := convolvePair(re[0], im[0], re[1], im[1]); err != nil {
			return nil, nil, err
		}
		return re[0][:returnLength], im[0][:returnLength], nil
	}
	n := len(re[0])
	n2 := nextPow2(len(re))
	dre := make([]T, n2*n)
	dim := make([]T, n2*n)
	for j, arr := range re {
		copy(dre[n*j:], arr)
		copy(dim[n*j:], im[j])
	}
	for j := len(re); j < n2; j++ {
		dre[n*j] = 1
	}
	if err := FastMultiConvolve[T](dre, dim, n, nil); err != nil {
		return nil, nil, err
	}
	return dre[:returnLength], dim[:returnLength], nil
}
