package fht

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-sfht/sfht/buffer"
	"github.com/go-sfht/sfht/sample"
)

// slowHartley is the O(N^2) reference transform: H_k = sum_t x_t*cas(2*pi*k*t/N)
// where cas(x) = cos(x) + sin(x).
func slowHartley(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	for k := 0; k < n; k++ {
		var sum float64
		for t := 0; t < n; t++ {
			phi := 2 * math.Pi * float64(k*t) / float64(n)
			sum += x[t] * (math.Cos(phi) + math.Sin(phi))
		}
		out[k] = sum
	}
	return out
}

func randomReal(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = rand.NormFloat64()
	}
	return x
}

func newRealArray(t *testing.T, x []float64) *sample.Array[float64] {
	t.Helper()
	arr, err := sample.NewReal[float64](buffer.NewSlice(x), uint64(len(x)), 1, 1)
	require.NoError(t, err)
	return arr
}

func TestTransformMatchesSlowHartley(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16, 32, 128} {
		x := randomReal(n)
		want := slowHartley(x)

		arr := newRealArray(t, append([]float64(nil), x...))
		require.NoError(t, Transform[float64](arr, false, Config{}, nil))

		for i := 0; i < n; i++ {
			got, _ := arr.At(uint64(i))
			assert.InDeltaf(t, want[i], got, 1e-6, "index %d n=%d", i, n)
		}
	}
}

func TestTransformRoundTrip(t *testing.T) {
	n := 64
	x := randomReal(n)
	arr := newRealArray(t, append([]float64(nil), x...))

	require.NoError(t, Transform[float64](arr, false, Config{}, nil))
	require.NoError(t, Transform[float64](arr, true, Config{}, nil))

	for i := 0; i < n; i++ {
		got, _ := arr.At(uint64(i))
		assert.InDelta(t, x[i], got, 1e-9)
	}
}

func TestTransformComplexAppliesPerComponent(t *testing.T) {
	n := 16
	re, im := randomReal(n), randomReal(n)
	wantRe, wantIm := slowHartley(re), slowHartley(im)

	arr, err := sample.NewComplex[float64](buffer.NewSlice(append([]float64(nil), re...)), buffer.NewSlice(append([]float64(nil), im...)), uint64(n), 1, 1)
	require.NoError(t, err)
	require.NoError(t, Transform[float64](arr, false, Config{}, nil))

	for i := 0; i < n; i++ {
		gotRe, gotIm := arr.At(uint64(i))
		assert.InDeltaf(t, wantRe[i], gotRe, 1e-6, "re[%d]", i)
		assert.InDeltaf(t, wantIm[i], gotIm, 1e-6, "im[%d]", i)
	}
}

func TestTransformRejectsNonPowerOfTwo(t *testing.T) {
	arr := newRealArray(t, randomReal(12))
	err := Transform[float64](arr, false, Config{}, nil)
	assert.Error(t, err)
}

func TestTransformTrivialLengths(t *testing.T) {
	arr := newRealArray(t, []float64{})
	require.NoError(t, Transform[float64](arr, false, Config{}, nil))

	arr1 := newRealArray(t, []float64{5})
	require.NoError(t, Transform[float64](arr1, false, Config{}, nil))
	got, _ := arr1.At(0)
	assert.Equal(t, float64(5), got)
}

// newPagedArray builds a real sample array backed by buffer.Paged, forcing
// the slowReal storage kind and its per-element Buffer dispatch instead of
// the contiguous fast path.
func newPagedArray(t *testing.T, x []float64) *sample.Array[float64] {
	t.Helper()
	store := make([]float64, len(x))
	copy(store, x)
	load := func(offset uint64, dst []float64) { copy(dst, store[offset:offset+uint64(len(dst))]) }
	save := func(offset uint64, src []float64) { copy(store[offset:offset+uint64(len(src))], src) }
	buf := buffer.NewPaged[float64](uint64(len(x)), load, save)
	arr, err := sample.NewReal[float64](buf, uint64(len(x)), 1, 1)
	require.NoError(t, err)
	return arr
}

func TestTransformMatchesSlowHartleyOverPagedStorage(t *testing.T) {
	n := 32
	x := randomReal(n)
	want := slowHartley(x)

	arr := newPagedArray(t, x)
	require.False(t, arr.IsFast())
	require.NoError(t, Transform[float64](arr, false, Config{}, nil))

	for i := 0; i < n; i++ {
		got, _ := arr.At(uint64(i))
		assert.InDeltaf(t, want[i], got, 1e-6, "index %d", i)
	}
}

func TestTransformComplexOverPagedStorageRoundTrips(t *testing.T) {
	n := 16
	re, im := randomReal(n), randomReal(n)
	wantRe, wantIm := append([]float64(nil), re...), append([]float64(nil), im...)

	reStore, imStore := make([]float64, n), make([]float64, n)
	copy(reStore, re)
	copy(imStore, im)
	reBuf := buffer.NewPaged[float64](uint64(n),
		func(offset uint64, dst []float64) { copy(dst, reStore[offset:offset+uint64(len(dst))]) },
		func(offset uint64, src []float64) { copy(reStore[offset:offset+uint64(len(src))], src) })
	imBuf := buffer.NewPaged[float64](uint64(n),
		func(offset uint64, dst []float64) { copy(dst, imStore[offset:offset+uint64(len(dst))]) },
		func(offset uint64, src []float64) { copy(imStore[offset:offset+uint64(len(src))], src) })

	arr, err := sample.NewComplex[float64](reBuf, imBuf, uint64(n), 1, 1)
	require.NoError(t, err)
	require.False(t, arr.IsFast())

	require.NoError(t, Transform[float64](arr, false, Config{}, nil))
	require.NoError(t, Transform[float64](arr, true, Config{}, nil))

	for i := 0; i < n; i++ {
		gotRe, gotIm := arr.At(uint64(i))
		assert.InDeltaf(t, wantRe[i], gotRe, 1e-9, "re[%d]", i)
		assert.InDeltaf(t, wantIm[i], gotIm, 1e-9, "im[%d]", i)
	}
}
