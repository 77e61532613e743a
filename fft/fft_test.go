package fft

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-sfht/sfht/buffer"
	"github.com/go-sfht/sfht/sample"
)

// slowDFT is the O(N^2) reference transform used to validate the radix-2
// kernel, in the same spirit as andewx-gofft's slowFFT test helper.
func slowDFT(re, im []float64, inverse bool) (oRe, oIm []float64) {
	n := len(re)
	oRe = make([]float64, n)
	oIm = make([]float64, n)
	sign := -1.0
	if inverse {
		sign = 1.0
	}
	for k := 0; k < n; k++ {
		var sumRe, sumIm float64
		for t := 0; t < n; t++ {
			phi := sign * 2 * math.Pi * float64(k*t) / float64(n)
			s, c := math.Sincos(phi)
			sumRe += re[t]*c - im[t]*s
			sumIm += re[t]*s + im[t]*c
		}
		oRe[k], oIm[k] = sumRe, sumIm
	}
	return
}

func randomComplex(n int) (re, im []float64) {
	re, im = make([]float64, n), make([]float64, n)
	for i := range re {
		re[i] = rand.NormFloat64()
		im[i] = rand.NormFloat64()
	}
	return
}

func newComplexArray(t *testing.T, re, im []float64) *sample.Array[float64] {
	t.Helper()
	arr, err := sample.NewComplex[float64](buffer.NewSlice(re), buffer.NewSlice(im), uint64(len(re)), 1, 1)
	require.NoError(t, err)
	return arr
}

func TestTransformMatchesSlowDFT(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16, 64, 256} {
		re, im := randomComplex(n)
		wantRe, wantIm := slowDFT(re, im, false)

		arr := newComplexArray(t, append([]float64(nil), re...), append([]float64(nil), im...))
		require.NoError(t, Transform[float64](arr, false, Config{}, nil))

		for i := 0; i < n; i++ {
			gotRe, gotIm := arr.At(uint64(i))
			assert.InDeltaf(t, wantRe[i], gotRe, 1e-6, "re[%d] n=%d", i, n)
			assert.InDeltaf(t, wantIm[i], gotIm, 1e-6, "im[%d] n=%d", i, n)
		}
	}
}

func TestTransformRoundTrip(t *testing.T) {
	n := 128
	re, im := randomComplex(n)
	arr := newComplexArray(t, append([]float64(nil), re...), append([]float64(nil), im...))

	require.NoError(t, Transform[float64](arr, false, Config{}, nil))
	require.NoError(t, Transform[float64](arr, true, Config{}, nil))

	for i := 0; i < n; i++ {
		gotRe, gotIm := arr.At(uint64(i))
		assert.InDelta(t, re[i], gotRe, 1e-9)
		assert.InDelta(t, im[i], gotIm, 1e-9)
	}
}

func TestTransformRejectsNonPowerOfTwo(t *testing.T) {
	re, im := randomComplex(17)
	arr := newComplexArray(t, re, im)
	err := Transform[float64](arr, false, Config{}, nil)
	assert.Error(t, err)
}

func TestTransformRejectsRealOnly(t *testing.T) {
	re := make([]float64, 8)
	arr, err := sample.NewReal[float64](buffer.NewSlice(re), 8, 1, 1)
	require.NoError(t, err)
	err = Transform[float64](arr, false, Config{}, nil)
	assert.Error(t, err)
}

func TestTransformFloat32FastPath(t *testing.T) {
	n := 32
	re := make([]float32, n)
	im := make([]float32, n)
	wantRe64, wantIm64 := make([]float64, n), make([]float64, n)
	for i := range re {
		v := rand.NormFloat64()
		w := rand.NormFloat64()
		re[i], im[i] = float32(v), float32(w)
		wantRe64[i], wantIm64[i] = v, w
	}
	wantRe, wantIm := slowDFT(wantRe64, wantIm64, false)

	arr, err := sample.NewComplex[float32](buffer.NewSlice(re), buffer.NewSlice(im), uint64(n), 1, 1)
	require.NoError(t, err)
	require.NoError(t, Transform[float32](arr, false, Config{}, nil))

	for i := 0; i < n; i++ {
		gotRe, gotIm := arr.At(uint64(i))
		assert.InDelta(t, wantRe[i], float64(gotRe), 1e-3)
		assert.InDelta(t, wantIm[i], float64(gotIm), 1e-3)
	}
}
