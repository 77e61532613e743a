package spectrum

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-sfht/sfht/buffer"
	"github.com/go-sfht/sfht/fht"
	"github.com/go-sfht/sfht/sample"
)

func slowDFT1D(x []float64) (re, im []float64) {
	n := len(x)
	re, im = make([]float64, n), make([]float64, n)
	for k := 0; k < n; k++ {
		var sumRe, sumIm float64
		for t := 0; t < n; t++ {
			phi := -2 * math.Pi * float64(k*t) / float64(n)
			s, c := math.Sincos(phi)
			sumRe += x[t] * c
			sumIm += x[t] * s
		}
		re[k], im[k] = sumRe, sumIm
	}
	return
}

func hartleyOf(t *testing.T, x []float64) []float64 {
	t.Helper()
	data := append([]float64(nil), x...)
	arr, err := sample.NewReal[float64](buffer.NewSlice(data), uint64(len(data)), 1, 1)
	require.NoError(t, err)
	require.NoError(t, fht.Transform[float64](arr, false, fht.Config{}, nil))
	return data
}

func TestHartleyToFourierReal1D(t *testing.T) {
	for _, n := range []int{2, 4, 8, 16, 64} {
		x := make([]float64, n)
		for i := range x {
			x[i] = rand.NormFloat64()
		}
		h := hartleyOf(t, x)
		wantRe, wantIm := slowDFT1D(x)

		fRe, fIm, err := HartleyToFourierReal[float64](h, []int{n}, TaskConfig{})
		require.NoError(t, err)
		for k := 0; k < n; k++ {
			assert.InDeltaf(t, wantRe[k], fRe[k], 1e-6, "re[%d] n=%d", k, n)
			assert.InDeltaf(t, wantIm[k], fIm[k], 1e-6, "im[%d] n=%d", k, n)
		}
	}
}

func TestFourierToHartleyRealInvertsHartleyToFourier(t *testing.T) {
	n := 32
	x := make([]float64, n)
	for i := range x {
		x[i] = rand.NormFloat64()
	}
	h := hartleyOf(t, x)

	fRe, fIm, err := HartleyToFourierReal[float64](h, []int{n}, TaskConfig{})
	require.NoError(t, err)

	back, err := FourierToHartleyReal[float64](fRe, fIm, []int{n}, TaskConfig{})
	require.NoError(t, err)
	for i := range h {
		assert.InDelta(t, h[i], back[i], 1e-6)
	}
}

func TestHartleyToFourierComplexRoundTrip(t *testing.T) {
	n := 16
	hre := make([]float64, n)
	him := make([]float64, n)
	for i := range hre {
		hre[i] = rand.NormFloat64()
		him[i] = rand.NormFloat64()
	}
	fre, fim, err := HartleyToFourierComplex[float64](hre, him, []int{n}, TaskConfig{})
	require.NoError(t, err)
	backRe, backIm, err := FourierToHartleyComplex[float64](fre, fim, []int{n}, TaskConfig{})
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		assert.InDelta(t, hre[i], backRe[i], 1e-6)
		assert.InDelta(t, him[i], backIm[i], 1e-6)
	}
}

func TestHartleyToFourier2D(t *testing.T) {
	dims := []int{4, 8}
	n := dims[0] * dims[1]
	h := make([]float64, n)
	for i := range h {
		h[i] = rand.NormFloat64()
	}
	fRe, fIm, err := HartleyToFourierReal[float64](h, dims, TaskConfig{})
	require.NoError(t, err)
	back, err := FourierToHartleyReal[float64](fRe, fIm, dims, TaskConfig{})
	require.NoError(t, err)
	for i := range h {
		assert.InDelta(t, h[i], back[i], 1e-6)
	}
}

func TestConversionRejectsNonPow2(t *testing.T) {
	_, _, err := HartleyToFourierReal[float64]([]float64{1, 2, 3}, []int{3}, TaskConfig{})
	assert.Error(t, err)
}
