package spectrum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvolveMatchesDirectLinearConvolution(t *testing.T) {
	xre := []float64{1, 2, 3}
	xim := []float64{0, 0, 0}
	yre := []float64{0, 1, 0.5}
	yim := []float64{0, 0, 0}

	wantRe := directConvolve(xre, yre)

	gotRe, gotIm, err := Convolve[float64](xre, xim, yre, yim)
	require.NoError(t, err)
	require.Len(t, gotRe, len(wantRe))
	for i := range wantRe {
		assert.InDelta(t, wantRe[i], gotRe[i], 1e-6)
		assert.InDelta(t, 0, gotIm[i], 1e-6)
	}
}

func directConvolve(x, y []float64) []float64 {
	out := make([]float64, len(x)+len(y)-1)
	for i := range x {
		for j := range y {
			out[i+j] += x[i] * y[j]
		}
	}
	return out
}

func TestFastMultiConvolvePairwise(t *testing.T) {
	n := 4
	xre := []float64{1, 2, 0, 0, 3, 1, 0, 0}
	xim := make([]float64, len(xre))

	want := directConvolve([]float64{1, 2}, []float64{3, 1})

	err := FastMultiConvolve[float64](xre, xim, n, nil)
	require.NoError(t, err)
	for i, w := range want {
		assert.InDelta(t, w, xre[i], 1e-6)
	}
}

func TestMultiConvolveThreeArrays(t *testing.T) {
	a := []float64{1, 1}
	b := []float64{1, -1}
	c := []float64{2, 0, 1}

	want := directConvolve(directConvolve(a, b), c)

	re, im, err := MultiConvolve[float64]([][]float64{a, b, c}, [][]float64{
		make([]float64, len(a)), make([]float64, len(b)), make([]float64, len(c)),
	})
	require.NoError(t, err)
	require.Len(t, re, len(want))
	for i, w := range want {
		assert.InDelta(t, w, re[i], 1e-4)
		assert.InDelta(t, 0, im[i], 1e-4)
	}
}

func TestNextPow2AndIsPow2(t *testing.T) {
	assert.True(t, isPow2(1))
	assert.True(t, isPow2(32))
	assert.False(t, isPow2(0))
	assert.False(t, isPow2(3))
	assert.Equal(t, 1, nextPow2(0))
	assert.Equal(t, 8, nextPow2(5))
	assert.Equal(t, 8, nextPow2(8))
}
