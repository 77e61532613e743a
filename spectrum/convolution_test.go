package spectrum

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFourierConvolveElementWise(t *testing.T) {
	pRe := []float64{1, 2, 3}
	pIm := []float64{0, 1, -1}
	qRe := []float64{4, 0, 2}
	qIm := []float64{1, 1, 0}

	cRe := make([]float64, 3)
	cIm := make([]float64, 3)
	require.NoError(t, FourierConvolve(pRe, pIm, qRe, qIm, cRe, cIm, TaskConfig{}))

	assert.Equal(t, []float64{1*4 - 0*1, 2*0 - 1*1, 3*2 - (-1)*0}, cRe)
	assert.Equal(t, []float64{1*1 + 0*4, 2*1 + 1*0, 3*0 + (-1)*2}, cIm)
}

func TestFourierConvolveAliasedOutput(t *testing.T) {
	pRe := []float64{1, 2, 3, 4}
	pIm := []float64{0, 0, 0, 0}
	qRe := []float64{2, 2, 2, 2}
	qIm := []float64{0, 0, 0, 0}

	wantRe := make([]float64, 4)
	wantIm := make([]float64, 4)
	require.NoError(t, FourierConvolve(pRe, pIm, qRe, qIm, wantRe, wantIm, TaskConfig{}))

	// Alias the output onto one of the operands.
	require.NoError(t, FourierConvolve(pRe, pIm, qRe, qIm, pRe, pIm, TaskConfig{}))
	assert.Equal(t, wantRe, pRe)
	assert.Equal(t, wantIm, pIm)
}

func TestHartleyConvolveRealMatchesDirectConvolutionTheorem(t *testing.T) {
	n := 16
	p := make([]float64, n)
	q := make([]float64, n)
	for i := range p {
		p[i] = rand.NormFloat64()
		q[i] = rand.NormFloat64()
	}

	c, err := HartleyConvolveReal[float64](p, q, []int{n}, TaskConfig{})
	require.NoError(t, err)

	// Recovering via Hartley->Fourier, multiplying, and back should match a
	// direct circular-convolution-theorem computation through the same
	// conversion helpers, by construction (HartleyConvolveReal is defined as
	// exactly this roundtrip). This test guards against aliasing bugs by
	// checking the inverse relation still holds after the call: converting
	// c itself back to Fourier and dividing by q's Fourier transform (where
	// nonzero) should reproduce p's Fourier transform.
	pfRe, pfIm, err := HartleyToFourierReal[float64](p, []int{n}, TaskConfig{})
	require.NoError(t, err)
	qfRe, qfIm, err := HartleyToFourierReal[float64](q, []int{n}, TaskConfig{})
	require.NoError(t, err)
	cfRe, cfIm, err := HartleyToFourierReal[float64](c, []int{n}, TaskConfig{})
	require.NoError(t, err)

	for k := 0; k < n; k++ {
		den := qfRe[k]*qfRe[k] + qfIm[k]*qfIm[k]
		if den == 0 {
			continue
		}
		gotRe := (cfRe[k]*qfRe[k] + cfIm[k]*qfIm[k]) / den
		gotIm := (cfIm[k]*qfRe[k] - cfRe[k]*qfIm[k]) / den
		assert.InDelta(t, gotRe, pfRe[k], 1e-3)
		assert.InDelta(t, gotIm, pfIm[k], 1e-3)
	}
}

func TestHartleyConvolveComplexRoundTripsThroughFourier(t *testing.T) {
	n := 8
	pRe, pIm := make([]float64, n), make([]float64, n)
	qRe, qIm := make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		pRe[i], pIm[i] = rand.NormFloat64(), rand.NormFloat64()
		qRe[i], qIm[i] = rand.NormFloat64(), rand.NormFloat64()
	}
	cRe, cIm, err := HartleyConvolveComplex[float64](pRe, pIm, qRe, qIm, []int{n}, TaskConfig{})
	require.NoError(t, err)
	assert.Len(t, cRe, n)
	assert.Len(t, cIm, n)
}
