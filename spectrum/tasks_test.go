package spectrum

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-sfht/sfht/threadpool"
)

func TestHartleyToFourierRealMatchesAcrossPoolConfigs(t *testing.T) {
	n := 64
	h := make([]float64, n)
	for i := range h {
		h[i] = rand.NormFloat64()
	}

	seqRe, seqIm, err := HartleyToFourierReal[float64](h, []int{n}, TaskConfig{})
	require.NoError(t, err)

	parCfg := TaskConfig{Pool: threadpool.NewDefault(), Contiguous: true}
	parRe, parIm, err := HartleyToFourierReal[float64](h, []int{n}, parCfg)
	require.NoError(t, err)

	assert.Equal(t, seqRe, parRe)
	assert.Equal(t, seqIm, parIm)
}

func TestHartleyToFourierReal2DParallelMatchesSequential(t *testing.T) {
	dims := []int{8, 8}
	n := dims[0] * dims[1]
	h := make([]float64, n)
	for i := range h {
		h[i] = rand.NormFloat64()
	}

	seqRe, seqIm, err := HartleyToFourierReal[float64](h, dims, TaskConfig{})
	require.NoError(t, err)

	parCfg := TaskConfig{Pool: threadpool.NewDefault(), Contiguous: true}
	parRe, parIm, err := HartleyToFourierReal[float64](h, dims, parCfg)
	require.NoError(t, err)

	assert.Equal(t, seqRe, parRe)
	assert.Equal(t, seqIm, parIm)
}

func TestHartleyConvolveRealRespectsMaxTempMemory(t *testing.T) {
	n := 32
	p := make([]float64, n)
	q := make([]float64, n)
	for i := range p {
		p[i] = rand.NormFloat64()
		q[i] = rand.NormFloat64()
	}

	cfg := TaskConfig{Pool: threadpool.NewDefault(), Contiguous: true, MaxTempMemory: 1}
	c, err := HartleyConvolveReal[float64](p, q, []int{n}, cfg)
	require.NoError(t, err)
	assert.Len(t, c, n)
}

func TestBudgetTryReserveAndRelease(t *testing.T) {
	cfg := TaskConfig{MaxTempMemory: 16}
	b := cfg.budget()
	require.NotNil(t, b)
	assert.True(t, b.TryReserve(16))
	assert.False(t, b.TryReserve(1))
	b.Release(16)
	assert.True(t, b.TryReserve(16))
}

func TestNilBudgetAlwaysFalls(t *testing.T) {
	cfg := TaskConfig{}
	assert.Nil(t, cfg.budget())
	s := acquireScratch[float64](4, cfg.budget())
	assert.Len(t, s.buf, 4)
	s.release()
}
