package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAllocatesZeroed(t *testing.T) {
	m, err := New[float64]([]int{2, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, m.Dims())
	assert.Equal(t, 6, len(m.Data()))
	for _, v := range m.Data() {
		assert.Equal(t, 0.0, v)
	}
}

func TestWrapRejectsLengthMismatch(t *testing.T) {
	_, err := Wrap[float64]([]int{2, 2}, []float64{1, 2, 3})
	assert.Error(t, err)
}

func TestWrapViewsDataWithoutCopying(t *testing.T) {
	data := []float64{1, 2, 3, 4}
	m, err := Wrap[float64]([]int{4}, data)
	require.NoError(t, err)
	data[0] = 99
	assert.Equal(t, 99.0, m.Data()[0])
}

func TestRowMajorStride(t *testing.T) {
	m, err := New[float64]([]int{2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, uint64(12), m.RowMajorStride(0))
	assert.Equal(t, uint64(4), m.RowMajorStride(1))
	assert.Equal(t, uint64(1), m.RowMajorStride(2))
}

func TestSubArr(t *testing.T) {
	m, err := Wrap[float64]([]int{4}, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	sub, err := m.SubArr(1, 2)
	require.NoError(t, err)
	re, _ := sub.At(0)
	assert.Equal(t, 2.0, re)
	re, _ = sub.At(1)
	assert.Equal(t, 3.0, re)
}

func TestArrayViewSharesBacking(t *testing.T) {
	m, err := New[float64]([]int{4})
	require.NoError(t, err)
	arr := m.Array()
	arr.Set(2, 7, 0)
	assert.Equal(t, 7.0, m.Data()[2])
}
