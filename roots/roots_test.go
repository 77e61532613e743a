package roots

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTwiddleMatchesDirectTrig(t *testing.T) {
	for _, n := range []int{4, 8, 16, 64, 1024} {
		for j := 0; j < n; j++ {
			wantTheta := -2 * math.Pi * float64(j) / float64(n)
			wantS, wantC := math.Sincos(wantTheta)
			gotC, gotS := Twiddle(j, n, -1)
			assert.InDeltaf(t, wantC, gotC, 1e-9, "n=%d j=%d cos", n, j)
			assert.InDeltaf(t, wantS, gotS, 1e-9, "n=%d j=%d sin", n, j)
		}
	}
}

func TestTwiddleInverseSign(t *testing.T) {
	gotC, gotS := Twiddle(3, 16, 1)
	wantS, wantC := math.Sincos(2 * math.Pi * 3 / 16)
	assert.InDelta(t, wantC, gotC, 1e-9)
	assert.InDelta(t, wantS, gotS, 1e-9)
}

func TestTwiddleSeriesMatchesDirectTrig(t *testing.T) {
	n := 128
	series := NewTwiddleSeries(n, -1)
	for j := 0; j < n; j++ {
		gotC, gotS := series.Next()
		wantS, wantC := math.Sincos(-2 * math.Pi * float64(j) / float64(n))
		assert.InDeltaf(t, wantC, gotC, 1e-6, "j=%d", j)
		assert.InDeltaf(t, wantS, gotS, 1e-6, "j=%d", j)
	}
}

func TestTwiddleSourceCachedVsRecurrenceAgree(t *testing.T) {
	n := 64
	cached := NewTwiddleSource(n, -1, CacheSize)
	recurrence := NewTwiddleSource(n, -1, 0)
	cached.Reset()
	recurrence.Reset()
	for j := 0; j < n/2; j++ {
		c1, s1 := cached.Next(j)
		c2, s2 := recurrence.Next(j)
		assert.InDeltaf(t, c1, c2, 1e-6, "j=%d cos", j)
		assert.InDeltaf(t, s1, s2, 1e-6, "j=%d sin", j)
	}
}

func TestReverse16Table(t *testing.T) {
	assert.Equal(t, uint16(0), Reverse16[0])
	assert.Equal(t, uint16(1<<15), Reverse16[1])
	assert.Equal(t, uint16(1), Reverse16[1<<15])
}
