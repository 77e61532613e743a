package roots

import (
	"math"
	"math/bits"
)

// TwiddleSeries generates the sequence of twiddle factors w_j = exp(sign*i*j*theta)
// for j = 0, 1, 2, ... incrementally, used when half (== step/2) exceeds
// CacheSize: maintaining (wRe, wIm) via w += w*(root-1) and resynchronizing
// to the closed form every 16 steps to bound the drift this recurrence is
// otherwise allowed to accumulate.
type TwiddleSeries struct {
	theta      float64 // base angle magnitude: 2*pi/n
	sign       float64
	j          int
	wRe, wIm   float64
	rootRe     float64
	rootIm     float64
	resyncMask int
}

// NewTwiddleSeries starts a series for step-sized butterflies of an n-point
// transform, where sign is +1 for inverse transforms and -1 for direct
// ones.
func NewTwiddleSeries(n int, sign float64) *TwiddleSeries {
	theta := 2 * math.Pi / float64(n)
	// root = exp(sign*i*theta), derived from the half-angle entry in
	// LogSineCache to avoid calling Sincos for the increment itself.
	halfSin := halfAngleSine(n)
	cosHalf := math.Sqrt(1 - halfSin*halfSin)
	sinFull := 2 * halfSin * cosHalf
	cosFull := 1 - 2*halfSin*halfSin
	ts := &TwiddleSeries{
		theta:      theta,
		sign:       sign,
		wRe:        1,
		wIm:        0,
		rootRe:     cosFull,
		rootIm:     sign * sinFull,
		resyncMask: 15, // resync every 16 steps
	}
	return ts
}

// halfAngleSine returns sin(pi/n) == sin(theta/2), read directly out of
// LogSineCache[log2(n)] since n is always a power of two here (n is a
// butterfly stage size), falling back to a direct Sin only if n ever
// exceeds the cache's indexable range.
func halfAngleSine(n int) float64 {
	k := bits.TrailingZeros(uint(n))
	if k < len(LogSineCache) {
		return LogSineCache[k]
	}
	return math.Sin(math.Pi / float64(n))
}

// Next returns the next twiddle factor (cos, sin) and advances the series.
// Every 16 steps it resynchronizes to the closed-form value computed from
// Sincos directly, bounding the recurrence's accumulated drift.
func (ts *TwiddleSeries) Next() (cosT, sinT float64) {
	if ts.j&ts.resyncMask == 0 && ts.j != 0 {
		theta := ts.sign * ts.theta * float64(ts.j)
		s, c := math.Sincos(theta)
		ts.wRe, ts.wIm = c, s
	}
	cosT, sinT = ts.wRe, ts.wIm
	// w += w*(root-1) == w*root
	nRe := ts.wRe*ts.rootRe - ts.wIm*ts.rootIm
	nIm := ts.wRe*ts.rootIm + ts.wIm*ts.rootRe
	ts.wRe, ts.wIm = nRe, nIm
	ts.j++
	return
}
