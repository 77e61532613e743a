// Package roots holds the process-wide roots-of-unity tables: a sine cache,
// a logarithmic sine cache, and the 16-bit bit-reverse table used by package
// bitrev. All tables are computed once at process start and are read-only
// afterward, so concurrent reads need no synchronization.
package roots

import "math"

const (
	LogCacheSize = 20
	CacheSize    = 1 << LogCacheSize
	Half         = 1 << (LogCacheSize - 1)
	LogAngleStep = 4
)

// SineCache holds sin(pi/2 * k/Half) for k in [0, Half].
var SineCache [Half + 1]float64

// LogSineCache holds sin(pi * 2^-k) for k in [0, 64], used to derive the
// twiddle-recurrence path's per-step root increment.
var LogSineCache [65]float64

// Reverse16 is the 16-bit bit-reverse lookup table used by package bitrev.
var Reverse16 [1 << 16]uint16

func init() {
	for k := 0; k <= Half; k++ {
		SineCache[k] = math.Sin(math.Pi / 2 * float64(k) / float64(Half))
	}
	for k := 0; k <= 64; k++ {
		LogSineCache[k] = math.Sin(math.Pi * math.Exp2(-float64(k)))
	}
	for i := 0; i < len(Reverse16); i++ {
		Reverse16[i] = reverseBits16(uint16(i))
	}
}

func reverseBits16(x uint16) uint16 {
	var r uint16
	for i := 0; i < 16; i++ {
		r = (r << 1) | (x & 1)
		x >>= 1
	}
	return r
}

// sincosFromCache returns (sin(angle), cos(angle)) for angle in [0, pi/2], using
// SineCache when possible. angleIndex is k such that angle == pi/2*k/Half.
func sincosFromCache(angleIndex int) (sin, cos float64) {
	sin = SineCache[angleIndex]
	cos = SineCache[Half-angleIndex]
	return
}

// Twiddle computes (cos(theta), sin(theta)) for theta = sign * j * 2*pi/n
// (sign is +1 or -1), quadrant-folding j*4/n into SineCache's [0, pi/2]
// domain.
//
// n must be a power of two with n/4 expressible as an integer multiple step
// into SineCache, i.e. n <= 4*CacheSize; callers outside that range should
// use the recurrence path instead (see TwiddleSeries and TwiddleSource in
// this package).
func Twiddle(j, n int, sign float64) (cosT, sinT float64) {
	// theta = sign*j*2*pi/n. Fold into [0, pi/2) using the quarter-turn
	// symmetry of sine/cosine, then index SineCache by quarter angle.
	quarterN := n / 4
	if quarterN == 0 {
		// n < 4: fall back to direct trig, covers N in {1,2}.
		theta := sign * 2 * math.Pi * float64(j) / float64(n)
		s, c := math.Sincos(theta)
		return c, s
	}
	q := (j / quarterN) & 3
	rem := j % quarterN
	angleIndex := int(int64(rem) * int64(Half) / int64(quarterN))
	s, c := sincosFromCache(angleIndex)
	switch q {
	case 0:
		// theta in [0, pi/2)
	case 1:
		s, c = c, -s
	case 2:
		s, c = -s, -c
	case 3:
		s, c = -c, s
	}
	if sign < 0 {
		s = -s
	}
	return c, s
}
