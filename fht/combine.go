package fht

import (
	"github.com/go-sfht/sfht/internal/errs"
	"github.com/go-sfht/sfht/internal/numeric"
	"github.com/go-sfht/sfht/internal/progress"
	"github.com/go-sfht/sfht/roots"
	"github.com/go-sfht/sfht/sample"
)

// cacheThreshold is the FHT-specific cache/recurrence cutoff: half is
// served from the cache while half <= CacheSize * 2^LogAngleStep (stride
// sampling), and from the recurrence path beyond that.
const cacheThreshold = roots.CacheSize << roots.LogAngleStep

// combine merges two length-half Hartley transforms sitting at
// [pos, pos+half) (E, the even half) and [pos+half, pos+2*half) (O, the odd
// half) into the full length-n=2*half transform, in place, using the
// butterfly layout:
//
//	H[k]      = E[k] + O[k]*cos(theta_k) + O[half-k]*sin(theta_k)
//	H[k+half] = E[k] - O[k]*cos(theta_k) - O[half-k]*sin(theta_k)
//
// where theta_k = 2*pi*k/n. Iterating j in [1, n/8) and deriving the
// twiddle for the mirrored index half-j (cos flips sign, sin is unchanged)
// yields two butterflies per twiddle; the n/4-j/n/4+j pair reuses the same
// twiddle with sin and cos swapped (cos(theta) = sin at k=quarter-j); the
// quarter and 0 indices are self-paired and reduce to plain add/sub; the
// n/8 midpoint is self-paired under the swapped family and uses twiddle
// (sqrt2/2, sqrt2/2).
func combine[T sampleFloat](s *sample.Array[T], pos, half uint64, ctx *progress.Context) error {
	n := 2 * half
	quarter := half / 2
	eighth := quarter / 2

	endpoint(s, pos, half, 0)
	if quarter > 0 {
		endpoint(s, pos, half, quarter)
	}
	if eighth > 0 {
		inv2 := numeric.InvSqrt2[T]()
		quad(s, pos, half, eighth, inv2, inv2)
	}

	series := roots.NewTwiddleSource(int(n), 1, cacheThreshold)
	series.Reset()
	for j := uint64(1); j < eighth; j++ {
		cosT, sinT := series.Next(int(j))
		c, sn := T(cosT), T(sinT)
		quad(s, pos, half, j, c, sn)
		quad(s, pos, half, quarter-j, sn, c)

		if progress.ShouldCheck(j, progress.MaskMedium) && ctx.CheckInterruption() {
			return errs.Cancelled()
		}
	}
	return nil
}

// quad performs the two butterflies for index k and its mirror half-k using
// twiddle (c, sn) == (cos(2*pi*k/n), sin(2*pi*k/n)).
func quad[T sampleFloat](s *sample.Array[T], pos, half, k uint64, c, sn T) {
	kPair := half - k
	eRe, eIm := s.At(pos + k)
	ePairRe, ePairIm := s.At(pos + kPair)
	oRe, oIm := s.At(pos + half + k)
	oPairRe, oPairIm := s.At(pos + half + kPair)

	s.Set(pos+k, eRe+oRe*c+oPairRe*sn, eIm+oIm*c+oPairIm*sn)
	s.Set(pos+k+half, eRe-oRe*c-oPairRe*sn, eIm-oIm*c-oPairIm*sn)

	s.Set(pos+kPair, ePairRe-oPairRe*c+oRe*sn, ePairIm-oPairIm*c+oIm*sn)
	s.Set(pos+kPair+half, ePairRe+oPairRe*c-oRe*sn, ePairIm+oPairIm*c-oIm*sn)
}

// endpoint performs the twiddle-free butterfly at self-paired index k
// (k==0 or k==half/2), where cos/sin degenerate to (1,0) or (0,1).
func endpoint[T sampleFloat](s *sample.Array[T], pos, half, k uint64) {
	eRe, eIm := s.At(pos + k)
	oRe, oIm := s.At(pos + half + k)
	s.Set(pos+k, eRe+oRe, eIm+oIm)
	s.Set(pos+k+half, eRe-oRe, eIm-oIm)
}
