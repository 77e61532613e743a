package fht

import (
	"github.com/go-sfht/sfht/buffer"
	"github.com/go-sfht/sfht/internal/numeric"
	"github.com/go-sfht/sfht/sample"
)

// sampleFloat is the scalar constraint shared across this package.
type sampleFloat = buffer.Float

// base2 implements the literal N=2 formula: y0=x0+x1, y1=x0-x1.
func base2[T sampleFloat](s *sample.Array[T], pos uint64) {
	x0re, x0im := s.At(pos)
	x1re, x1im := s.At(pos + 1)
	s.Set(pos, x0re+x1re, x0im+x1im)
	s.Set(pos+1, x0re-x1re, x0im-x1im)
}

// base4 implements the literal N=4 formula:
//
//	sij = xi+xj, dij = xi-xj
//	y0 = s01+s23, y1 = d01+d23, y2 = s01-s23, y3 = d01-d23
func base4[T sampleFloat](s *sample.Array[T], pos uint64) {
	x0re, x0im := s.At(pos)
	x1re, x1im := s.At(pos + 1)
	x2re, x2im := s.At(pos + 2)
	x3re, x3im := s.At(pos + 3)

	s01re, s01im := x0re+x1re, x0im+x1im
	d01re, d01im := x0re-x1re, x0im-x1im
	s23re, s23im := x2re+x3re, x2im+x3im
	d23re, d23im := x2re-x3re, x2im-x3im

	s.Set(pos, s01re+s23re, s01im+s23im)
	s.Set(pos+1, d01re+d23re, d01im+d23im)
	s.Set(pos+2, s01re-s23re, s01im-s23im)
	s.Set(pos+3, d01re-d23re, d01im-d23im)
}

// base8 implements the N=8 case by composing two base4 transforms of the
// even/odd halves with the shared combine step (the
// general radix-2 merge specialized to half=4), which is algebraically
// identical to, but not textually flattened into, a fully hand-unrolled
// eight-term sum-of-products expression.
func base8[T sampleFloat](s *sample.Array[T], pos uint64) {
	base4(s, pos)
	base4(s, pos+4)
	quad(s, pos, 4, 1, numeric.InvSqrt2[T](), numeric.InvSqrt2[T]())
	endpoint(s, pos, 4, 0)
	endpoint(s, pos, 4, 2)
}
