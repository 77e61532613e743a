package spectrum

import "github.com/go-sfht/sfht/buffer"

// FourierConvolve computes the element-wise Fourier-domain product of two
// complex spectra P and Q:
// C_k = (Pre_k*Qre_k - Pim_k*Qim_k) + i*(Pre_k*Qim_k + Pim_k*Qre_k).
// Aliasing is safe: every output element is computed from locals before
// being written, so callers may pass cOut aliasing pRe/pIm/qRe/qIm. The
// pass splits across cfg.Pool the same way the conversion operators do.
func FourierConvolve[T buffer.Float](pRe, pIm, qRe, qIm, cRe, cIm []T, cfg TaskConfig) error {
	return runPartitioned(len(pRe), cfg, func(lo, hi int) error {
		for i := lo; i < hi; i++ {
			pr, pi := pRe[i], pIm[i]
			qr, qi := qRe[i], qIm[i]
			cRe[i] = pr*qr - pi*qi
			cIm[i] = pr*qi + pi*qr
		}
		return nil
	})
}

// HartleyConvolveReal computes the Hartley-domain convolution spectrum of
// two real SFHT spectra P and Q, shaped by shape. Rather than hand-coding
// the block-paired closed forms for the Hartley domain directly, this
// always routes through the Fourier domain via
// HartleyToFourierReal/FourierToHartleyReal: per the convolution theorem
// the two are mathematically equivalent, and the general multi-dimensional
// case already requires exactly this roundtrip (see DESIGN.md). The
// Fourier-domain product buffer is pooled scratch, charged against cfg's
// memory budget and released once folded back into the Hartley domain.
func HartleyConvolveReal[T buffer.Float](p, q []T, shape []int, cfg TaskConfig) ([]T, error) {
	pRe, pIm, err := HartleyToFourierReal[T](p, shape, cfg)
	if err != nil {
		return nil, err
	}
	qRe, qIm, err := HartleyToFourierReal[T](q, shape, cfg)
	if err != nil {
		return nil, err
	}
	budget := cfg.budget()
	cRe := acquireScratch[T](len(pRe), budget)
	cIm := acquireScratch[T](len(pIm), budget)
	if err := FourierConvolve(pRe, pIm, qRe, qIm, cRe.buf, cIm.buf, cfg); err != nil {
		cRe.release()
		cIm.release()
		return nil, err
	}
	h, err := FourierToHartleyReal[T](cRe.buf, cIm.buf, shape, cfg)
	cRe.release()
	cIm.release()
	return h, err
}

// HartleyConvolveComplex is the complex-input analogue of
// HartleyConvolveReal, for SFHT spectra of complex-valued time-domain data.
func HartleyConvolveComplex[T buffer.Float](pRe, pIm, qRe, qIm []T, shape []int, cfg TaskConfig) (cRe, cIm []T, err error) {
	pfRe, pfIm, err := HartleyToFourierComplex[T](pRe, pIm, shape, cfg)
	if err != nil {
		return nil, nil, err
	}
	qfRe, qfIm, err := HartleyToFourierComplex[T](qRe, qIm, shape, cfg)
	if err != nil {
		return nil, nil, err
	}
	budget := cfg.budget()
	cfRe := acquireScratch[T](len(pfRe), budget)
	cfIm := acquireScratch[T](len(pfIm), budget)
	if err := FourierConvolve(pfRe, pfIm, qfRe, qfIm, cfRe.buf, cfIm.buf, cfg); err != nil {
		cfRe.release()
		cfIm.release()
		return nil, nil, err
	}
	cRe, cIm, err = FourierToHartleyComplex[T](cfRe.buf, cfIm.buf, shape, cfg)
	cfRe.release()
	cfIm.release()
	return cRe, cIm, err
}
