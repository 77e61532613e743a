package sfht

import (
	"github.com/go-sfht/sfht/buffer"
	"github.com/go-sfht/sfht/fft"
	"github.com/go-sfht/sfht/fht"
	"github.com/go-sfht/sfht/internal/errs"
	"github.com/go-sfht/sfht/internal/progress"
	"github.com/go-sfht/sfht/matrix"
	"github.com/go-sfht/sfht/sample"
	"github.com/go-sfht/sfht/spectrum"
	"github.com/go-sfht/sfht/threadpool"
)

// transformFloat is the scalar constraint shared by every entry point.
type transformFloat = buffer.Float

// FFTDirect runs the forward complex FFT on samples in place.
func FFTDirect[T transformFloat](ctx *Context, samples *sample.Array[T]) error {
	c, prog := ctx.split()
	return fft.Transform[T](samples, false, c.fftConfig(), prog)
}

// FFTInverse runs the inverse complex FFT on samples in place.
func FFTInverse[T transformFloat](ctx *Context, samples *sample.Array[T]) error {
	c, prog := ctx.split()
	return fft.Transform[T](samples, true, c.fftConfig(), prog)
}

// FHTDirect runs the forward Separable Fast Hartley Transform on samples
// (real or complex) in place.
func FHTDirect[T transformFloat](ctx *Context, samples *sample.Array[T]) error {
	c, prog := ctx.split()
	return fht.Transform[T](samples, false, c.fhtConfig(), prog)
}

// FHTInverse runs the inverse Separable Fast Hartley Transform on samples
// in place.
func FHTInverse[T transformFloat](ctx *Context, samples *sample.Array[T]) error {
	c, prog := ctx.split()
	return fht.Transform[T](samples, true, c.fhtConfig(), prog)
}

// split returns a usable Config and progress.Context pair even when ctx is
// nil, so entry points can always be called with a zero-value *Context.
func (ctx *Context) split() (*Config, *progress.Context) {
	if ctx == nil {
		return NewConfig(), nil
	}
	cfg := ctx.Config
	if cfg == nil {
		cfg = NewConfig()
	}
	return cfg, ctx.Prog
}

// TransformMatrixFFT applies the complex FFT independently along every
// dimension of (re, im) in turn, exploiting the separability property: an
// n-dimensional transform is n passes of 1-D transforms, one per axis, each
// pass applied to every line along that axis. Lines along a dimension are
// contiguous only when that dimension is the innermost one, so each line is
// materialized into a contiguous scratch sample array, transformed, and
// copied back; the outer loop over lines for a given dimension is
// parallelized via ctx's thread pool under the same parallelism gating the
// rest of the module uses.
func TransformMatrixFFT[T transformFloat](ctx *Context, re, im *matrix.Matrix[T], inverse bool) error {
	if re == nil || im == nil {
		return errs.NullArgument("matrix")
	}
	dims := re.Dims()
	if err := checkDims(dims, im.Dims()); err != nil {
		return err
	}
	cfg, prog := ctx.split()
	pool := cfg.threadPool()
	total := totalSize(dims)
	Logger.Debug().Ints("dims", dims).Bool("inverse", inverse).Msg("TransformMatrixFFT start")
	for d := range dims {
		lines := total / dims[d]
		stride := re.RowMajorStride(d)
		lineLen := uint64(dims[d])
		work := func(lo, hi int) error {
			for lineIdx := lo; lineIdx < hi; lineIdx++ {
				base := lineBase(dims, d, lineIdx)
				lineRe := gatherLine(re.Data(), base, stride, lineLen)
				lineIm := gatherLine(im.Data(), base, stride, lineLen)
				arr, err := wrapComplexLine[T](lineRe, lineIm)
				if err != nil {
					return err
				}
				if err := fft.Transform[T](arr, inverse, cfg.fftConfig(), prog); err != nil {
					return err
				}
				scatterLine(re.Data(), base, stride, lineRe)
				scatterLine(im.Data(), base, stride, lineIm)
			}
			return nil
		}
		if err := runLines(pool, lines, work); err != nil {
			return err
		}
		prog.UpdateProgress("transform-matrix-fft", uint64(d+1), uint64(len(dims)))
		Logger.Debug().Int("dim", d).Int("lines", lines).Msg("TransformMatrixFFT axis done")
	}
	return nil
}

// TransformMatrixFHT is TransformMatrixFFT's Hartley analogue. im may be
// nil to transform a purely real matrix.
func TransformMatrixFHT[T transformFloat](ctx *Context, re, im *matrix.Matrix[T], inverse bool) error {
	if re == nil {
		return errs.NullArgument("re")
	}
	dims := re.Dims()
	if im != nil {
		if err := checkDims(dims, im.Dims()); err != nil {
			return err
		}
	}
	cfg, prog := ctx.split()
	pool := cfg.threadPool()
	total := totalSize(dims)
	Logger.Debug().Ints("dims", dims).Bool("inverse", inverse).Bool("complex", im != nil).Msg("TransformMatrixFHT start")
	for d := range dims {
		lines := total / dims[d]
		stride := re.RowMajorStride(d)
		lineLen := uint64(dims[d])
		work := func(lo, hi int) error {
			for lineIdx := lo; lineIdx < hi; lineIdx++ {
				base := lineBase(dims, d, lineIdx)
				lineRe := gatherLine(re.Data(), base, stride, lineLen)
				var arr *sample.Array[T]
				var err error
				var lineIm []T
				if im != nil {
					lineIm = gatherLine(im.Data(), base, stride, lineLen)
					arr, err = wrapComplexLine[T](lineRe, lineIm)
				} else {
					arr, err = wrapRealLine[T](lineRe)
				}
				if err != nil {
					return err
				}
				if err := fht.Transform[T](arr, inverse, cfg.fhtConfig(), prog); err != nil {
					return err
				}
				scatterLine(re.Data(), base, stride, lineRe)
				if im != nil {
					scatterLine(im.Data(), base, stride, lineIm)
				}
			}
			return nil
		}
		if err := runLines(pool, lines, work); err != nil {
			return err
		}
		prog.UpdateProgress("transform-matrix-fht", uint64(d+1), uint64(len(dims)))
		Logger.Debug().Int("dim", d).Int("lines", lines).Msg("TransformMatrixFHT axis done")
	}
	return nil
}

func checkDims(a, b []int) error {
	if len(a) != len(b) {
		return errs.SizeMismatch("dimension count mismatch: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			return errs.SizeMismatch("dimension %d mismatch: %d vs %d", i, a[i], b[i])
		}
	}
	return nil
}

func totalSize(dims []int) int {
	n := 1
	for _, d := range dims {
		n *= d
	}
	return n
}

// lineBase maps a 0-based line index (iterating every flat index whose
// coordinate along dimension d is 0) to its flat offset.
func lineBase(dims []int, d, lineIdx int) uint64 {
	strideD := 1
	for i := d + 1; i < len(dims); i++ {
		strideD *= dims[i]
	}
	total := totalSize(dims)
	// Walk flat indices with coordinate d == 0, in order, picking the
	// lineIdx'th one.
	count := 0
	for idx := 0; idx < total; idx++ {
		if (idx/strideD)%dims[d] == 0 {
			if count == lineIdx {
				return uint64(idx)
			}
			count++
		}
	}
	return 0
}

func gatherLine[T transformFloat](data []T, base, stride, n uint64) []T {
	out := make([]T, n)
	for i := uint64(0); i < n; i++ {
		out[i] = data[base+i*stride]
	}
	return out
}

func scatterLine[T transformFloat](data []T, base, stride uint64, line []T) {
	for i, v := range line {
		data[base+uint64(i)*stride] = v
	}
}

func runLines(pool threadpool.ThreadPool, lines int, work func(lo, hi int) error) error {
	tasks := threadpool.Partition(lines, pool.RecommendedParallelism(), work)
	return pool.PerformTasks(tasks)
}

// matricesContiguous reports whether every matrix's backing array supports
// the fast contiguous view, the precondition for splitting the outer k1
// iteration across the thread pool.
func matricesContiguous[T transformFloat](ms ...*matrix.Matrix[T]) bool {
	for _, m := range ms {
		if m == nil || !m.Array().IsFast() {
			return false
		}
	}
	return true
}

func spectrumTaskConfig(cfg *Config, prog *progress.Context, contiguous bool) spectrum.TaskConfig {
	return spectrum.TaskConfig{
		Pool:          cfg.threadPool(),
		Progress:      prog,
		Contiguous:    contiguous,
		MaxTempMemory: cfg.MaxTempMemory,
	}
}

// HartleyToFourierReal converts a real matrix's SFHT spectrum into a
// complex Fourier spectrum.
func HartleyToFourierReal[T transformFloat](ctx *Context, h *matrix.Matrix[T]) (fRe, fIm *matrix.Matrix[T], err error) {
	cfg, prog := ctx.split()
	tc := spectrumTaskConfig(cfg, prog, matricesContiguous(h))
	Logger.Debug().Ints("dims", h.Dims()).Bool("contiguous", tc.Contiguous).Msg("HartleyToFourierReal start")
	fre, fim, err := spectrum.HartleyToFourierReal[T](h.Data(), h.Dims(), tc)
	if err != nil {
		return nil, nil, err
	}
	fRe, err = matrix.Wrap[T](h.Dims(), fre)
	if err != nil {
		return nil, nil, err
	}
	fIm, err = matrix.Wrap[T](h.Dims(), fim)
	return fRe, fIm, err
}

// HartleyToFourierComplex converts a complex matrix's SFHT spectrum into a
// complex Fourier spectrum.
func HartleyToFourierComplex[T transformFloat](ctx *Context, hRe, hIm *matrix.Matrix[T]) (fRe, fIm *matrix.Matrix[T], err error) {
	if err := checkDims(hRe.Dims(), hIm.Dims()); err != nil {
		return nil, nil, err
	}
	cfg, prog := ctx.split()
	tc := spectrumTaskConfig(cfg, prog, matricesContiguous(hRe, hIm))
	Logger.Debug().Ints("dims", hRe.Dims()).Bool("contiguous", tc.Contiguous).Msg("HartleyToFourierComplex start")
	fre, fim, err := spectrum.HartleyToFourierComplex[T](hRe.Data(), hIm.Data(), hRe.Dims(), tc)
	if err != nil {
		return nil, nil, err
	}
	fRe, err = matrix.Wrap[T](hRe.Dims(), fre)
	if err != nil {
		return nil, nil, err
	}
	fIm, err = matrix.Wrap[T](hRe.Dims(), fim)
	return fRe, fIm, err
}

// FourierToHartleyReal converts a complex Fourier spectrum back into a real
// SFHT spectrum.
func FourierToHartleyReal[T transformFloat](ctx *Context, fRe, fIm *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if err := checkDims(fRe.Dims(), fIm.Dims()); err != nil {
		return nil, err
	}
	cfg, prog := ctx.split()
	tc := spectrumTaskConfig(cfg, prog, matricesContiguous(fRe, fIm))
	Logger.Debug().Ints("dims", fRe.Dims()).Bool("contiguous", tc.Contiguous).Msg("FourierToHartleyReal start")
	h, err := spectrum.FourierToHartleyReal[T](fRe.Data(), fIm.Data(), fRe.Dims(), tc)
	if err != nil {
		return nil, err
	}
	return matrix.Wrap[T](fRe.Dims(), h)
}

// FourierToHartleyComplex converts a complex Fourier spectrum back into a
// complex SFHT spectrum.
func FourierToHartleyComplex[T transformFloat](ctx *Context, fRe, fIm *matrix.Matrix[T]) (hRe, hIm *matrix.Matrix[T], err error) {
	if err := checkDims(fRe.Dims(), fIm.Dims()); err != nil {
		return nil, nil, err
	}
	cfg, prog := ctx.split()
	tc := spectrumTaskConfig(cfg, prog, matricesContiguous(fRe, fIm))
	Logger.Debug().Ints("dims", fRe.Dims()).Bool("contiguous", tc.Contiguous).Msg("FourierToHartleyComplex start")
	hre, him, err := spectrum.FourierToHartleyComplex[T](fRe.Data(), fIm.Data(), fRe.Dims(), tc)
	if err != nil {
		return nil, nil, err
	}
	hRe, err = matrix.Wrap[T](fRe.Dims(), hre)
	if err != nil {
		return nil, nil, err
	}
	hIm, err = matrix.Wrap[T](fRe.Dims(), him)
	return hRe, hIm, err
}

// FHTSpectrumOfConvolutionReal computes the Hartley-domain convolution
// spectrum of two real matrices p and q.
func FHTSpectrumOfConvolutionReal[T transformFloat](ctx *Context, p, q *matrix.Matrix[T]) (*matrix.Matrix[T], error) {
	if err := checkDims(p.Dims(), q.Dims()); err != nil {
		return nil, err
	}
	cfg, prog := ctx.split()
	tc := spectrumTaskConfig(cfg, prog, matricesContiguous(p, q))
	Logger.Debug().Ints("dims", p.Dims()).Bool("contiguous", tc.Contiguous).Msg("FHTSpectrumOfConvolutionReal start")
	c, err := spectrum.HartleyConvolveReal[T](p.Data(), q.Data(), p.Dims(), tc)
	if err != nil {
		return nil, err
	}
	return matrix.Wrap[T](p.Dims(), c)
}

// FHTSpectrumOfConvolutionComplex computes the Hartley-domain convolution
// spectrum of two complex matrices (pRe, pIm) and (qRe, qIm).
func FHTSpectrumOfConvolutionComplex[T transformFloat](ctx *Context, pRe, pIm, qRe, qIm *matrix.Matrix[T]) (cRe, cIm *matrix.Matrix[T], err error) {
	dims := pRe.Dims()
	for _, d := range [][]int{pIm.Dims(), qRe.Dims(), qIm.Dims()} {
		if err := checkDims(dims, d); err != nil {
			return nil, nil, err
		}
	}
	cfg, prog := ctx.split()
	tc := spectrumTaskConfig(cfg, prog, matricesContiguous(pRe, pIm, qRe, qIm))
	Logger.Debug().Ints("dims", dims).Bool("contiguous", tc.Contiguous).Msg("FHTSpectrumOfConvolutionComplex start")
	cre, cim, err := spectrum.HartleyConvolveComplex[T](pRe.Data(), pIm.Data(), qRe.Data(), qIm.Data(), dims, tc)
	if err != nil {
		return nil, nil, err
	}
	cRe, err = matrix.Wrap[T](dims, cre)
	if err != nil {
		return nil, nil, err
	}
	cIm, err = matrix.Wrap[T](dims, cim)
	return cRe, cIm, err
}

// FFTSpectrumOfConvolution computes the Fourier-domain convolution spectrum
// of two complex matrices (pRe, pIm) and (qRe, qIm), element-wise.
func FFTSpectrumOfConvolution[T transformFloat](ctx *Context, pRe, pIm, qRe, qIm *matrix.Matrix[T]) (cRe, cIm *matrix.Matrix[T], err error) {
	dims := pRe.Dims()
	for _, d := range [][]int{pIm.Dims(), qRe.Dims(), qIm.Dims()} {
		if err := checkDims(dims, d); err != nil {
			return nil, nil, err
		}
	}
	cfg, prog := ctx.split()
	tc := spectrumTaskConfig(cfg, prog, matricesContiguous(pRe, pIm, qRe, qIm))
	Logger.Debug().Ints("dims", dims).Bool("contiguous", tc.Contiguous).Msg("FFTSpectrumOfConvolution start")
	cre := make([]T, len(pRe.Data()))
	cim := make([]T, len(pRe.Data()))
	if err := spectrum.FourierConvolve(pRe.Data(), pIm.Data(), qRe.Data(), qIm.Data(), cre, cim, tc); err != nil {
		return nil, nil, err
	}
	cRe, err = matrix.Wrap[T](dims, cre)
	if err != nil {
		return nil, nil, err
	}
	cIm, err = matrix.Wrap[T](dims, cim)
	return cRe, cIm, err
}

func wrapComplexLine[T transformFloat](re, im []T) (*sample.Array[T], error) {
	return sample.NewComplex[T](buffer.NewSlice[T](re), buffer.NewSlice[T](im), uint64(len(re)), 1, 1)
}

func wrapRealLine[T transformFloat](re []T) (*sample.Array[T], error) {
	return sample.NewReal[T](buffer.NewSlice[T](re), uint64(len(re)), 1, 1)
}
