// Package sfht is a spectral-transform engine computing one- and
// multi-dimensional FFT and Separable Fast Hartley Transform over large
// numeric arrays and matrices, plus the convolution-spectrum and
// Hartley<->Fourier conversion operators built on those transforms.
package sfht

import "github.com/go-sfht/sfht/internal/errs"

// Sentinel error kinds, re-exported from internal/errs so callers can use
// errors.Is(err, sfht.ErrInvalidLength) etc. without reaching into an
// internal package.
var (
	ErrInvalidLength   = errs.ErrInvalidLength
	ErrNullArgument    = errs.ErrNullArgument
	ErrSizeMismatch    = errs.ErrSizeMismatch
	ErrTooLarge        = errs.ErrTooLarge
	ErrUnsupportedKind = errs.ErrUnsupportedKind
	ErrCancelled       = errs.ErrCancelled
)
