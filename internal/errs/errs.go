// Package errs holds the canonical sentinel error kinds, so every internal
// package can return them without creating an import cycle back to the root
// sfht package (which re-exports them as its own vars).
package errs

import "github.com/pkg/errors"

var (
	ErrInvalidLength   = errors.New("sfht: invalid length")
	ErrNullArgument    = errors.New("sfht: required argument is nil")
	ErrSizeMismatch    = errors.New("sfht: operand shapes do not match")
	ErrTooLarge        = errors.New("sfht: requested size too large")
	ErrUnsupportedKind = errors.New("sfht: unsupported sample kind")
	ErrCancelled       = errors.New("sfht: operation cancelled")
)

func InvalidLength(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidLength, format, args...)
}

func NullArgument(name string) error {
	return errors.Wrapf(ErrNullArgument, "%s", name)
}

func SizeMismatch(format string, args ...interface{}) error {
	return errors.Wrapf(ErrSizeMismatch, format, args...)
}

func TooLarge(format string, args ...interface{}) error {
	return errors.Wrapf(ErrTooLarge, format, args...)
}

func UnsupportedKind(format string, args ...interface{}) error {
	return errors.Wrapf(ErrUnsupportedKind, format, args...)
}

func Cancelled() error {
	return ErrCancelled
}
