package avif

import "github.com/goavif/avifcore/internal/errs"

// Error is the public error type returned by Decode/DecodeWith. Use
// errors.As to recover it and inspect Kind/Code/Dimensions.
type Error = errs.Error

// Kind classifies what went wrong during decode.
type Kind = errs.Kind

const (
	KindParse           = errs.Parse
	KindDecode          = errs.Decode
	KindColorConversion = errs.ColorConversion
	KindUnsupported     = errs.Unsupported
	KindImageTooLarge   = errs.ImageTooLarge
	KindOutOfMemory     = errs.OutOfMemory
	KindCancelled       = errs.Cancelled
)

func newCancelledError(reason string) error {
	return errs.CancelledWith(reason)
}

func tooLargeError(w, h int) error {
	return errs.TooLarge(w, h)
}

func parseError(cause error, format string, args ...interface{}) error {
	return errs.Wrap(errs.Parse, cause, format, args...)
}

func decodeError(cause error, format string, args ...interface{}) error {
	return errs.Wrap(errs.Decode, cause, format, args...)
}

func colorError(cause error, format string, args ...interface{}) error {
	return errs.Wrap(errs.ColorConversion, cause, format, args...)
}

func colorConversionError(format string, args ...interface{}) error {
	return errs.New(errs.ColorConversion, format, args...)
}

func unsupportedError(format string, args ...interface{}) error {
	return errs.New(errs.Unsupported, format, args...)
}
