// Package errs implements the decoder's typed error taxonomy.
//
// Every error is tagged at its construction site with a source-location
// frame (file + line), captured with runtime.Caller at the exact call into
// New/Wrap so that wrapping never rewrites the original location.
package errs

import (
	"fmt"
	"runtime"

	"github.com/pkg/errors"
)

// Kind identifies one of the decoder's stable error categories.
type Kind int

const (
	// Parse indicates a malformed container, wrapped from the parser collaborator.
	Parse Kind = iota
	// Decode indicates an AV1 decoder fault, wrapped from the AV1 collaborator.
	Decode
	// ColorConversion indicates an unsupported matrix/range/sampling combination.
	ColorConversion
	// Unsupported indicates a structural mismatch (dimensions, alpha matrix, etc).
	Unsupported
	// ImageTooLarge indicates the declared pixel count exceeded the configured limit.
	ImageTooLarge
	// OutOfMemory indicates an allocation failure.
	OutOfMemory
	// Cancelled indicates the cancellation token fired.
	Cancelled
)

// String returns the stable textual form of k, suitable for logs.
func (k Kind) String() string {
	switch k {
	case Parse:
		return "Parse"
	case Decode:
		return "Decode"
	case ColorConversion:
		return "ColorConversion"
	case Unsupported:
		return "Unsupported"
	case ImageTooLarge:
		return "ImageTooLarge"
	case OutOfMemory:
		return "OutOfMemory"
	case Cancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// Error is a typed, location-tagged decoder error.
type Error struct {
	kind  Kind
	msg   string
	code  int // Decode-specific fault code, zero otherwise.
	w, h  int // ImageTooLarge dimensions, zero otherwise.
	cause error
	file  string // captured call-site source file, "" if unknown.
	line  int    // captured call-site source line, 0 if unknown.
}

// New builds a new Error of the given kind with the captured call-site
// location. Wrapping via Wrap never moves this location.
func New(k Kind, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	_, file, line, _ := runtime.Caller(1)
	return &Error{
		kind: k,
		msg:  msg,
		file: file,
		line: line,
	}
}

// Wrap annotates cause with kind k. If cause already carries a captured
// location (it is, or wraps, an *Error), that original location is kept;
// wrapping never rewrites where an error was first raised. Otherwise the
// call site of Wrap itself becomes the captured location.
func Wrap(k Kind, cause error, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	e := &Error{
		kind:  k,
		msg:   msg,
		cause: cause,
	}
	var existing *Error
	if errors.As(cause, &existing) {
		e.file, e.line = existing.file, existing.line
	} else {
		_, e.file, e.line, _ = runtime.Caller(1)
	}
	return e
}

// DecodeFault builds a Decode-kind error carrying the AV1 collaborator's
// fault code.
func DecodeFault(code int, msg string) *Error {
	e := New(Decode, "%s", msg)
	e.code = code
	return e
}

// TooLarge builds an ImageTooLarge error carrying the offending dimensions.
func TooLarge(w, h int) *Error {
	e := New(ImageTooLarge, "image too large: %dx%d", w, h)
	e.w, e.h = w, h
	return e
}

// CancelledWith builds a Cancelled error carrying the token's reason string.
func CancelledWith(reason string) *Error {
	return New(Cancelled, "cancelled: %s", reason)
}

// Kind returns the error's stable category.
func (e *Error) Kind() Kind { return e.kind }

// Code returns the AV1 fault code for Decode errors (zero otherwise).
func (e *Error) Code() int { return e.code }

// Dimensions returns the offending width/height for ImageTooLarge errors.
func (e *Error) Dimensions() (int, int) { return e.w, e.h }

// Unwrap exposes the wrapped cause, if any, for errors.Is/As chains.
func (e *Error) Unwrap() error { return e.cause }

// Error implements the error interface with the stable textual form
// required by spec: "<Kind>: <message>".
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.msg)
}

// Location returns the file:line of the original construction site.
func (e *Error) Location() string {
	if e.line == 0 {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", e.file, e.line)
}
