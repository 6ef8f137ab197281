// Package reporter is the diagnostic callback bundle threaded through the
// tokenizer and parser driver. Every fault raised anywhere in this module
// - from the tokenizer's scanners, from a directive, from the source
// manager's include handling - flows through a Handler.Report call, never
// by unwinding the stack (spec §7). The one throwing variant is Handler.Throw,
// reserved for conditions that prevent token creation outright.
package reporter

import (
	"errors"
	"fmt"

	"github.com/zaxc/corec/token"
)

// ErrInvalidSource is returned by Handler.Result when at least one
// error-or-worse severity Diagnostic was reported during a run.
var ErrInvalidSource = errors.New("corec: invalid source")

// ErrorWithPos is an error tied to a location in a source file, the shape
// callers that want a plain Go error (rather than a Diagnostic) receive.
//
// The value of Error() contains both the location and the underlying
// error; Unwrap() yields only the underlying error.
type ErrorWithPos interface {
	error
	GetPosition() token.Location
	Unwrap() error
}

// Error wraps err with a fixed source position.
func Error(pos token.Location, err error) ErrorWithPos {
	return errorWithLocation{pos: pos, underlying: err}
}

// Errorf is like Error but builds the underlying error from a format
// string, exactly as fmt.Errorf would.
func Errorf(pos token.Location, format string, args ...interface{}) ErrorWithPos {
	return errorWithLocation{pos: pos, underlying: fmt.Errorf(format, args...)}
}

// errorWithLocation is the concrete ErrorWithPos implementation. Exported
// only through the interface; callers that need to inspect a diagnostic's
// location should type-assert to ErrorWithPos, not to this type.
type errorWithLocation struct {
	underlying error
	pos        token.Location
}

func (e errorWithLocation) Error() string {
	return fmt.Sprintf("%s: %v", e.GetPosition(), e.underlying)
}

// GetPosition implements ErrorWithPos.
func (e errorWithLocation) GetPosition() token.Location {
	return e.pos
}

// Unwrap implements ErrorWithPos.
func (e errorWithLocation) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithLocation{}
