package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in a fit run the error occurred
type Phase string

const (
	PhaseConfig   Phase = "config"   // option validation
	PhaseMeasure  Phase = "measure"  // baseline measurement
	PhaseSearch   Phase = "search"   // binary search iterations
	PhaseFinalize Phase = "finalize" // final size application
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidRange      Kind = "invalid_range"
	KindBadBaseline       Kind = "bad_baseline"
	KindUnsupportedOption Kind = "unsupported_option"
	KindInvalidFont       Kind = "invalid_font"
	KindCanceled          Kind = "canceled"
)

// Error is the structured error type used throughout the library.
//
// Nothing crosses the public boundary as a panic or a thrown error:
// these values are logged or routed through completion callbacks.
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// ErrCanceled is the cooperative-cancellation sentinel. A superseded fit
// run routes it through the repeater/sequencer error channel to unwind
// early. It marks supersession, not failure, and is never surfaced to
// user-facing callbacks.
var ErrCanceled = &Error{
	Phase:  PhaseSearch,
	Kind:   KindCanceled,
	Detail: "run superseded",
}

// Canceled returns the cancellation sentinel.
func Canceled() *Error {
	return ErrCanceled
}

// IsCanceled reports whether err is (or wraps) the cancellation sentinel.
func IsCanceled(err error) bool {
	return stderrors.Is(err, ErrCanceled)
}

// Convenience constructors for common error patterns

// BadBaseline creates an error for unusable baseline dimensions
func BadBaseline(width, height float64) *Error {
	return &Error{
		Phase:  PhaseMeasure,
		Kind:   KindBadBaseline,
		Detail: fmt.Sprintf("container reports %gx%g usable area", width, height),
	}
}

// InvalidRange creates an error for a size range that violates min <= max
func InvalidRange(minSize, maxSize int) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindInvalidRange,
		Detail: fmt.Sprintf("min size %d exceeds max size %d", minSize, maxSize),
	}
}

// UnsupportedOption creates an error for a deprecated or unknown option
func UnsupportedOption(name string) *Error {
	return &Error{
		Phase:  PhaseConfig,
		Kind:   KindUnsupportedOption,
		Detail: fmt.Sprintf("option %q is not supported and will be ignored", name),
		Value:  name,
	}
}

// Wrap wraps an existing error with phase and kind context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
