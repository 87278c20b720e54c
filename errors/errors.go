package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in generation the error occurred
type Phase string

const (
	PhaseResolve Phase = "resolve" // type resolution
	PhaseEncode  Phase = "encode"  // host type / signature derivation
	PhaseNaming  Phase = "naming"  // identifier derivation
	PhaseLoad    Phase = "load"    // model loading
)

// Kind categorizes the error
type Kind string

const (
	KindLookupFailure         Kind = "lookup_failure"
	KindInvalidTransformation Kind = "invalid_transformation"
	KindUnknownFundamental    Kind = "unknown_fundamental"
	KindInvalidData           Kind = "invalid_data"
	KindVersionMismatch       Kind = "version_mismatch"
	KindNotFound              Kind = "not_found"
)

// Error is the structured error type used throughout the generator core.
//
// A LookupFailure is fatal to the generation unit in progress, not the whole
// run. InvalidTransformation and UnknownFundamental indicate caller or
// template logic defects and are never retried.
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Name   string // offending identifier, when one exists
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Name != "" {
		b.WriteString(": ")
		b.WriteString(fmt.Sprintf("%q", e.Name))
	}

	if e.Detail != "" {
		if e.Name != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// LookupFailure creates an error for a type name absent from the lookup context
func LookupFailure(phase Phase, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindLookupFailure,
		Name:   name,
		Detail: "no definition in lookup context",
	}
}

// InvalidTransformation creates an error for an illegal value transformation,
// such as removing a qualifier that is not present
func InvalidTransformation(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidTransformation,
		Detail: detail,
	}
}

// UnknownFundamental creates an error for a fundamental kind that reached a
// mapping table without a defined mapping. Always fatal, never defaulted.
func UnknownFundamental(phase Phase, kind string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnknownFundamental,
		Name:   kind,
		Detail: "no mapping for fundamental kind",
	}
}

// InvalidBaseType creates an error for a named definition whose declared base
// type is not a known integer keyword. The definition exists but is broken;
// distinct from a lookup failure for a name with no definition at all.
func InvalidBaseType(phase Phase, name string, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Name:   name,
		Detail: "definition has an unknown base type",
		Cause:  cause,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Detail: detail,
	}
}

// VersionMismatch creates an error for a model older than the required
// specification version
func VersionMismatch(have, want string) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindVersionMismatch,
		Detail: fmt.Sprintf("model specification version %s is older than required %s", have, want),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Name:   name,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
