// Package errors provides structured error types for the binding generator.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type carries the offending identifier when one exists
// and supports cause chains.
//
// Use the convenience constructors for common patterns:
//
//	err := errors.LookupFailure(errors.PhaseResolve, "AccessControlEntry")
//	err := errors.InvalidTransformation(errors.PhaseEncode, "value is not nullable")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
