// Package types resolves protocol-model type references into a closed set of
// semantic kinds and hosts the global type registry.
//
// Resolution is a pure function over an immutable lookup context: fixed
// fundamental keywords first, then sized integers, string keywords, untyped
// enum/bitmap keywords, and finally cluster-then-global definition lookup.
// Every reachable type name maps to exactly one kind or resolution fails with
// a lookup error naming the identifier.
//
// The global type registry is the fixed catalog of scalar kinds that share a
// single cross-cluster representation. It is built once at init and read-only
// thereafter, so concurrent generation tasks need no coordination.
package types
