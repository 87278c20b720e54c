// Package encodable wraps a resolved type reference with its qualifier flags
// and derives the target-language encodings the emission engine splices into
// generated bindings.
//
// A Value is constructed per use-site and is immutable: qualifier-removal
// transforms return new instances and error when the flag to remove is
// absent. Derivations cover the host scalar type name, the unboxed wire-ABI
// signature (scalars only, never optional or list values) and the boxed
// signature, where the optional wrapper takes precedence over the collection
// form.
package encodable
