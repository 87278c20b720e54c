// Package naming derives collision-free identifiers for generated dispatch
// callbacks and accessors.
//
// Fields whose type has a shared cross-cluster representation reuse one
// identifier keyed by scalar kind; everything else gets an identifier
// synthesized from the owning cluster and field name, so cross-cluster
// collisions are impossible. This bounds generated symbols to the number of
// distinct scalar kinds plus the number of cluster-specific complex fields.
//
// Two eligibility predicates exist on purpose and must stay distinct:
// GlobalName (strict, shared-encoding) rejects enums and bitmaps, while
// UsesGlobalCallback (wide, callback-class) accepts them by name, because
// their base widths coincide with primitive widths at the ABI level even
// though their semantic identity differs.
package naming
