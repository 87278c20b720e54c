// Package idl holds the protocol-model value objects and the type lookup
// context the generator core operates on.
//
// The model (clusters, attributes, commands, structs, enums, bitmaps) is
// produced by an upstream parser and consumed read-only here. A LookupContext
// binds an owning cluster to the model's global namespace; name lookups check
// cluster-local definitions before global ones.
//
// The package also carries the generation predicates (subscribability,
// fabric scoping, response detection) that drive conditional emission, and a
// loader for models serialized to JSON by the upstream pipeline.
package idl
