// Package matterbindgen is the type-resolution and target-encoding core of a
// cross-language binding generator for a device-control protocol interface
// model.
//
// Given an abstract field or type description, the core decides the concrete
// host representation (scalar type, boxed/unboxed wire-ABI signature) and the
// stable identifier used for generated dispatch callbacks and accessors. The
// grammar/parser producing the model and the template engine emitting text
// are external collaborators.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	matter-bindgen/      Root package with the template-filter registry
//	├── idl/             Protocol-model value objects, lookup context, predicates
//	├── types/           Type resolution and the global type registry
//	├── encodable/       Qualifier-aware values: host types and ABI signatures
//	├── naming/          Global-name eligibility and identifier derivation
//	└── errors/          Structured error types for generation failures
//
// # Quick Start
//
// Resolve a cluster's attributes and derive their encodings:
//
//	model, err := idl.LoadFile("model.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx := idl.NewLookupContext(model, &model.Clusters[0])
//	for _, attr := range model.Clusters[0].Attributes {
//	    v := encodable.FromField(attr.Definition, ctx)
//	    hostType, _ := v.KotlinType()
//	    boxed, _ := v.BoxedSignature()
//	    name := naming.AttributeCallbackName(attr, ctx)
//	    _ = hostType
//	    _ = boxed
//	    _ = name
//	}
//
// Template engines consume the same surface through FuncMap.
package matterbindgen
