package idl

import (
	"strings"

	"github.com/chipforge/matter-bindgen/errors"
)

// DefaultSuccessName is the sentinel output-parameter name signaling that a
// command has no distinct response payload.
const DefaultSuccessName = "DefaultSuccess"

// CanSubscribe reports whether an attribute can be subscribed to.
//
// Struct scalars are excluded for backward compatibility; a list of structs
// remains subscribable.
func CanSubscribe(attr Attribute, ctx *LookupContext) bool {
	if attr.Definition.IsList {
		return true
	}
	return !ctx.IsStructType(attr.Definition.Type.Name)
}

// scalarTypeNames are the type keywords with a dedicated scalar callback
// class. Bitmap base keywords are covered by IsBitmapType.
var scalarTypeNames = map[string]struct{}{
	"boolean": {}, "single": {}, "double": {},
	"int8s": {}, "int8u": {}, "int16s": {}, "int16u": {},
	"int24s": {}, "int24u": {}, "int32s": {}, "int32u": {},
	"int40s": {}, "int40u": {}, "int48s": {}, "int48u": {},
	"int56s": {}, "int56u": {}, "int64s": {}, "int64u": {},
	"char_string": {}, "long_char_string": {},
	"octet_string": {}, "long_octet_string": {},
	"enum8": {}, "enum16": {}, "enum32": {}, "enum64": {},
}

// HasSupportedCallback reports whether attribute callback generation covers
// this attribute. Stricter than CanSubscribe: a non-list attribute whose type
// encodes as a plain object, whether a known struct or a name with no
// definition at all, gets no generic callback.
func HasSupportedCallback(attr Attribute, ctx *LookupContext) bool {
	if attr.Definition.IsList {
		return true
	}
	name := attr.Definition.Type.Name
	if ctx.IsStructType(name) {
		return false
	}
	if ctx.IsEnumType(name) || ctx.IsBitmapType(name) {
		return true
	}
	_, ok := scalarTypeNames[strings.ToLower(name)]
	return ok
}

// IsFabricScopedList reports whether an attribute is a list whose element
// struct carries the fabric-scoped quality.
func IsFabricScopedList(attr Attribute, ctx *LookupContext) bool {
	if !attr.Definition.IsList {
		return false
	}
	s := ctx.FindStruct(attr.Definition.Type.Name)
	return s != nil && s.IsFabricScoped()
}

// HasResponse reports whether a command has a distinct response payload.
func HasResponse(cmd Command) bool {
	return !strings.EqualFold(cmd.OutputParam, DefaultSuccessName)
}

// IsResponseStruct reports whether a struct is tagged as a command response.
func IsResponseStruct(s Struct) bool {
	return s.Tag == TagResponse
}

// Named returns the element of items whose key equals name.
func Named[T any](items []T, name string, key func(T) string) (T, error) {
	for _, item := range items {
		if key(item) == name {
			return item, nil
		}
	}
	var zero T
	return zero, errors.NotFound(errors.PhaseNaming, "item", name)
}
