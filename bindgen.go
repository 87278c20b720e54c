package matterbindgen

import (
	"reflect"
	"text/template"

	"github.com/chipforge/matter-bindgen/encodable"
	"github.com/chipforge/matter-bindgen/errors"
	"github.com/chipforge/matter-bindgen/idl"
	"github.com/chipforge/matter-bindgen/naming"
)

// FuncMap returns the query, transform and predicate surface of the core as
// template helpers. This is the handoff point to the emission engine; the
// core has no knowledge of output file naming or layout.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"createLookupContext": idl.NewLookupContext,
		"asEncodable":         encodable.FromField,
		"globalAsEncodable":   encodable.FromGlobalType,

		"callbackName":              naming.AttributeCallbackName,
		"delegatedCallbackName":     naming.DelegatedCallbackName,
		"chipClustersCallbackName":  naming.ClusterAccessorCallbackName,
		"javaAttributeCallbackName": naming.JavaAttributeCallbackName,
		"commandCallbackName":       naming.CommandCallbackName,
		"javaCommandCallbackName":   naming.JavaCommandCallbackName,
		"isFieldGlobalName":         IsFieldGlobalName,
		"isUsingGlobalCallback":     naming.UsesGlobalCallback,
		"toBoxedJavaType":           naming.BoxedJavaType,
		"lowercaseFirst":            naming.LowerFirst,

		"canSubscribe":           idl.CanSubscribe,
		"isFabricScopedList":     idl.IsFabricScopedList,
		"hasResponse":            idl.HasResponse,
		"isResponseStruct":       idl.IsResponseStruct,
		"attributesWithCallback": AttributesWithCallback,
		"named":                  namedElement,
	}
}

// IsFieldGlobalName reports whether a field is strict-eligible for a shared
// cross-cluster name.
func IsFieldGlobalName(f idl.Field, ctx *idl.LookupContext) bool {
	_, ok := naming.GlobalName(f, ctx)
	return ok
}

// AttributesWithCallback filters attributes down to those covered by
// attribute callback generation.
func AttributesWithCallback(attrs []idl.Attribute, ctx *idl.LookupContext) []idl.Attribute {
	var out []idl.Attribute
	for _, attr := range attrs {
		if idl.HasSupportedCallback(attr, ctx) {
			out = append(out, attr)
		}
	}
	return out
}

// namedElement finds the element of a model slice whose Name field equals
// name. Template-facing: operates on any of the model's named slices.
func namedElement(items any, name string) (any, error) {
	v := reflect.ValueOf(items)
	if v.Kind() != reflect.Slice {
		return nil, errors.InvalidData(errors.PhaseNaming, "named requires a slice")
	}
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		field := elem.FieldByName("Name")
		if field.IsValid() && field.Kind() == reflect.String && field.String() == name {
			return elem.Interface(), nil
		}
	}
	return nil, errors.NotFound(errors.PhaseNaming, "item", name)
}
