package naming

import (
	"strings"

	"go.uber.org/zap"

	"github.com/chipforge/matter-bindgen/idl"
	"github.com/chipforge/matter-bindgen/types"
)

// GlobalName is the strict shared-encoding eligibility check. It returns the
// registry canonical name for a field whose type has a single cross-cluster
// representation: never for list or nullable fields (those need per-site
// boxed or collection handling), and never for enums or bitmaps even though
// they carry integer bases.
func GlobalName(f idl.Field, ctx *idl.LookupContext) (string, bool) {
	if f.IsList || f.IsNullable() {
		return "", false
	}
	r, err := types.Resolve(f.Type, ctx)
	if err != nil {
		Logger().Debug("type resolution failed",
			zap.String("field", f.Name),
			zap.String("type", f.Type.Name),
			zap.Error(err))
		return "", false
	}
	return types.CanonicalName(r)
}

// globalCallbackTypes is the wide callback-class keyword set: the registry
// primitives at every declared width plus the untyped enum and bitmap
// keywords.
var globalCallbackTypes = map[string]struct{}{
	"boolean":           {},
	"single":            {},
	"double":            {},
	"int8s":             {},
	"int8u":             {},
	"int16s":            {},
	"int16u":            {},
	"int24s":            {},
	"int24u":            {},
	"int32s":            {},
	"int32u":            {},
	"int40s":            {},
	"int40u":            {},
	"int48s":            {},
	"int48u":            {},
	"int56s":            {},
	"int56u":            {},
	"int64s":            {},
	"int64u":            {},
	"enum8":             {},
	"enum16":            {},
	"enum32":            {},
	"enum64":            {},
	"bitmap8":           {},
	"bitmap16":          {},
	"bitmap32":          {},
	"bitmap64":          {},
	"char_string":       {},
	"long_char_string":  {},
	"octet_string":      {},
	"long_octet_string": {},
}

// UsesGlobalCallback is the wide callback-class eligibility check: whether a
// non-list, non-nullable field can be served by one of the non-named generic
// callback classes. Classification is by type name, which is what lets the
// untyped enum and bitmap keywords qualify here while staying ineligible for
// GlobalName.
func UsesGlobalCallback(f idl.Field) bool {
	if f.IsList || f.IsNullable() {
		return false
	}
	_, ok := globalCallbackTypes[strings.ToLower(f.Type.Name)]
	return ok
}
