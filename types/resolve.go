package types

import (
	"strings"

	"github.com/chipforge/matter-bindgen/errors"
	"github.com/chipforge/matter-bindgen/idl"
)

type integerInfo struct {
	bits   int
	signed bool
}

var integerTypes = map[string]integerInfo{
	"int8s":  {8, true},
	"int8u":  {8, false},
	"int16s": {16, true},
	"int16u": {16, false},
	"int24s": {24, true},
	"int24u": {24, false},
	"int32s": {32, true},
	"int32u": {32, false},
	"int40s": {40, true},
	"int40u": {40, false},
	"int48s": {48, true},
	"int48u": {48, false},
	"int56s": {56, true},
	"int56u": {56, false},
	"int64s": {64, true},
	"int64u": {64, false},
}

var untypedEnumBits = map[string]int{
	"enum8":  8,
	"enum16": 16,
	"enum32": 32,
	"enum64": 64,
}

var untypedBitmapBits = map[string]int{
	"bitmap8":  8,
	"bitmap16": 16,
	"bitmap32": 32,
	"bitmap64": 64,
}

// Resolve maps a data type reference to its semantic kind. Pure; no side
// effects on the context.
//
// Resolution order: fundamental keywords, sized integers, string keywords,
// untyped enum/bitmap keywords, then cluster-local bitmap/enum/struct
// definitions followed by the same checks against globals. An unmatched name
// returns an unresolved value together with a lookup error naming it.
func Resolve(dt idl.DataType, ctx *idl.LookupContext) (Resolved, error) {
	switch strings.ToLower(dt.Name) {
	case "boolean":
		return Resolved{Kind: KindBoolean}, nil
	case "single":
		return Resolved{Kind: KindFloat}, nil
	case "double":
		return Resolved{Kind: KindDouble}, nil
	case "char_string", "long_char_string":
		return Resolved{Kind: KindTextString}, nil
	case "octet_string", "long_octet_string":
		return Resolved{Kind: KindBinaryString}, nil
	}

	name := strings.ToLower(dt.Name)
	if info, ok := integerTypes[name]; ok {
		kind := KindUnsignedInt
		if info.signed {
			kind = KindSignedInt
		}
		return Resolved{Kind: kind, Bits: info.bits}, nil
	}
	if bits, ok := untypedEnumBits[name]; ok {
		return Resolved{Kind: KindEnum, Bits: bits}, nil
	}
	if bits, ok := untypedBitmapBits[name]; ok {
		return Resolved{Kind: KindBitmap, Bits: bits}, nil
	}

	// Named definitions: every cluster-local category shadows every global
	// one. Bitmap, enum, struct within each scope.
	if b := ctx.ClusterBitmap(dt.Name); b != nil {
		return resolvedBitmap(dt.Name, b)
	}
	if e := ctx.ClusterEnum(dt.Name); e != nil {
		return resolvedEnum(dt.Name, e)
	}
	if ctx.ClusterStruct(dt.Name) != nil {
		return Resolved{Kind: KindStruct, Name: dt.Name}, nil
	}
	if b := ctx.GlobalBitmap(dt.Name); b != nil {
		return resolvedBitmap(dt.Name, b)
	}
	if e := ctx.GlobalEnum(dt.Name); e != nil {
		return resolvedEnum(dt.Name, e)
	}
	if ctx.GlobalStruct(dt.Name) != nil {
		return Resolved{Kind: KindStruct, Name: dt.Name}, nil
	}

	return Resolved{Kind: KindUnresolved, Name: dt.Name},
		errors.LookupFailure(errors.PhaseResolve, dt.Name)
}

// A found definition with an unresolvable base is broken model data, not a
// missing name; it never degrades to the unknown-name object fallback.
func resolvedBitmap(name string, b *idl.Bitmap) (Resolved, error) {
	bits, err := baseBits(b.BaseType)
	if err != nil {
		return Resolved{Kind: KindUnresolved, Name: name},
			errors.InvalidBaseType(errors.PhaseResolve, name, err)
	}
	return Resolved{Kind: KindBitmap, Bits: bits, Name: name}, nil
}

func resolvedEnum(name string, e *idl.Enum) (Resolved, error) {
	bits, err := baseBits(e.BaseType)
	if err != nil {
		return Resolved{Kind: KindUnresolved, Name: name},
			errors.InvalidBaseType(errors.PhaseResolve, name, err)
	}
	return Resolved{Kind: KindEnum, Bits: bits, Name: name}, nil
}

// baseBits returns the width of an enum or bitmap base type keyword.
func baseBits(base string) (int, error) {
	name := strings.ToLower(base)
	if info, ok := integerTypes[name]; ok {
		return info.bits, nil
	}
	if bits, ok := untypedEnumBits[name]; ok {
		return bits, nil
	}
	if bits, ok := untypedBitmapBits[name]; ok {
		return bits, nil
	}
	return 0, errors.LookupFailure(errors.PhaseResolve, base)
}
