package encodable

import (
	stderrors "errors"
	"fmt"

	"github.com/chipforge/matter-bindgen/errors"
	"github.com/chipforge/matter-bindgen/types"
)

var absentName = &errors.Error{Phase: errors.PhaseResolve, Kind: errors.KindLookupFailure}

// resolve runs type resolution but lets names with no definition through as
// unresolved: like structs, they encode as plain objects. A definition that
// exists but is itself broken still fails.
func (v Value) resolve() (types.Resolved, error) {
	r, err := types.Resolve(v.dataType, v.ctx)
	if err != nil && !stderrors.Is(err, absentName) {
		return r, err
	}
	return r, nil
}

// KotlinType returns the host scalar type name for the value.
//
// Enums and bitmaps promote to the smallest unsigned class holding their
// base width; structs and unresolved named types map to the generic object
// class. An unclassified fundamental kind is a fatal generation error.
func (v Value) KotlinType() (string, error) {
	r, err := v.resolve()
	if err != nil {
		return "", err
	}

	switch r.Kind {
	case types.KindBoolean:
		return "Boolean", nil
	case types.KindFloat:
		return "Float", nil
	case types.KindDouble:
		return "Double", nil
	case types.KindSignedInt:
		switch {
		case r.ByteCount() <= 1:
			return "Byte", nil
		case r.ByteCount() <= 2:
			return "Short", nil
		case r.ByteCount() <= 4:
			return "Int", nil
		default:
			return "Long", nil
		}
	case types.KindUnsignedInt:
		switch {
		case r.ByteCount() <= 1:
			return "UByte", nil
		case r.ByteCount() <= 2:
			return "UShort", nil
		case r.ByteCount() <= 4:
			return "UInt", nil
		default:
			return "ULong", nil
		}
	case types.KindTextString:
		return "String", nil
	case types.KindBinaryString:
		return "ByteArray", nil
	case types.KindEnum, types.KindBitmap:
		if r.ByteCount() >= 3 {
			return "ULong", nil
		}
		return "UInt", nil
	case types.KindStruct, types.KindUnresolved:
		return "Any", nil
	default:
		return "", errors.UnknownFundamental(errors.PhaseEncode, r.Kind.String())
	}
}

// UnboxedSignature returns the wire-ABI signature for the raw scalar form of
// the value. Only plain scalars have one: optional and list values, and
// object kinds, have no unboxed representation.
func (v Value) UnboxedSignature() (string, error) {
	if v.IsOptional() || v.IsList() {
		return "", errors.InvalidTransformation(errors.PhaseEncode,
			fmt.Sprintf("%q is optional or list: no unboxed form", v.dataType.Name))
	}

	r, err := v.resolve()
	if err != nil {
		return "", err
	}

	switch r.Kind {
	case types.KindBoolean:
		return "Z", nil
	case types.KindFloat:
		return "F", nil
	case types.KindDouble:
		return "D", nil
	case types.KindSignedInt, types.KindUnsignedInt:
		if r.ByteCount() >= 3 {
			return "J", nil
		}
		return "I", nil
	default:
		return "", errors.InvalidTransformation(errors.PhaseEncode,
			fmt.Sprintf("%q resolves to %s: no unboxed form", v.dataType.Name, r.Kind))
	}
}

// BoxedSignature returns the wire-ABI signature for the boxed form of the
// value.
//
// Optional takes precedence over list: an optional list is a generic
// optional wrapper, never a typed collection.
func (v Value) BoxedSignature() (string, error) {
	if v.IsOptional() {
		return "Ljava/util/Optional;", nil
	}
	if v.IsList() {
		return "Ljava/util/ArrayList;", nil
	}

	r, err := v.resolve()
	if err != nil {
		return "", err
	}

	switch r.Kind {
	case types.KindBoolean:
		return "Ljava/lang/Boolean;", nil
	case types.KindFloat:
		return "Ljava/lang/Float;", nil
	case types.KindDouble:
		return "Ljava/lang/Double;", nil
	case types.KindSignedInt, types.KindUnsignedInt, types.KindEnum, types.KindBitmap:
		if r.ByteCount() >= 3 {
			return "Ljava/lang/Long;", nil
		}
		return "Ljava/lang/Integer;", nil
	case types.KindTextString:
		return "Ljava/lang/String;", nil
	case types.KindBinaryString:
		return "[B", nil
	case types.KindStruct, types.KindUnresolved:
		clusterName := ""
		if c := v.ctx.Cluster(); c != nil {
			clusterName = c.Name
		}
		return fmt.Sprintf("Lchip/devicecontroller/ChipStructs$%sCluster%s;",
			clusterName, v.dataType.Name), nil
	default:
		return "", errors.UnknownFundamental(errors.PhaseEncode, r.Kind.String())
	}
}
