package types

import "fmt"

// GlobalType is one entry in the global type registry: a scalar kind with a
// single generic representation shared by every cluster.
type GlobalType struct {
	Name       string // canonical cross-cluster name
	Underlying string // underlying C++ representation
	IdlName    string // protocol-model type name
}

// globalTypes is built once at process start and never changes.
var globalTypes = [...]GlobalType{
	{"Boolean", "bool", "boolean"},
	{"CharString", "const chip::CharSpan", "char_string"},
	{"Double", "double", "double"},
	{"Float", "float", "single"},
	{"Int8s", "int8_t", "int8s"},
	{"Int8u", "uint8_t", "int8u"},
	{"Int16s", "int16_t", "int16s"},
	{"Int16u", "uint16_t", "int16u"},
	{"Int32s", "int32_t", "int32s"},
	{"Int32u", "uint32_t", "int32u"},
	{"Int64s", "int64_t", "int64s"},
	{"Int64u", "uint64_t", "int64u"},
	{"OctetString", "const chip::ByteSpan", "octet_string"},
}

var (
	globalByName    map[string]GlobalType
	globalByIdlName map[string]GlobalType
)

func init() {
	globalByName = make(map[string]GlobalType, len(globalTypes))
	globalByIdlName = make(map[string]GlobalType, len(globalTypes))
	for _, gt := range globalTypes {
		if _, dup := globalByName[gt.Name]; dup {
			panic(fmt.Sprintf("global type registry: duplicate canonical name %q", gt.Name))
		}
		if _, dup := globalByIdlName[gt.IdlName]; dup {
			panic(fmt.Sprintf("global type registry: duplicate model name %q", gt.IdlName))
		}
		globalByName[gt.Name] = gt
		globalByIdlName[gt.IdlName] = gt
	}
}

// GlobalTypes returns a snapshot of the registry for diagnostics and tests.
func GlobalTypes() []GlobalType {
	out := make([]GlobalType, len(globalTypes))
	copy(out, globalTypes[:])
	return out
}

// GlobalTypeByName looks up a registry entry by canonical name.
func GlobalTypeByName(name string) (GlobalType, bool) {
	gt, ok := globalByName[name]
	return gt, ok
}

// GlobalTypeByIdlName looks up a registry entry by protocol-model type name.
func GlobalTypeByIdlName(name string) (GlobalType, bool) {
	gt, ok := globalByIdlName[name]
	return gt, ok
}

// CanonicalName maps a resolved primitive kind to its registry canonical
// name. Integer widths promote to their power-of-two storage width, so
// int24u reports Int32u. Returns false for enums, bitmaps, structs and
// unresolved kinds, which have no shared representation.
func CanonicalName(r Resolved) (string, bool) {
	switch r.Kind {
	case KindBoolean:
		return "Boolean", true
	case KindFloat:
		return "Float", true
	case KindDouble:
		return "Double", true
	case KindTextString:
		return "CharString", true
	case KindBinaryString:
		return "OctetString", true
	case KindSignedInt:
		return fmt.Sprintf("Int%ds", r.PowerOfTwoBits()), true
	case KindUnsignedInt:
		return fmt.Sprintf("Int%du", r.PowerOfTwoBits()), true
	default:
		return "", false
	}
}
