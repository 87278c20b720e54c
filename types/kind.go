package types

// Kind is the closed set of semantic kinds a type reference can resolve to.
type Kind uint8

const (
	KindUnresolved Kind = iota
	KindBoolean
	KindFloat
	KindDouble
	KindSignedInt
	KindUnsignedInt
	KindTextString
	KindBinaryString
	KindEnum
	KindBitmap
	KindStruct
)

var kindNames = [...]string{
	KindUnresolved:   "unresolved",
	KindBoolean:      "boolean",
	KindFloat:        "float",
	KindDouble:       "double",
	KindSignedInt:    "signed_int",
	KindUnsignedInt:  "unsigned_int",
	KindTextString:   "text_string",
	KindBinaryString: "binary_string",
	KindEnum:         "enum",
	KindBitmap:       "bitmap",
	KindStruct:       "struct",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsInteger reports whether the kind is a sized integer.
func (k Kind) IsInteger() bool {
	return k == KindSignedInt || k == KindUnsignedInt
}

// IsString reports whether the kind is a text or binary string.
func (k Kind) IsString() bool {
	return k == KindTextString || k == KindBinaryString
}

// IsPrimitive reports whether the kind has a shared cross-cluster
// representation in the global type registry. Enum and Bitmap are not
// primitive even though they carry integer bases.
func (k Kind) IsPrimitive() bool {
	switch k {
	case KindBoolean, KindFloat, KindDouble,
		KindSignedInt, KindUnsignedInt,
		KindTextString, KindBinaryString:
		return true
	default:
		return false
	}
}

// Resolved is the outcome of resolving a data type reference.
//
// Bits carries the integer width for integer kinds and the declared base
// width for enums and bitmaps. Name carries the definition name for structs.
type Resolved struct {
	Name string
	Bits int
	Kind Kind
}

// ByteCount returns the integer width in bytes.
func (r Resolved) ByteCount() int {
	return r.Bits / 8
}

// PowerOfTwoBits rounds the width up to the nearest power-of-two storage
// width (24 bit values occupy 32 bit representations, 40 through 56 bit
// values occupy 64).
func (r Resolved) PowerOfTwoBits() int {
	switch {
	case r.Bits <= 8:
		return 8
	case r.Bits <= 16:
		return 16
	case r.Bits <= 32:
		return 32
	default:
		return 64
	}
}
