package types

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		want string
		kind Kind
	}{
		{"unresolved", KindUnresolved},
		{"boolean", KindBoolean},
		{"float", KindFloat},
		{"double", KindDouble},
		{"signed_int", KindSignedInt},
		{"unsigned_int", KindUnsignedInt},
		{"text_string", KindTextString},
		{"binary_string", KindBinaryString},
		{"enum", KindEnum},
		{"bitmap", KindBitmap},
		{"struct", KindStruct},
		{"unknown", Kind(255)},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.kind.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestKindIsPrimitive(t *testing.T) {
	primitives := []Kind{
		KindBoolean, KindFloat, KindDouble,
		KindSignedInt, KindUnsignedInt,
		KindTextString, KindBinaryString,
	}
	for _, k := range primitives {
		if !k.IsPrimitive() {
			t.Errorf("%s should be primitive", k)
		}
	}

	nonPrimitives := []Kind{
		KindUnresolved, KindEnum, KindBitmap, KindStruct,
	}
	for _, k := range nonPrimitives {
		if k.IsPrimitive() {
			t.Errorf("%s should not be primitive", k)
		}
	}
}

func TestKindClassifiers(t *testing.T) {
	if !KindSignedInt.IsInteger() || !KindUnsignedInt.IsInteger() {
		t.Error("integer kinds should report IsInteger")
	}
	if KindEnum.IsInteger() || KindBoolean.IsInteger() {
		t.Error("non-integer kinds should not report IsInteger")
	}
	if !KindTextString.IsString() || !KindBinaryString.IsString() {
		t.Error("string kinds should report IsString")
	}
	if KindStruct.IsString() {
		t.Error("struct is not a string kind")
	}
}

func TestResolvedWidths(t *testing.T) {
	tests := []struct {
		bits       int
		wantBytes  int
		wantPowTwo int
	}{
		{8, 1, 8},
		{16, 2, 16},
		{24, 3, 32},
		{32, 4, 32},
		{40, 5, 64},
		{48, 6, 64},
		{56, 7, 64},
		{64, 8, 64},
	}

	for _, tc := range tests {
		r := Resolved{Kind: KindUnsignedInt, Bits: tc.bits}
		if got := r.ByteCount(); got != tc.wantBytes {
			t.Errorf("ByteCount(%d bits) = %d, want %d", tc.bits, got, tc.wantBytes)
		}
		if got := r.PowerOfTwoBits(); got != tc.wantPowTwo {
			t.Errorf("PowerOfTwoBits(%d bits) = %d, want %d", tc.bits, got, tc.wantPowTwo)
		}
	}
}
