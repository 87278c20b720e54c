package encodable

import (
	stderrors "errors"
	"testing"

	bgerrors "github.com/chipforge/matter-bindgen/errors"
	"github.com/chipforge/matter-bindgen/idl"
)

func encodableModel() *idl.Idl {
	return &idl.Idl{
		Clusters: []idl.Cluster{
			{
				Name: "DoorLock",
				Structs: []idl.Struct{
					{Name: "CredentialStruct"},
				},
				Enums: []idl.Enum{
					{Name: "DlLockState", BaseType: "enum8"},
				},
				Bitmaps: []idl.Bitmap{
					{Name: "DaysMaskMap", BaseType: "bitmap8"},
				},
			},
		},
	}
}

func testContext(t *testing.T) *idl.LookupContext {
	t.Helper()
	model := encodableModel()
	return idl.NewLookupContext(model, &model.Clusters[0])
}

func TestFromFieldQualifiers(t *testing.T) {
	ctx := testContext(t)

	tests := []struct {
		name     string
		field    idl.Field
		list     bool
		optional bool
		nullable bool
	}{
		{
			name:  "plain",
			field: idl.Field{Name: "state", Type: idl.DataType{Name: "int8u"}},
		},
		{
			name:  "list",
			field: idl.Field{Name: "codes", Type: idl.DataType{Name: "int8u"}, IsList: true},
			list:  true,
		},
		{
			name:     "optional nullable",
			field:    idl.Field{Name: "level", Type: idl.DataType{Name: "int8u"}, Qualities: idl.FieldOptional | idl.FieldNullable},
			optional: true,
			nullable: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := FromField(tc.field, ctx)
			if v.IsList() != tc.list {
				t.Errorf("IsList() = %v, want %v", v.IsList(), tc.list)
			}
			if v.IsOptional() != tc.optional {
				t.Errorf("IsOptional() = %v, want %v", v.IsOptional(), tc.optional)
			}
			if v.IsNullable() != tc.nullable {
				t.Errorf("IsNullable() = %v, want %v", v.IsNullable(), tc.nullable)
			}
		})
	}
}

func TestStringClassification(t *testing.T) {
	ctx := testContext(t)

	tests := []struct {
		typeName string
		text     bool
		binary   bool
	}{
		{"char_string", true, false},
		{"long_char_string", true, false},
		{"CHAR_STRING", true, false},
		{"octet_string", false, true},
		{"long_octet_string", false, true},
		{"int8u", false, false},
	}

	for _, tc := range tests {
		t.Run(tc.typeName, func(t *testing.T) {
			v := FromGlobalType(tc.typeName, ctx)
			if v.IsTextString() != tc.text {
				t.Errorf("IsTextString() = %v, want %v", v.IsTextString(), tc.text)
			}
			if v.IsBinaryString() != tc.binary {
				t.Errorf("IsBinaryString() = %v, want %v", v.IsBinaryString(), tc.binary)
			}
		})
	}
}

func TestContextClassification(t *testing.T) {
	ctx := testContext(t)

	v := FromGlobalType("CredentialStruct", ctx)
	if !v.IsStruct() || v.IsEnum() || v.IsBitmap() {
		t.Error("CredentialStruct should classify as struct only")
	}

	v = FromGlobalType("DlLockState", ctx)
	if !v.IsEnum() || v.IsStruct() {
		t.Error("DlLockState should classify as enum")
	}

	v = FromGlobalType("DaysMaskMap", ctx)
	if !v.IsBitmap() || v.IsUntypedBitmap() {
		t.Error("DaysMaskMap should classify as a named bitmap")
	}

	v = FromGlobalType("bitmap16", ctx)
	if !v.IsBitmap() || !v.IsUntypedBitmap() {
		t.Error("bitmap16 should classify as an untyped bitmap")
	}
}

func TestWithoutTransforms(t *testing.T) {
	ctx := testContext(t)
	field := idl.Field{
		Name:      "level",
		Type:      idl.DataType{Name: "int8u"},
		IsList:    true,
		Qualities: idl.FieldOptional | idl.FieldNullable,
	}
	v := FromField(field, ctx)

	stripped, err := v.WithoutNullable()
	if err != nil {
		t.Fatalf("WithoutNullable() error = %v", err)
	}
	if stripped.IsNullable() {
		t.Error("nullable flag should be cleared")
	}
	if !stripped.IsOptional() || !stripped.IsList() {
		t.Error("other flags must survive the transform")
	}

	// The original value is unchanged.
	if !v.IsNullable() {
		t.Error("transform must not mutate the receiver")
	}

	// Removing an absent flag is an error, not a no-op.
	if _, err := stripped.WithoutNullable(); err == nil {
		t.Fatal("second WithoutNullable() should fail")
	}

	stripped, err = stripped.WithoutOptional()
	if err != nil {
		t.Fatalf("WithoutOptional() error = %v", err)
	}
	stripped, err = stripped.WithoutList()
	if err != nil {
		t.Fatalf("WithoutList() error = %v", err)
	}
	if stripped.IsList() || stripped.IsOptional() || stripped.IsNullable() {
		t.Error("all flags should be cleared")
	}

	for _, transform := range []func() (Value, error){
		stripped.WithoutNullable,
		stripped.WithoutOptional,
		stripped.WithoutList,
	} {
		_, err := transform()
		if err == nil {
			t.Fatal("removing an absent qualifier should fail")
		}
		if !stderrors.Is(err, &bgerrors.Error{Phase: bgerrors.PhaseEncode, Kind: bgerrors.KindInvalidTransformation}) {
			t.Errorf("error = %v, want invalid_transformation", err)
		}
	}
}

func TestUnderlyingDefinitions(t *testing.T) {
	ctx := testContext(t)

	s, err := FromGlobalType("CredentialStruct", ctx).UnderlyingStruct()
	if err != nil {
		t.Fatalf("UnderlyingStruct() error = %v", err)
	}
	if s.Name != "CredentialStruct" {
		t.Errorf("struct name = %q", s.Name)
	}

	e, err := FromGlobalType("DlLockState", ctx).UnderlyingEnum()
	if err != nil {
		t.Fatalf("UnderlyingEnum() error = %v", err)
	}
	if e.BaseType != "enum8" {
		t.Errorf("enum base = %q", e.BaseType)
	}

	_, err = FromGlobalType("NoSuchStruct", ctx).UnderlyingStruct()
	if err == nil {
		t.Fatal("expected lookup failure")
	}
	var bgErr *bgerrors.Error
	if !stderrors.As(err, &bgErr) || bgErr.Name != "NoSuchStruct" {
		t.Errorf("error = %v, want lookup_failure naming NoSuchStruct", err)
	}
}
