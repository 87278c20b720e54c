package encodable

import (
	"fmt"
	"strings"

	"github.com/chipforge/matter-bindgen/errors"
	"github.com/chipforge/matter-bindgen/idl"
)

// Qualifier is a flag set of orthogonal modifiers on a value's base type.
type Qualifier uint8

const (
	QualifierList Qualifier = 1 << iota
	QualifierOptional
	QualifierNullable
)

// Has reports whether all flags in q are set.
func (f Qualifier) Has(q Qualifier) bool {
	return f&q == q
}

// Value pairs a data type reference with its qualifier flags and the lookup
// context it resolves against. Values are ephemeral: constructed per
// generation call, never mutated, discarded after use. The context must
// outlive the value.
type Value struct {
	ctx        *idl.LookupContext
	dataType   idl.DataType
	qualifiers Qualifier
}

// FromField builds a Value from a field definition, carrying over its
// list/optional/nullable qualifiers.
func FromField(f idl.Field, ctx *idl.LookupContext) Value {
	var q Qualifier
	if f.IsList {
		q |= QualifierList
	}
	if f.IsOptional() {
		q |= QualifierOptional
	}
	if f.IsNullable() {
		q |= QualifierNullable
	}
	return Value{ctx: ctx, dataType: f.Type, qualifiers: q}
}

// FromGlobalType builds an unqualified Value for a global type name.
func FromGlobalType(name string, ctx *idl.LookupContext) Value {
	return Value{ctx: ctx, dataType: idl.DataType{Name: name}}
}

// DataType returns the wrapped type reference.
func (v Value) DataType() idl.DataType {
	return v.dataType
}

func (v Value) IsList() bool {
	return v.qualifiers.Has(QualifierList)
}

func (v Value) IsOptional() bool {
	return v.qualifiers.Has(QualifierOptional)
}

func (v Value) IsNullable() bool {
	return v.qualifiers.Has(QualifierNullable)
}

// IsTextString reports whether the type is one of the character string
// keyword pair.
func (v Value) IsTextString() bool {
	switch strings.ToLower(v.dataType.Name) {
	case "char_string", "long_char_string":
		return true
	}
	return false
}

// IsBinaryString reports whether the type is one of the octet string keyword
// pair.
func (v Value) IsBinaryString() bool {
	switch strings.ToLower(v.dataType.Name) {
	case "octet_string", "long_octet_string":
		return true
	}
	return false
}

func (v Value) IsStruct() bool {
	return v.ctx.IsStructType(v.dataType.Name)
}

func (v Value) IsEnum() bool {
	return v.ctx.IsEnumType(v.dataType.Name)
}

func (v Value) IsBitmap() bool {
	return v.ctx.IsBitmapType(v.dataType.Name)
}

func (v Value) IsUntypedBitmap() bool {
	return v.ctx.IsUntypedBitmapType(v.dataType.Name)
}

// WithoutNullable returns a copy with the nullable qualifier cleared.
// Removing an absent qualifier is an error, not a no-op.
func (v Value) WithoutNullable() (Value, error) {
	return v.without(QualifierNullable, "nullable")
}

// WithoutOptional returns a copy with the optional qualifier cleared.
func (v Value) WithoutOptional() (Value, error) {
	return v.without(QualifierOptional, "optional")
}

// WithoutList returns a copy with the list qualifier cleared.
func (v Value) WithoutList() (Value, error) {
	return v.without(QualifierList, "list")
}

func (v Value) without(q Qualifier, what string) (Value, error) {
	if !v.qualifiers.Has(q) {
		return Value{}, errors.InvalidTransformation(errors.PhaseEncode,
			fmt.Sprintf("value of type %q is not %s", v.dataType.Name, what))
	}
	out := v
	out.qualifiers &^= q
	return out, nil
}

// UnderlyingStruct returns the struct definition the value refers to.
func (v Value) UnderlyingStruct() (*idl.Struct, error) {
	s := v.ctx.FindStruct(v.dataType.Name)
	if s == nil {
		return nil, errors.LookupFailure(errors.PhaseEncode, v.dataType.Name)
	}
	return s, nil
}

// UnderlyingEnum returns the enum definition the value refers to.
func (v Value) UnderlyingEnum() (*idl.Enum, error) {
	e := v.ctx.FindEnum(v.dataType.Name)
	if e == nil {
		return nil, errors.LookupFailure(errors.PhaseEncode, v.dataType.Name)
	}
	return e, nil
}
