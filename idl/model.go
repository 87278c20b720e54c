package idl

// DataType is a name reference into the protocol model's type namespace.
type DataType struct {
	Name string `json:"name"`
}

// FieldQuality is a flag set of qualifier modifiers on a field.
type FieldQuality uint8

const (
	FieldOptional FieldQuality = 1 << iota
	FieldNullable
	FieldFabricSensitive
)

// Has reports whether all flags in q are set.
func (f FieldQuality) Has(q FieldQuality) bool {
	return f&q == q
}

// Field is a single member of a struct, command payload or attribute
// definition. Owned by its declaring container; this core only reads it.
type Field struct {
	Name      string       `json:"name"`
	Type      DataType     `json:"type"`
	Code      uint32       `json:"code"`
	IsList    bool         `json:"isList,omitempty"`
	Qualities FieldQuality `json:"qualities,omitempty"`
}

func (f Field) IsOptional() bool {
	return f.Qualities.Has(FieldOptional)
}

func (f Field) IsNullable() bool {
	return f.Qualities.Has(FieldNullable)
}

// Attribute is a cluster attribute wrapping its field definition.
type Attribute struct {
	Definition Field `json:"definition"`
	Readable   bool  `json:"readable,omitempty"`
	Writable   bool  `json:"writable,omitempty"`
}

// Command pairs an input and output parameter type by name.
type Command struct {
	Name        string `json:"name"`
	Code        uint32 `json:"code"`
	InputParam  string `json:"inputParam,omitempty"`
	OutputParam string `json:"outputParam"`
}

// StructTag marks the role of a struct in command dispatch.
type StructTag string

const (
	TagRegular  StructTag = ""
	TagRequest  StructTag = "request"
	TagResponse StructTag = "response"
)

// StructQuality is a flag set of struct-level qualities.
type StructQuality uint8

const (
	StructFabricScoped StructQuality = 1 << iota
)

// Struct is a named aggregate of fields.
type Struct struct {
	Name      string        `json:"name"`
	Fields    []Field       `json:"fields,omitempty"`
	Tag       StructTag     `json:"tag,omitempty"`
	Code      uint32        `json:"code,omitempty"`
	Qualities StructQuality `json:"qualities,omitempty"`
}

// IsFabricScoped reports whether instances of the struct are scoped to a
// network administrative domain.
func (s Struct) IsFabricScoped() bool {
	return s.Qualities&StructFabricScoped != 0
}

// ConstantEntry is a named value inside an enum or bitmap.
type ConstantEntry struct {
	Name string `json:"name"`
	Code uint64 `json:"code"`
}

// Enum is a named enumeration over an integer base type.
type Enum struct {
	Name     string          `json:"name"`
	BaseType string          `json:"baseType"`
	Entries  []ConstantEntry `json:"entries,omitempty"`
}

// Bitmap is a named flag set over an integer base type.
type Bitmap struct {
	Name     string          `json:"name"`
	BaseType string          `json:"baseType"`
	Entries  []ConstantEntry `json:"entries,omitempty"`
}

// ClusterSide says which end of the protocol a cluster definition targets.
type ClusterSide string

const (
	SideClient ClusterSide = "client"
	SideServer ClusterSide = "server"
)

// Cluster is a named functional grouping of attributes, commands and type
// definitions.
type Cluster struct {
	Name       string      `json:"name"`
	Code       uint32      `json:"code"`
	Side       ClusterSide `json:"side,omitempty"`
	Attributes []Attribute `json:"attributes,omitempty"`
	Commands   []Command   `json:"commands,omitempty"`
	Structs    []Struct    `json:"structs,omitempty"`
	Enums      []Enum      `json:"enums,omitempty"`
	Bitmaps    []Bitmap    `json:"bitmaps,omitempty"`
}

// Idl is the root of the protocol model: all clusters plus definitions
// declared in the global namespace.
type Idl struct {
	SpecVersion   string    `json:"specVersion,omitempty"`
	Clusters      []Cluster `json:"clusters,omitempty"`
	GlobalStructs []Struct  `json:"globalStructs,omitempty"`
	GlobalEnums   []Enum    `json:"globalEnums,omitempty"`
	GlobalBitmaps []Bitmap  `json:"globalBitmaps,omitempty"`
}
