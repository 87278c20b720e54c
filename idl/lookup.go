package idl

// untypedBitmapNames are the bitmap base-type keywords that carry no named
// entries of their own.
var untypedBitmapNames = map[string]struct{}{
	"bitmap8":  {},
	"bitmap16": {},
	"bitmap32": {},
	"bitmap64": {},
}

// LookupContext is a read-only view over the model bound to an optional
// owning cluster. Name lookups check cluster-local definitions before global
// ones. A context is never mutated by the generator core and must outlive
// every value built from it.
type LookupContext struct {
	idl     *Idl
	cluster *Cluster
}

// NewLookupContext binds a lookup context to a specific cluster. A nil
// cluster yields a context over the global namespace only.
func NewLookupContext(idl *Idl, cluster *Cluster) *LookupContext {
	return &LookupContext{idl: idl, cluster: cluster}
}

// Cluster returns the owning cluster, or nil for a global context.
func (c *LookupContext) Cluster() *Cluster {
	return c.cluster
}

// ClusterStruct returns the cluster-local struct definition for name, or nil.
func (c *LookupContext) ClusterStruct(name string) *Struct {
	if c.cluster == nil {
		return nil
	}
	for i := range c.cluster.Structs {
		if c.cluster.Structs[i].Name == name {
			return &c.cluster.Structs[i]
		}
	}
	return nil
}

// GlobalStruct returns the global struct definition for name, or nil.
func (c *LookupContext) GlobalStruct(name string) *Struct {
	for i := range c.idl.GlobalStructs {
		if c.idl.GlobalStructs[i].Name == name {
			return &c.idl.GlobalStructs[i]
		}
	}
	return nil
}

// FindStruct returns the struct definition for name, cluster-local
// definitions shadowing global ones. Returns nil when absent.
func (c *LookupContext) FindStruct(name string) *Struct {
	if s := c.ClusterStruct(name); s != nil {
		return s
	}
	return c.GlobalStruct(name)
}

// ClusterEnum returns the cluster-local enum definition for name, or nil.
func (c *LookupContext) ClusterEnum(name string) *Enum {
	if c.cluster == nil {
		return nil
	}
	for i := range c.cluster.Enums {
		if c.cluster.Enums[i].Name == name {
			return &c.cluster.Enums[i]
		}
	}
	return nil
}

// GlobalEnum returns the global enum definition for name, or nil.
func (c *LookupContext) GlobalEnum(name string) *Enum {
	for i := range c.idl.GlobalEnums {
		if c.idl.GlobalEnums[i].Name == name {
			return &c.idl.GlobalEnums[i]
		}
	}
	return nil
}

// FindEnum returns the enum definition for name, cluster-local definitions
// shadowing global ones. Returns nil when absent.
func (c *LookupContext) FindEnum(name string) *Enum {
	if e := c.ClusterEnum(name); e != nil {
		return e
	}
	return c.GlobalEnum(name)
}

// ClusterBitmap returns the cluster-local bitmap definition for name, or nil.
func (c *LookupContext) ClusterBitmap(name string) *Bitmap {
	if c.cluster == nil {
		return nil
	}
	for i := range c.cluster.Bitmaps {
		if c.cluster.Bitmaps[i].Name == name {
			return &c.cluster.Bitmaps[i]
		}
	}
	return nil
}

// GlobalBitmap returns the global bitmap definition for name, or nil.
func (c *LookupContext) GlobalBitmap(name string) *Bitmap {
	for i := range c.idl.GlobalBitmaps {
		if c.idl.GlobalBitmaps[i].Name == name {
			return &c.idl.GlobalBitmaps[i]
		}
	}
	return nil
}

// FindBitmap returns the bitmap definition for name, cluster-local
// definitions shadowing global ones. Returns nil when absent.
func (c *LookupContext) FindBitmap(name string) *Bitmap {
	if b := c.ClusterBitmap(name); b != nil {
		return b
	}
	return c.GlobalBitmap(name)
}

// IsStructType reports whether name refers to a struct definition.
func (c *LookupContext) IsStructType(name string) bool {
	return c.FindStruct(name) != nil
}

// IsEnumType reports whether name refers to an enum definition.
func (c *LookupContext) IsEnumType(name string) bool {
	return c.FindEnum(name) != nil
}

// IsBitmapType reports whether name refers to a bitmap definition or one of
// the untyped bitmap base keywords.
func (c *LookupContext) IsBitmapType(name string) bool {
	if c.IsUntypedBitmapType(name) {
		return true
	}
	return c.FindBitmap(name) != nil
}

// IsUntypedBitmapType reports whether name is one of the bitmap base-type
// keywords (bitmap8 through bitmap64).
func (c *LookupContext) IsUntypedBitmapType(name string) bool {
	_, ok := untypedBitmapNames[name]
	return ok
}
