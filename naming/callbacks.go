package naming

import (
	"fmt"
	"strings"

	"github.com/chipforge/matter-bindgen/idl"
)

// AttributeCallbackName returns the identifier for a read callback. Fields
// with a shared representation reuse one callback per scalar kind; everything
// else gets a cluster-qualified identifier.
func AttributeCallbackName(attr idl.Attribute, ctx *idl.LookupContext) string {
	if name, ok := GlobalName(attr.Definition, ctx); ok {
		return fmt.Sprintf("CHIP%sAttributeCallback", UpperFirst(name))
	}
	return fmt.Sprintf("CHIP%s%sAttributeCallback",
		UpperFirst(ctx.Cluster().Name),
		UpperFirst(attr.Definition.Name))
}

// DelegatedCallbackName returns the identifier used for delegate callback
// construction.
func DelegatedCallbackName(attr idl.Attribute, ctx *idl.LookupContext) string {
	if name, ok := GlobalName(attr.Definition, ctx); ok {
		return fmt.Sprintf("Delegated%sAttributeCallback", BoxedJavaName(name))
	}
	return fmt.Sprintf("Delegated%sCluster%sAttributeCallback",
		ctx.Cluster().Name,
		UpperFirst(attr.Definition.Name))
}

// ClusterAccessorCallbackName returns the identifier used when building a
// cluster accessor's attribute callback.
func ClusterAccessorCallbackName(attr idl.Attribute, ctx *idl.LookupContext) string {
	if name, ok := GlobalName(attr.Definition, ctx); ok {
		return fmt.Sprintf("ChipClusters.%sAttributeCallback", BoxedJavaName(name))
	}
	return fmt.Sprintf("ChipClusters.%sCluster.%sAttributeCallback",
		ctx.Cluster().Name,
		UpperFirst(attr.Definition.Name))
}

// JavaAttributeCallbackName returns the short attribute callback identifier
// used inside generated accessor classes.
func JavaAttributeCallbackName(attr idl.Attribute, ctx *idl.LookupContext) string {
	if name, ok := GlobalName(attr.Definition, ctx); ok {
		return BoxedJavaName(name)
	}
	return fmt.Sprintf("%sAttribute", UpperFirst(attr.Definition.Name))
}

// CommandCallbackName returns the dispatch identifier for a command's
// response callback. Commands whose output parameter is the DefaultSuccess
// sentinel share one default-acknowledgement identifier.
func CommandCallbackName(cmd idl.Command, cluster idl.Cluster) string {
	if strings.EqualFold(cmd.OutputParam, idl.DefaultSuccessName) {
		return idl.DefaultSuccessName
	}
	return fmt.Sprintf("%sCluster%s", cluster.Name, cmd.OutputParam)
}

// JavaCommandCallbackName returns the short command callback identifier used
// inside generated accessor classes.
func JavaCommandCallbackName(cmd idl.Command) string {
	if strings.EqualFold(cmd.OutputParam, idl.DefaultSuccessName) {
		return "DefaultCluster"
	}
	return cmd.OutputParam
}

// BoxedJavaName maps a registry canonical name to the boxed host class used
// in callback identifiers. Narrow integers widen to Integer, everything at or
// above 32 bits to Long; the remaining canonical names are already host
// class names.
func BoxedJavaName(canonical string) string {
	switch canonical {
	case "Int8u", "Int8s", "Int16u", "Int16s":
		return "Integer"
	}
	if strings.HasPrefix(canonical, "Int") {
		return "Long"
	}
	return canonical
}

// BoxedJavaType returns the JNI parameter type for a field's boxed form.
func BoxedJavaType(f idl.Field) string {
	if f.IsOptional() {
		return "jobject"
	}
	switch strings.ToLower(f.Type.Name) {
	case "octet_string", "long_octet_string":
		return "jbyteArray"
	case "char_string", "long_char_string":
		return "jstring"
	default:
		return "jobject"
	}
}
