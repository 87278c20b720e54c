package types

// knownDecodableTypes maps protocol-model type aliases to the underlying
// decodable representation used on the device side.
var knownDecodableTypes = map[string]string{
	"action_id":      "chip::ActionId",
	"attrib_id":      "chip::AttributeId",
	"cluster_id":     "chip::ClusterId",
	"command_id":     "chip::CommandId",
	"data_ver":       "chip::DataVersion",
	"devtype_id":     "chip::DeviceTypeId",
	"endpoint_no":    "chip::EndpointId",
	"eui64":          "chip::NodeId",
	"event_id":       "chip::EventId",
	"event_no":       "chip::EventNumber",
	"fabric_id":      "chip::FabricId",
	"fabric_idx":     "chip::FabricIndex",
	"field_id":       "chip::FieldId",
	"group_id":       "chip::GroupId",
	"node_id":        "chip::NodeId",
	"percent":        "chip::Percent",
	"percent100ths":  "chip::Percent100ths",
	"transaction_id": "chip::TransactionId",
	"vendor_id":      "chip::VendorId",

	// non-named enums
	"enum8":  "uint8_t",
	"enum16": "uint16_t",
	"enum32": "uint32_t",
	"enum64": "uint64_t",
}

// DecodableType returns the device-side decodable representation for a
// protocol-model type alias.
func DecodableType(name string) (string, bool) {
	t, ok := knownDecodableTypes[name]
	return t, ok
}
