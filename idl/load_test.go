package idl

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	bgerrors "github.com/chipforge/matter-bindgen/errors"
)

const modelJSON = `{
	"specVersion": "1.3.0",
	"clusters": [
		{
			"name": "OnOff",
			"code": 6,
			"side": "client",
			"attributes": [
				{"definition": {"name": "onOff", "type": {"name": "boolean"}, "code": 0}},
				{"definition": {"name": "startUpOnOff", "type": {"name": "StartUpOnOffEnum"}, "code": 16387, "qualities": 2}}
			],
			"commands": [
				{"name": "Off", "code": 0, "outputParam": "DefaultSuccess"}
			],
			"enums": [
				{"name": "StartUpOnOffEnum", "baseType": "enum8"}
			]
		}
	]
}`

func TestLoad(t *testing.T) {
	model, err := Load(strings.NewReader(modelJSON))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if model.SpecVersion != "1.3.0" {
		t.Errorf("SpecVersion = %q, want %q", model.SpecVersion, "1.3.0")
	}
	if len(model.Clusters) != 1 {
		t.Fatalf("clusters = %d, want 1", len(model.Clusters))
	}

	cluster := model.Clusters[0]
	if cluster.Name != "OnOff" || cluster.Code != 6 || cluster.Side != SideClient {
		t.Errorf("cluster = %+v", cluster)
	}
	if len(cluster.Attributes) != 2 {
		t.Fatalf("attributes = %d, want 2", len(cluster.Attributes))
	}
	if !cluster.Attributes[1].Definition.IsNullable() {
		t.Error("startUpOnOff should decode as nullable")
	}
	if cluster.Attributes[0].Definition.IsNullable() {
		t.Error("onOff should not be nullable")
	}
}

func TestLoadInvalid(t *testing.T) {
	_, err := Load(strings.NewReader("{not json"))
	if err == nil {
		t.Fatal("expected error for malformed input")
	}
	if !stderrors.Is(err, &bgerrors.Error{Phase: bgerrors.PhaseLoad, Kind: bgerrors.KindInvalidData}) {
		t.Errorf("error = %v, want invalid_data", err)
	}
}

func TestDumpRoundTrip(t *testing.T) {
	model, err := Load(strings.NewReader(modelJSON))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Dump(&buf, model); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	again, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load(dumped) error = %v", err)
	}
	if again.SpecVersion != model.SpecVersion || len(again.Clusters) != len(model.Clusters) {
		t.Errorf("round trip mismatch: %+v", again)
	}
}

func TestCheckSpecVersion(t *testing.T) {
	tests := []struct {
		name     string
		have     string
		min      string
		wantKind bgerrors.Kind
	}{
		{"no minimum", "1.0.0", "", ""},
		{"unversioned model", "", "1.3.0", ""},
		{"exact", "1.3.0", "1.3.0", ""},
		{"newer", "1.4.1", "1.3.0", ""},
		{"older", "1.2.0", "1.3.0", bgerrors.KindVersionMismatch},
		{"garbage model version", "one.three", "1.3.0", bgerrors.KindInvalidData},
		{"garbage minimum", "1.3.0", "latest", bgerrors.KindInvalidData},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CheckSpecVersion(&Idl{SpecVersion: tc.have}, tc.min)
			if tc.wantKind == "" {
				if err != nil {
					t.Fatalf("CheckSpecVersion() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected error")
			}
			if !stderrors.Is(err, &bgerrors.Error{Phase: bgerrors.PhaseLoad, Kind: tc.wantKind}) {
				t.Errorf("error = %v, want kind %s", err, tc.wantKind)
			}
		})
	}
}
