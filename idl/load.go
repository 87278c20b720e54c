package idl

import (
	"io"
	"os"

	"github.com/go-json-experiment/json"
	"go.uber.org/zap"

	"github.com/chipforge/matter-bindgen/errors"
)

// Load reads a JSON-serialized protocol model produced by the upstream
// parsing pipeline.
func Load(r io.Reader) (*Idl, error) {
	var model Idl
	if err := json.UnmarshalRead(r, &model); err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "decode model")
	}
	Logger().Debug("model loaded",
		zap.Int("clusters", len(model.Clusters)),
		zap.String("specVersion", model.SpecVersion))
	return &model, nil
}

// LoadFile reads a JSON-serialized protocol model from disk.
func LoadFile(path string) (*Idl, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "open model file")
	}
	defer f.Close()
	return Load(f)
}

// Dump writes the model back out as JSON, for round-tripping and tooling.
func Dump(w io.Writer, model *Idl) error {
	if err := json.MarshalWrite(w, model); err != nil {
		return errors.Wrap(errors.PhaseLoad, errors.KindInvalidData, err, "encode model")
	}
	return nil
}
