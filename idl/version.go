package idl

import (
	"fmt"

	"github.com/coreos/go-semver/semver"

	"github.com/chipforge/matter-bindgen/errors"
)

// CheckSpecVersion verifies that the model's specification version is at
// least min. An empty min or an unversioned model skips the check.
func CheckSpecVersion(model *Idl, min string) error {
	if min == "" || model.SpecVersion == "" {
		return nil
	}
	have, err := semver.NewVersion(model.SpecVersion)
	if err != nil {
		return errors.InvalidData(errors.PhaseLoad,
			fmt.Sprintf("model specification version %q is not a semantic version", model.SpecVersion))
	}
	want, err := semver.NewVersion(min)
	if err != nil {
		return errors.InvalidData(errors.PhaseLoad,
			fmt.Sprintf("required specification version %q is not a semantic version", min))
	}
	if have.LessThan(*want) {
		return errors.VersionMismatch(model.SpecVersion, min)
	}
	return nil
}
