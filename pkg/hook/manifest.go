package hook

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/matzehuels/nodemeta/pkg/errors"
)

// LoadManifest resolves rel against the project root and decodes the JSON
// manifest found there into a generic mapping. The not-found error reports
// rel as the host configured it, not the joined path.
func LoadManifest(root, rel string) (map[string]any, error) {
	path := filepath.Join(root, rel)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, errors.New(errors.ErrCodeFileNotFound, "file does not exist: %s", rel)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", rel)
	}

	var manifest map[string]any
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", rel)
	}
	return manifest, nil
}

// SaveManifest writes manifest back to rel under the project root as
// 4-space indented JSON. Keys are emitted in sorted order.
func SaveManifest(root, rel string, manifest map[string]any) error {
	data, err := json.MarshalIndent(manifest, "", "    ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidManifest, err, "encode %s", rel)
	}
	if err := os.WriteFile(filepath.Join(root, rel), data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", rel)
	}
	return nil
}
