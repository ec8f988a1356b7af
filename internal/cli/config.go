package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/nodemeta/pkg/errors"
)

// pyprojectFile is where the host build system configures its plugins.
const pyprojectFile = "pyproject.toml"

// metadataHookConfig reads the [tool.hatch.metadata.hooks.nodejs] table
// from root's pyproject.toml.
func metadataHookConfig(root string) (map[string]any, error) {
	return loadPluginConfig(root, "tool", "hatch", "metadata", "hooks", "nodejs")
}

// versionSourceConfig reads the [tool.hatch.version] table from root's
// pyproject.toml.
func versionSourceConfig(root string) (map[string]any, error) {
	return loadPluginConfig(root, "tool", "hatch", "version")
}

// loadPluginConfig decodes pyproject.toml and walks down to the table at
// keys. A missing file or table yields an empty config, leaving every
// plugin option at its default. The config stays a generic mapping so the
// plugins see exactly what a host would hand them, wrong types included.
func loadPluginConfig(root string, keys ...string) (map[string]any, error) {
	data, err := os.ReadFile(filepath.Join(root, pyprojectFile))
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read %s", pyprojectFile)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", pyprojectFile)
	}
	return tomlTable(doc, keys...), nil
}

// tomlTable walks nested toml tables, returning an empty map when any key
// along the path is missing or not a table.
func tomlTable(doc map[string]any, keys ...string) map[string]any {
	cur := doc
	for _, key := range keys {
		next, ok := cur[key].(map[string]any)
		if !ok {
			return map[string]any{}
		}
		cur = next
	}
	return cur
}
