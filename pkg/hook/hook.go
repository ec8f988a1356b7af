package hook

import "github.com/matzehuels/nodemeta/pkg/errors"

// MetadataHook contributes computed metadata fields to a host-owned
// metadata mapping. A hook only inserts or overwrites the keys it computes;
// keys it does not compute are left untouched.
type MetadataHook interface {
	// Name returns the plugin name the host configures the hook under.
	Name() string
	// Update inserts the computed fields into metadata.
	Update(metadata map[string]any) error
}

// VersionSource reads and writes the project version.
type VersionSource interface {
	// Name returns the plugin name the host configures the source under.
	Name() string
	// GetVersion returns the project version in the host's format.
	GetVersion() (string, error)
	// SetVersion writes a host-format version back to the underlying source.
	SetVersion(version string) error
}

// FindMetadataHook returns the hook with the given name from the provided list, or nil if not found.
func FindMetadataHook(name string, hooks []MetadataHook) MetadataHook {
	for _, h := range hooks {
		if h.Name() == name {
			return h
		}
	}
	return nil
}

// FindVersionSource returns the source with the given name from the provided list, or nil if not found.
func FindVersionSource(name string, sources []VersionSource) VersionSource {
	for _, s := range sources {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

// StringOption reads key from a host-supplied option map, falling back to
// def when the key is absent. A present value of any other type is an
// INVALID_OPTION error naming the plugin.
func StringOption(config map[string]any, key, def, plugin string) (string, error) {
	v, ok := config[key]
	if !ok {
		return def, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidOption, "option %q for plugin %q must be a string", key, plugin)
	}
	return s, nil
}
