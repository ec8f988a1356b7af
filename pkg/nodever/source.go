package nodever

import (
	"github.com/matzehuels/nodemeta/pkg/errors"
	"github.com/matzehuels/nodemeta/pkg/hook"
)

// SourceName identifies this plugin to the host build system.
const SourceName = "nodejs"

// DefaultPath is the manifest location used when the host supplies no path option.
const DefaultPath = "package.json"

// Source reads and writes the project version through package.json.
// It implements [hook.VersionSource].
type Source struct {
	root   string
	config map[string]any

	path    string // memoized path option
	pathSet bool
}

// New creates a Source for the project at root with host-supplied options.
func New(root string, config map[string]any) *Source {
	return &Source{root: root, config: config}
}

// Name returns the plugin name the host configures this source under.
func (s *Source) Name() string { return SourceName }

// Path returns the configured manifest path, relative to the project root.
// The first read is memoized for the lifetime of the Source.
func (s *Source) Path() (string, error) {
	if !s.pathSet {
		p, err := hook.StringOption(s.config, "path", DefaultPath, SourceName)
		if err != nil {
			return "", err
		}
		s.path, s.pathSet = p, true
	}
	return s.path, nil
}

// GetVersion reads the manifest version field and returns its PEP 440
// translation.
func (s *Source) GetVersion() (string, error) {
	path, err := s.Path()
	if err != nil {
		return "", err
	}
	pkg, err := hook.LoadManifest(s.root, path)
	if err != nil {
		return "", err
	}

	raw, ok := pkg["version"].(string)
	if !ok {
		return "", errors.New(errors.ErrCodeInvalidManifest, "manifest %s has no version field", path)
	}
	return NodeToPython(raw)
}

// SetVersion translates a PEP 440 version to npm form and rewrites the
// manifest with it. All other manifest fields are carried over.
func (s *Source) SetVersion(version string) error {
	path, err := s.Path()
	if err != nil {
		return err
	}
	pkg, err := hook.LoadManifest(s.root, path)
	if err != nil {
		return err
	}

	node, err := PythonToNode(version)
	if err != nil {
		return err
	}
	pkg["version"] = node
	return hook.SaveManifest(s.root, path, pkg)
}
