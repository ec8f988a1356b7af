package npmmeta

import (
	"maps"

	"github.com/matzehuels/nodemeta/pkg/errors"
	"github.com/matzehuels/nodemeta/pkg/hook"
)

// HookName identifies this plugin to the host build system.
const HookName = "nodejs"

// DefaultPath is the manifest location used when the host supplies no path option.
const DefaultPath = "package.json"

// Source translates package.json metadata into the field schema of a
// Python packaging pipeline. It implements [hook.MetadataHook].
//
// A Source is built once per hook instance and may be invoked for several
// metadata-resolution passes; the host's invocation model is single-threaded
// per instance, so no locking is done.
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

// Name returns the plugin name the host configures this hook under.
func (s *Source) Name() string { return HookName }

// Path returns the configured manifest path, relative to the project root.
// The first read is memoized for the lifetime of the Source; later reads
// are pure.
func (s *Source) Path() (string, error) {
	if !s.pathSet {
		p, err := hook.StringOption(s.config, "path", DefaultPath, HookName)
		if err != nil {
			return "", err
		}
		s.path, s.pathSet = p, true
	}
	return s.path, nil
}

func (s *Source) loadPackageData() (map[string]any, error) {
	path, err := s.Path()
	if err != nil {
		return nil, err
	}
	return hook.LoadManifest(s.root, path)
}

// Patch loads the manifest and computes the metadata fields this hook
// contributes. Fields absent from the manifest stay absent from the patch,
// and the urls mapping is only present when at least one of homepage, bugs,
// or repository produced a URL.
func (s *Source) Patch() (map[string]any, error) {
	pkg, err := s.loadPackageData()
	if err != nil {
		return nil, err
	}

	patch := make(map[string]any)

	if author, ok := pkg["author"]; ok {
		p, err := ParsePerson(author)
		if err != nil {
			return nil, err
		}
		patch["author"] = p
	}

	if raw, ok := pkg["contributors"]; ok {
		entries, ok := raw.([]any)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "contributors must be an array, got %T", raw)
		}
		maintainers := make([]Person, len(entries))
		for i, entry := range entries {
			p, err := ParsePerson(entry)
			if err != nil {
				return nil, err
			}
			maintainers[i] = p
		}
		patch["maintainers"] = maintainers
	}

	if keywords, ok := pkg["keywords"]; ok {
		patch["keywords"] = keywords
	}
	if description, ok := pkg["description"]; ok {
		patch["description"] = description
	}
	if license, ok := pkg["license"]; ok {
		patch["license"] = license
	}

	urls := make(map[string]any)
	if homepage, ok := pkg["homepage"]; ok {
		urls["homepage"] = homepage
	}
	if bugs, ok := pkg["bugs"]; ok {
		u, found, err := ResolveBugs(bugs)
		if err != nil {
			return nil, err
		}
		if found {
			urls["bug tracker"] = u
		}
	}
	if repository, ok := pkg["repository"]; ok {
		u, err := ResolveRepository(repository)
		if err != nil {
			return nil, err
		}
		urls["repository"] = u
	}
	if len(urls) > 0 {
		patch["urls"] = urls
	}

	return patch, nil
}

// Update merges the computed fields into the host-owned metadata mapping.
// Keys the manifest does not provide are left untouched. On error the
// mapping is not modified.
func (s *Source) Update(metadata map[string]any) error {
	patch, err := s.Patch()
	if err != nil {
		return err
	}
	maps.Copy(metadata, patch)
	return nil
}
