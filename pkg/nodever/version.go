package nodever

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/matzehuels/nodemeta/pkg/errors"
)

// The npm-side version grammar. Compared to PEP 440 it rejects
// underscores, limits release/prerelease/build to the three-component npm
// forms, and requires '-' to introduce a prerelease.
const nodePattern = `(?P<major>[0-9]+)` +
	`\.(?P<minor>[0-9]+)` +
	`\.(?P<patch>[0-9]+)` +
	`(?P<pre>-(?P<pre_l>a|b|c|rc|alpha|beta|pre|preview)[-.]?(?P<pre_n>[0-9]+)?)?` +
	`(?:\+(?P<build>[0-9A-Za-z][0-9A-Za-z_-]*(?:(?:\.[0-9A-Za-z_-]+)*\.[0-9A-Za-z_-]*[0-9A-Za-z])?))?`

// The PEP 440-side grammar: optional leading v, separators around the
// prerelease may be '-', '_', or '.', and the build segment is a local
// version identifier.
const pythonPattern = `v?` +
	`(?P<major>[0-9]+)` +
	`\.(?P<minor>[0-9]+)` +
	`\.(?P<patch>[0-9]+)` +
	`(?P<pre>[-_.]?(?P<pre_l>alpha|beta|preview|a|b|c|rc|pre)[-_.]?(?P<pre_n>[0-9]+)?)?` +
	`(?:\+(?P<local>[0-9A-Za-z][0-9A-Za-z_-]*(?:(?:\.[0-9A-Za-z_-]+)*\.[0-9A-Za-z_-]*[0-9A-Za-z])?))?`

var (
	nodeVersionRe   = regexp.MustCompile(`(?i)^\s*` + nodePattern + `\s*$`)
	pythonVersionRe = regexp.MustCompile(`(?i)^\s*` + pythonPattern + `\s*$`)
)

func group(re *regexp.Regexp, m []string, name string) string {
	return m[re.SubexpIndex(name)]
}

// NodeToPython translates an npm version string into PEP 440 form.
// The prerelease label is carried over as-is and loses its '-' separator:
// "1.2.3-rc.1" becomes "1.2.3rc1". The build segment maps to a local
// version segment unchanged.
func NodeToPython(version string) (string, error) {
	m := nodeVersionRe.FindStringSubmatch(version)
	if m == nil {
		return "", errors.New(errors.ErrCodeInvalidVersion, "version %q did not match the Node.js version grammar", version)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s.%s.%s",
		group(nodeVersionRe, m, "major"),
		group(nodeVersionRe, m, "minor"),
		group(nodeVersionRe, m, "patch"))

	if group(nodeVersionRe, m, "pre") != "" {
		b.WriteString(group(nodeVersionRe, m, "pre_l"))
		b.WriteString(group(nodeVersionRe, m, "pre_n"))
	}
	if build := group(nodeVersionRe, m, "build"); build != "" {
		b.WriteString("+")
		b.WriteString(build)
	}
	return b.String(), nil
}

// PythonToNode translates a PEP 440 version string into npm form.
// The prerelease gains npm's mandatory '-' separator: "1.2.3rc1" becomes
// "1.2.3-rc1". The local version segment maps to a build segment unchanged.
func PythonToNode(version string) (string, error) {
	m := pythonVersionRe.FindStringSubmatch(version)
	if m == nil {
		return "", errors.New(errors.ErrCodeInvalidVersion, "version %q did not match the PEP 440 version grammar", version)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s.%s.%s",
		group(pythonVersionRe, m, "major"),
		group(pythonVersionRe, m, "minor"),
		group(pythonVersionRe, m, "patch"))

	if group(pythonVersionRe, m, "pre") != "" {
		b.WriteString("-")
		b.WriteString(group(pythonVersionRe, m, "pre_l"))
		b.WriteString(group(pythonVersionRe, m, "pre_n"))
	}
	if local := group(pythonVersionRe, m, "local"); local != "" {
		b.WriteString("+")
		b.WriteString(local)
	}
	return b.String(), nil
}
