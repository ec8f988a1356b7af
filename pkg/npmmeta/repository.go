package npmmeta

import (
	"net/url"
	"regexp"

	"github.com/matzehuels/nodemeta/pkg/errors"
)

// repositoryPattern splits an npm repository shorthand into an optional
// provider tag and the identifier. Only the four literal tags are
// recognized; any other prefix stays part of the identifier. The pattern
// is single-line, so a string containing a newline does not match.
var repositoryPattern = regexp.MustCompile(`^(?:(gist|bitbucket|gitlab|github):)?(.*?)$`)

// repositoryTable maps shorthand provider tags to their base URLs.
var repositoryTable = map[string]string{
	"gitlab":    "https://gitlab.com",
	"github":    "https://github.com",
	"gist":      "https://gist.github.com",
	"bitbucket": "https://bitbucket.org",
}

// ResolveRepository normalizes the manifest repository field into an
// absolute URL. Object forms return their url field verbatim, without
// validation. String forms resolve the identifier against the provider's
// base URL per RFC 3986: a missing tag defaults to github, relative
// identifiers append to the base path, and an identifier that is itself an
// absolute URL overrides the base entirely.
func ResolveRepository(repository any) (string, error) {
	switch r := repository.(type) {
	case string:
		m := repositoryPattern.FindStringSubmatch(r)
		if m == nil {
			return "", errors.New(errors.ErrCodeInvalidManifest, "invalid repository string: %q", r)
		}
		tag, identifier := m[1], m[2]
		if tag == "" {
			tag = "github"
		}
		base, err := url.Parse(repositoryTable[tag])
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInternal, err, "provider base for %q", tag)
		}
		ref, err := url.Parse(identifier)
		if err != nil {
			return "", errors.Wrap(errors.ErrCodeInvalidManifest, err, "invalid repository %q", r)
		}
		return base.ResolveReference(ref).String(), nil
	case map[string]any:
		u, ok := r["url"].(string)
		if !ok {
			return "", errors.New(errors.ErrCodeInvalidManifest, "repository object has no url: %v", r)
		}
		return u, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidManifest, "repository must be a string or an object, got %T", repository)
	}
}
