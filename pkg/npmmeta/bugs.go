package npmmeta

import "github.com/matzehuels/nodemeta/pkg/errors"

// ResolveBugs normalizes the manifest bugs field into a tracker URL.
// String forms pass through verbatim. Object forms yield their url field;
// an object without one reports ok=false and the field is skipped.
func ResolveBugs(bugs any) (string, bool, error) {
	switch b := bugs.(type) {
	case string:
		return b, true, nil
	case map[string]any:
		v, ok := b["url"]
		if !ok {
			return "", false, nil
		}
		u, ok := v.(string)
		if !ok {
			return "", false, errors.New(errors.ErrCodeInvalidManifest, "bugs url must be a string: %v", v)
		}
		return u, true, nil
	default:
		return "", false, errors.New(errors.ErrCodeInvalidManifest, "bugs must be a string or an object, got %T", bugs)
	}
}
