package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateManifestPath validates a user-supplied manifest path override.
// It rejects paths that could escape the project root or smuggle in
// control characters.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No absolute paths
//   - No control characters or null bytes
//   - No parent-directory traversal
//   - Maximum length of 256 characters
//
// The hook contract itself does not validate configured paths; this gate
// exists for the CLI flag only.
func ValidateManifestPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "manifest path cannot be empty")
	}

	if len(path) > 256 {
		return New(ErrCodeInvalidPath, "manifest path too long (max 256 characters)")
	}

	if filepath.IsAbs(path) {
		return New(ErrCodeInvalidPath, "manifest path must be relative to the project root: %q", path)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "manifest path contains invalid control characters")
		}
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(path, pattern) {
			return New(ErrCodeInvalidPath, "manifest path contains invalid characters: %q", pattern)
		}
	}

	return nil
}
