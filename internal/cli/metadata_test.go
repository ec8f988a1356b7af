package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestRunMetadata_JSON(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"package.json": `{
  "description": "A test package",
  "license": "MIT",
  "author": {"name": "Jane Doe <jane@example.com>"},
  "homepage": "https://example.com",
  "repository": "github:foo/bar"
}`,
	})

	var buf bytes.Buffer
	opts := metadataOpts{root: dir, rawJSON: true}
	if err := runMetadata(context.Background(), &buf, opts); err != nil {
		t.Fatalf("runMetadata failed: %v", err)
	}

	var metadata map[string]any
	if err := json.Unmarshal(buf.Bytes(), &metadata); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}

	author, ok := metadata["author"].(map[string]any)
	if !ok {
		t.Fatalf("author = %v, want an object", metadata["author"])
	}
	if author["name"] != "Jane Doe" || author["email"] != "jane@example.com" {
		t.Errorf("author = %v", author)
	}

	urls, ok := metadata["urls"].(map[string]any)
	if !ok {
		t.Fatalf("urls = %v, want an object", metadata["urls"])
	}
	if urls["repository"] != "https://github.com/foo/bar" {
		t.Errorf("repository = %v", urls["repository"])
	}
	if _, ok := urls["bug tracker"]; ok {
		t.Error("bug tracker should be absent without a bugs field")
	}
}

func TestRunMetadata_StyledOutput(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"package.json": `{"description": "A test package", "keywords": ["a", "b"]}`,
	})

	var buf bytes.Buffer
	if err := runMetadata(context.Background(), &buf, metadataOpts{root: dir}); err != nil {
		t.Fatalf("runMetadata failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "A test package") {
		t.Errorf("output should contain the description:\n%s", out)
	}
	if !strings.Contains(out, "a, b") {
		t.Errorf("output should contain the joined keywords:\n%s", out)
	}
}

func TestRunMetadata_PyprojectPath(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"pyproject.toml": `
[tool.hatch.metadata.hooks.nodejs]
path = "frontend/package.json"
`,
		"frontend/package.json": `{"description": "nested"}`,
	})

	var buf bytes.Buffer
	opts := metadataOpts{root: dir, rawJSON: true}
	if err := runMetadata(context.Background(), &buf, opts); err != nil {
		t.Fatalf("runMetadata failed: %v", err)
	}
	if !strings.Contains(buf.String(), "nested") {
		t.Errorf("output should use the configured manifest:\n%s", buf.String())
	}
}

func TestRunMetadata_PathOverride(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"pyproject.toml": `
[tool.hatch.metadata.hooks.nodejs]
path = "frontend/package.json"
`,
		"frontend/package.json": `{"description": "nested"}`,
		"other/package.json":    `{"description": "override"}`,
	})

	var buf bytes.Buffer
	opts := metadataOpts{root: dir, path: "other/package.json", rawJSON: true}
	if err := runMetadata(context.Background(), &buf, opts); err != nil {
		t.Fatalf("runMetadata failed: %v", err)
	}
	if !strings.Contains(buf.String(), "override") {
		t.Errorf("--path should win over pyproject.toml:\n%s", buf.String())
	}
}

func TestRunMetadata_RejectsTraversal(t *testing.T) {
	dir := writeProject(t, map[string]string{"package.json": `{}`})

	opts := metadataOpts{root: dir, path: "../outside/package.json"}
	if err := runMetadata(context.Background(), io.Discard, opts); err == nil {
		t.Error("runMetadata() = nil error, want path validation failure")
	}
}

func TestRunMetadata_MissingManifest(t *testing.T) {
	err := runMetadata(context.Background(), io.Discard, metadataOpts{root: t.TempDir()})
	if err == nil {
		t.Fatal("runMetadata() = nil error, want not-found")
	}
	if !strings.Contains(err.Error(), "package.json") {
		t.Errorf("error %q should name the manifest", err.Error())
	}
}
