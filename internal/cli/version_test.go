package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestVersionGet(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"package.json": `{"name": "x", "version": "1.2.3-rc.1"}`,
	})

	cmd := newVersionCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"get", "--root", dir})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version get failed: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "1.2.3rc1" {
		t.Errorf("version get = %q, want %q", got, "1.2.3rc1")
	}
}

func TestVersionGet_ConfiguredPath(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"pyproject.toml": `
[tool.hatch.version]
source = "nodejs"
path = "app/package.json"
`,
		"app/package.json": `{"version": "2.0.0"}`,
	})

	cmd := newVersionCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs([]string{"get", "--root", dir})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version get failed: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "2.0.0" {
		t.Errorf("version get = %q, want %q", got, "2.0.0")
	}
}

func TestVersionSet(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"package.json": `{"name": "x", "version": "1.0.0"}`,
	})

	cmd := newVersionCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"set", "2.0.0b1", "--root", dir})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version set failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	var pkg map[string]any
	if err := json.Unmarshal(data, &pkg); err != nil {
		t.Fatal(err)
	}
	if pkg["version"] != "2.0.0-b1" {
		t.Errorf("version = %v, want %q", pkg["version"], "2.0.0-b1")
	}
}

func TestVersionSet_InvalidVersion(t *testing.T) {
	dir := writeProject(t, map[string]string{
		"package.json": `{"version": "1.0.0"}`,
	})

	cmd := newVersionCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"set", "not-a-version", "--root", dir})

	if err := cmd.Execute(); err == nil {
		t.Error("version set = nil error, want grammar failure")
	}
}

func TestVersionSet_MissingArg(t *testing.T) {
	cmd := newVersionCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"set"})

	if err := cmd.Execute(); err == nil {
		t.Error("version set without argument should fail")
	}
}
