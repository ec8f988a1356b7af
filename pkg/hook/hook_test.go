package hook

import (
	"testing"

	"github.com/matzehuels/nodemeta/pkg/errors"
)

type fakeHook struct{ name string }

func (f *fakeHook) Name() string                { return f.name }
func (f *fakeHook) Update(map[string]any) error { return nil }

type fakeSource struct{ name string }

func (f *fakeSource) Name() string                { return f.name }
func (f *fakeSource) GetVersion() (string, error) { return "1.0.0", nil }
func (f *fakeSource) SetVersion(string) error     { return nil }

func TestFindMetadataHook(t *testing.T) {
	hooks := []MetadataHook{&fakeHook{"nodejs"}, &fakeHook{"cargo"}}

	if got := FindMetadataHook("cargo", hooks); got == nil || got.Name() != "cargo" {
		t.Errorf("FindMetadataHook(cargo) = %v, want the cargo hook", got)
	}

	if got := FindMetadataHook("maven", hooks); got != nil {
		t.Errorf("FindMetadataHook(maven) = %v, want nil", got)
	}
}

func TestFindVersionSource(t *testing.T) {
	sources := []VersionSource{&fakeSource{"nodejs"}}

	if got := FindVersionSource("nodejs", sources); got == nil {
		t.Error("FindVersionSource(nodejs) = nil, want the nodejs source")
	}

	if got := FindVersionSource("regex", sources); got != nil {
		t.Errorf("FindVersionSource(regex) = %v, want nil", got)
	}
}

func TestStringOption(t *testing.T) {
	tests := []struct {
		name    string
		config  map[string]any
		want    string
		wantErr bool
	}{
		{"present", map[string]any{"path": "frontend/package.json"}, "frontend/package.json", false},
		{"absent uses default", map[string]any{}, "package.json", false},
		{"nil config uses default", nil, "package.json", false},
		{"empty string kept", map[string]any{"path": ""}, "", false},
		{"wrong type", map[string]any{"path": 42}, "", true},
		{"wrong type bool", map[string]any{"path": true}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := StringOption(tt.config, "path", "package.json", "nodejs")
			if (err != nil) != tt.wantErr {
				t.Fatalf("StringOption() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidOption) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidOption)
				}
				return
			}
			if got != tt.want {
				t.Errorf("StringOption() = %q, want %q", got, tt.want)
			}
		})
	}
}
