package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, manifestName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeManifest(t, root, "[lint]\nstrict_comments = true\n")
	nested := filepath.Join(root, "en.lproj", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := findManifest(nested)
	if err != nil || !ok {
		t.Fatalf("findManifest: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("found %q, want %q", got, want)
	}
}

func TestLoadProjectManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[lint]\nstrict_comments = true\n\n[output]\nformat = \"short\"\nmax_diagnostics = 5\npath_mode = \"relative\"\n")

	m, err := loadProjectManifest(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !m.Config.Lint.StrictComments || m.Config.Output.Format != "short" || m.Config.Output.MaxDiagnostics != 5 || m.Config.Output.PathMode != "relative" {
		t.Fatalf("unexpected config %+v", m.Config)
	}
	if m.defines("output", "color") {
		t.Fatal("color was not set in the file")
	}
	if !m.defines("output", "format") {
		t.Fatal("format was set in the file")
	}
}

func TestLoadProjectManifestErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", "[lint\n", "failed to parse TOML"},
		{"unknown key", "[lint]\nstrict = true\n", "unknown keys: lint.strict"},
		{"negative limit", "[output]\nmax_diagnostics = -3\n", "must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, t.TempDir(), tt.content)
			_, err := loadProjectManifest(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %v, want substring %q", err, tt.want)
			}
		})
	}
}

func TestManifestAppliesUnlessFlagSet(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[lint]\nstrict_comments = true\n[output]\nformat = \"short\"\n")
	path := writeStrings(t, dir, "c.strings", "/x\n")

	code, out, _ := run(t, path)
	if code != 1 || !strings.Contains(out, "STR1005") {
		t.Fatalf("strict comments from the project file: exit %d, stdout %q", code, out)
	}

	code, out, _ = run(t, "--strict-comments=false", path)
	if code != 0 || out != "" {
		t.Fatalf("flag must override the project file: exit %d, stdout %q", code, out)
	}
}

func TestExplicitConfigMissing(t *testing.T) {
	dir := t.TempDir()
	path := writeStrings(t, dir, "a.strings", "")
	code, out, _ := run(t, "--config", filepath.Join(dir, "nope.toml"), path)
	if code != 1 || !strings.Contains(out, "nope.toml") {
		t.Fatalf("exit %d, stdout %q", code, out)
	}
}

func TestManifestPathModeIsRelativeToProjectRoot(t *testing.T) {
	dir := t.TempDir()
	writeManifest(t, dir, "[output]\npath_mode = \"relative\"\n")
	sub := filepath.Join(dir, "en.lproj")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	path := writeStrings(t, sub, "r.strings", "x\n")

	code, out, _ := run(t, "--color=off", path)
	if code != 1 || !strings.HasPrefix(out, "en.lproj/r.strings:1:1: error: expected key\n") {
		t.Fatalf("exit %d, stdout %q", code, out)
	}

	_, out, _ = run(t, "--color=off", "--path-mode=as-given", path)
	if !strings.HasPrefix(out, path+":1:1:") {
		t.Fatalf("flag must override the project file: %q", out)
	}
}
