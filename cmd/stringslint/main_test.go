package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeStrings(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestUsageError(t *testing.T) {
	for _, args := range [][]string{nil, {"a.strings", "b.strings"}} {
		code, out, _ := run(t, args...)
		if code != 1 {
			t.Errorf("args %v: exit %d, want 1", args, code)
		}
		if out != "stringslint requires a single argument\n" {
			t.Errorf("args %v: stdout %q", args, out)
		}
	}
}

func TestValidFileExitsZero(t *testing.T) {
	dir := t.TempDir()
	path := writeStrings(t, dir, "ok.strings", "\"a\" /* comment \n spanning lines */ = \"b\";\n")

	code, out, _ := run(t, path)
	if code != 0 || out != "" {
		t.Fatalf("exit %d, stdout %q", code, out)
	}
}

func TestPrettyOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeStrings(t, dir, "bad.strings", "\"a\" = \"b\";\n\"c\" = \"d")

	code, out, _ := run(t, "--color=off", path)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	want := path + ":2:9: error: end of file reached when expecting end of value\n" +
		"\"c\" = \"d\n" +
		"        ^\n" +
		path + ":2:1: note: related key is here\n" +
		"\"c\" = \"d\n" +
		"^\n"
	if out != want {
		t.Fatalf("stdout mismatch\n got: %q\nwant: %q", out, want)
	}
}

func TestMissingSemicolonRecovers(t *testing.T) {
	dir := t.TempDir()
	path := writeStrings(t, dir, "semi.strings", "\"a\" = \"b\" \"c\" = \"d\";\n")

	code, out, _ := run(t, "--format=short", path)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected error and note, got %q", out)
	}
	if !strings.HasPrefix(lines[0], "note STR1004 ") || !strings.Contains(lines[0], ":1:1 related key is here") {
		t.Fatalf("unexpected note line %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "error STR1004 ") || !strings.Contains(lines[1], ":1:11 expected ';'") {
		t.Fatalf("unexpected error line %q", lines[1])
	}
}

func TestUnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.strings")
	code, out, _ := run(t, path)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	if !strings.HasPrefix(out, "unable to parse "+path+": ") {
		t.Fatalf("unexpected stdout %q", out)
	}
	if strings.Contains(out, "file unreadable") {
		t.Fatalf("cause should not repeat the sentinel: %q", out)
	}
}

func TestJSONOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeStrings(t, dir, "j.strings", "oops\n")

	code, out, _ := run(t, "--format", "json", path)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	var payload struct {
		Count       int  `json:"count"`
		Failed      bool `json:"failed"`
		Diagnostics []struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"diagnostics"`
	}
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if payload.Count != 1 || !payload.Failed || payload.Diagnostics[0].Code != "STR1001" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestRepeatedRunsAreIdentical(t *testing.T) {
	dir := t.TempDir()
	path := writeStrings(t, dir, "d.strings", "x\n\"a\" \"b\";\n\"c\" = ;\n")

	_, first, _ := run(t, "--color=off", path)
	_, second, _ := run(t, "--color=off", path)
	if first != second || first == "" {
		t.Fatalf("outputs differ or empty:\n%s\n---\n%s", first, second)
	}
}

func TestTimingsGoToStderr(t *testing.T) {
	dir := t.TempDir()
	path := writeStrings(t, dir, "t.strings", "\"a\" = \"b\";\n")

	code, out, errOut := run(t, "--timings", path)
	if code != 0 || out != "" {
		t.Fatalf("exit %d, stdout %q", code, out)
	}
	for _, phase := range []string{"load", "scan", "render", "total"} {
		if !strings.Contains(errOut, phase) {
			t.Errorf("timings miss %q: %q", phase, errOut)
		}
	}
}

func TestTraceToStderr(t *testing.T) {
	dir := t.TempDir()
	path := writeStrings(t, dir, "t.strings", "\"a\" = \"b\";\n")

	code, _, errOut := run(t, "--trace=phase", path)
	if code != 0 {
		t.Fatalf("exit %d", code)
	}
	if !strings.Contains(errOut, "→ check") || !strings.Contains(errOut, "← scan") {
		t.Fatalf("unexpected trace %q", errOut)
	}
}

func TestInvalidFlagValues(t *testing.T) {
	dir := t.TempDir()
	path := writeStrings(t, dir, "f.strings", "")

	tests := [][]string{
		{"--format=xml", path},
		{"--color=sometimes", path},
		{"--trace=loud", path},
		{"--max-diagnostics=-1", path},
		{"--path-mode=full", path},
	}
	for _, args := range tests {
		code, out, _ := run(t, args...)
		if code != 1 || out == "" {
			t.Errorf("args %v: exit %d, stdout %q", args, code, out)
		}
	}
}

func TestVersionFlag(t *testing.T) {
	code, out, _ := run(t, "--version")
	if code != 0 || !strings.HasPrefix(out, "stringslint ") {
		t.Fatalf("exit %d, stdout %q", code, out)
	}
}

func TestMemProfileFlag(t *testing.T) {
	dir := t.TempDir()
	path := writeStrings(t, dir, "p.strings", "\"a\" = \"b\";\n")
	memPath := filepath.Join(dir, "mem.pprof")

	code, out, _ := run(t, "--mem-profile", memPath, path)
	if code != 0 || out != "" {
		t.Fatalf("exit %d, stdout %q", code, out)
	}
	if info, err := os.Stat(memPath); err != nil || info.Size() == 0 {
		t.Fatalf("heap profile missing: %v", err)
	}
}

func TestSameOffsetErrorsKeepReportOrder(t *testing.T) {
	dir := t.TempDir()
	path := writeStrings(t, dir, "f.strings", "\"a\" = \"b\" x\n\"c\" = \"d\";\n")

	code, out, _ := run(t, "--color=off", path)
	if code != 1 {
		t.Fatalf("exit %d, want 1", code)
	}
	want := path + ":1:11: error: expected ';'\n" +
		"\"a\" = \"b\" x\n" +
		"          ^\n" +
		path + ":1:1: note: related key is here\n" +
		"\"a\" = \"b\" x\n" +
		"^\n" +
		path + ":1:11: error: expected key\n" +
		"\"a\" = \"b\" x\n" +
		"          ^\n"
	if out != want {
		t.Fatalf("stdout mismatch\n got: %q\nwant: %q", out, want)
	}
}

func TestPathModeFlag(t *testing.T) {
	dir := t.TempDir()
	path := writeStrings(t, dir, "b.strings", "x\n")

	_, out, _ := run(t, "--color=off", "--path-mode=basename", path)
	if !strings.HasPrefix(out, "b.strings:1:1: error: expected key\n") {
		t.Fatalf("unexpected stdout %q", out)
	}

	_, out, _ = run(t, "--format=short", "--path-mode", "absolute", path)
	if out != "error STR1001 "+filepath.ToSlash(path)+":1:1 expected key\n" {
		t.Fatalf("unexpected stdout %q", out)
	}
}
