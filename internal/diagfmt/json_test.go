package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"stringslint/internal/diag"
	"stringslint/internal/source"
)

func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("/tmp/project/Localizable.strings", []byte("\"a\" = \"b\";\n\"c\" = \"d"))

	bag := diag.NewBag(0)
	bag.Add(diag.NewError(diag.EOFExpectValueEnd,
		source.Pos{File: file, Off: 19, LineCol: source.LineCol{Line: 2, Col: 9}},
		"end of file reached when expecting end of value").
		WithNote(source.Pos{File: file, Off: 11, LineCol: source.LineCol{Line: 2, Col: 1}}, "related key is here"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{PathMode: PathModeBasename, IncludeNotes: true}); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	// Парсим JSON чтобы убедиться что он валидный
	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("Invalid JSON output: %v\nOutput: %s", err, buf.String())
	}

	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("Expected 1 diagnostic, got %d/%d", output.Count, len(output.Diagnostics))
	}
	if !output.Failed {
		t.Error("Expected failed=true")
	}

	d := output.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "EOF1104" {
		t.Errorf("unexpected severity/code %s %s", d.Severity, d.Code)
	}
	want := LocationJSON{File: "Localizable.strings", Offset: 19, Line: 2, Col: 9}
	if d.Location != want {
		t.Errorf("expected location %+v, got %+v", want, d.Location)
	}
	if len(d.Notes) != 1 || d.Notes[0].Location.Line != 2 || d.Notes[0].Location.Col != 1 {
		t.Errorf("unexpected notes %+v", d.Notes)
	}
}

func TestJSONMaxAndNotes(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("a.strings", []byte("x\ny\nz\n"))

	bag := diag.NewBag(0)
	for line := uint32(1); line <= 3; line++ {
		bag.Add(diag.NewError(diag.StrExpectKey, source.Pos{File: file, LineCol: source.LineCol{Line: line, Col: 1}}, "expected key").
			WithNote(source.Pos{File: file}, "unused"))
	}

	output := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if output.Count != 2 || output.Dropped != 1 {
		t.Fatalf("expected 2 shown and 1 dropped, got %d/%d", output.Count, output.Dropped)
	}
	for _, d := range output.Diagnostics {
		if len(d.Notes) != 0 {
			t.Fatalf("notes must be omitted without IncludeNotes")
		}
	}
}

func TestJSONEmptyBag(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, diag.NewBag(0), source.NewFileSet(), JSONOpts{}); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"diagnostics\": [],\n  \"count\": 0,\n  \"failed\": false\n}\n"
	if got := buf.String(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
