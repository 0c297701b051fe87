package diag

import (
	"testing"

	"stringslint/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.AddVirtual("en.lproj/Localizable.strings", []byte("\"a\" = \"b\"\n\"c\"\n"))
	at := func(line, col uint32) source.Pos {
		return source.Pos{File: file, LineCol: source.LineCol{Line: line, Col: col}}
	}

	diags := []Diagnostic{
		NewError(EOFExpectEquals, at(3, 1), "end of file reached\nwhen expecting '='").
			WithNote(at(2, 1), "related key is here"),
		NewError(StrExpectSemicolon, at(2, 1), "expected ';'").
			WithNote(at(1, 1), "related key is here"),
		{Severity: SevError, Code: StrExpectKey, Primary: source.Pos{File: 9}, Message: "unknown file"},
	}

	expected := "note STR1004 en.lproj/Localizable.strings:1:1 related key is here\n" +
		"error STR1004 en.lproj/Localizable.strings:2:1 expected ';'\n" +
		"note EOF1102 en.lproj/Localizable.strings:2:1 related key is here\n" +
		"error EOF1102 en.lproj/Localizable.strings:3:1 end of file reached when expecting '='"

	if got := FormatShortDiagnostics(diags, fs, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}

	withoutNotes := "error STR1004 en.lproj/Localizable.strings:2:1 expected ';'\n" +
		"error EOF1102 en.lproj/Localizable.strings:3:1 end of file reached when expecting '='"
	if got := FormatShortDiagnostics(diags, fs, false); got != withoutNotes {
		t.Fatalf("unexpected short diagnostics without notes:\nwant:\n%s\n\ngot:\n%s", withoutNotes, got)
	}
}

func TestFormatShortDiagnosticsEmpty(t *testing.T) {
	if got := FormatShortDiagnostics(nil, source.NewFileSet(), true); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
