package diag

import (
	"fmt"
	"sort"
	"strings"

	"stringslint/internal/source"
)

type goldenDiagnostic struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatShortDiagnostics renders diagnostics into a stable, single-line-per-entry
// representation used by `--format short` and by golden tests:
//
//	error STR1004 Localizable.strings:1:11 expected ';'
//
// Entries are sorted by path, line, column, severity, code and message and
// joined with '\n' (empty string when nothing is left).
func FormatShortDiagnostics(diags []Diagnostic, fs *source.FileSet, includeNotes bool) string {
	return FormatShortDiagnosticsPaths(diags, fs, includeNotes, nil)
}

// FormatShortDiagnosticsPaths is FormatShortDiagnostics with every path
// produced by pathOf; a nil pathOf prints File.Path.
func FormatShortDiagnosticsPaths(diags []Diagnostic, fs *source.FileSet, includeNotes bool, pathOf func(source.FileID) string) string {
	if fs == nil || len(diags) == 0 {
		return ""
	}
	if pathOf == nil {
		pathOf = func(id source.FileID) string { return fs.Get(id).Path }
	}

	rendered := make([]goldenDiagnostic, 0, len(diags))
	for i := range diags {
		rendered = appendDiagnostic(rendered, &diags[i], fs, includeNotes, pathOf)
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	var b strings.Builder
	for i, d := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", d.Severity, d.Code, d.Path, d.Line, d.Column, d.Message)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func appendDiagnostic(out []goldenDiagnostic, d *Diagnostic, fs *source.FileSet, includeNotes bool, pathOf func(source.FileID) string) []goldenDiagnostic {
	if path, ok := filePath(fs, d.Primary.File, pathOf); ok {
		out = append(out, goldenDiagnostic{
			Severity: d.Severity.Label(),
			Code:     d.Code.ID(),
			Path:     path,
			Line:     d.Primary.Line,
			Column:   d.Primary.Col,
			Message:  sanitizeMessage(d.Message),
		})
	}

	if includeNotes {
		for _, note := range d.Notes {
			path, ok := filePath(fs, note.Pos.File, pathOf)
			if !ok {
				continue
			}
			out = append(out, goldenDiagnostic{
				Severity: SevNote.Label(),
				Code:     d.Code.ID(),
				Path:     path,
				Line:     note.Pos.Line,
				Column:   note.Pos.Col,
				Message:  sanitizeMessage(note.Msg),
			})
		}
	}

	return out
}

func filePath(fs *source.FileSet, id source.FileID, pathOf func(source.FileID) string) (string, bool) {
	if int(id) >= fs.Len() {
		return "", false
	}
	return pathOf(id), true
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
