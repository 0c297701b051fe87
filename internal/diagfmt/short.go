package diagfmt

import (
	"io"

	"stringslint/internal/diag"
	"stringslint/internal/source"
)

// Short prints one line per diagnostic (see diag.FormatShortDiagnostics).
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet, mode PathMode, includeNotes bool) error {
	out := diag.FormatShortDiagnosticsPaths(bag.Items(), fs, includeNotes, func(id source.FileID) string {
		return displayPath(fs, id, mode)
	})
	if out == "" {
		return nil
	}
	_, err := io.WriteString(w, out+"\n")
	return err
}
