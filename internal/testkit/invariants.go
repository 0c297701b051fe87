package testkit

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"stringslint/internal/diag"
	"stringslint/internal/source"
)

// CheckDiagnosticInvariants verifies what every renderer relies on:
//  1. each primary position and note lies in the line table:
//     1 <= line <= len(lines) and 1 <= col <= len(line)+1
//  2. each byte offset is within the content and agrees with line/col
//  3. at most one end-of-file diagnostic exists and it is the last one
func CheckDiagnosticInvariants(bag *diag.Bag, fs *source.FileSet) error {
	if bag == nil || fs == nil {
		return fmt.Errorf("nil bag or file set")
	}
	items := bag.Items()
	eofSeen := false
	for i, d := range items {
		if err := checkPos(fs, d.Primary); err != nil {
			return fmt.Errorf("diagnostic %d (%s): %w", i, d.Code.ID(), err)
		}
		for j, n := range d.Notes {
			if err := checkPos(fs, n.Pos); err != nil {
				return fmt.Errorf("diagnostic %d note %d: %w", i, j, err)
			}
		}
		if isEndOfFile(d.Code) {
			if eofSeen {
				return fmt.Errorf("diagnostic %d: second end-of-file diagnostic", i)
			}
			eofSeen = true
			if i != len(items)-1 && bag.Dropped() == 0 {
				return fmt.Errorf("diagnostic %d: end-of-file diagnostic is not last", i)
			}
		}
	}
	return nil
}

func isEndOfFile(code diag.Code) bool {
	return code > diag.EOFInfo && code < diag.IOInfo
}

func checkPos(fs *source.FileSet, pos source.Pos) error {
	if int(pos.File) >= fs.Len() {
		return fmt.Errorf("unknown file id %d", pos.File)
	}
	f := fs.Get(pos.File)

	if pos.Line < 1 || pos.Line > f.LineCount() {
		return fmt.Errorf("line %d outside 1..%d", pos.Line, f.LineCount())
	}
	width, err := safecast.Conv[uint32](utf8.RuneCountInString(f.Line(pos.Line)))
	if err != nil {
		return fmt.Errorf("line width overflow: %w", err)
	}
	if pos.Col < 1 || pos.Col > width+1 {
		return fmt.Errorf("%d:%d: column outside 1..%d", pos.Line, pos.Col, width+1)
	}

	lenContent, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if pos.Off > lenContent {
		return fmt.Errorf("offset %d beyond content length %d", pos.Off, lenContent)
	}
	if got := fs.Resolve(pos.File, pos.Off); got.LineCol != pos.LineCol {
		return fmt.Errorf("offset %d resolves to %d:%d, diagnostic says %d:%d",
			pos.Off, got.Line, got.Col, pos.Line, pos.Col)
	}
	return nil
}
