package diagfmt

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"fortio.org/safecast"
	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"stringslint/internal/diag"
	"stringslint/internal/source"
)

type palette struct {
	err, warn, note, caret *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:   color.New(color.FgRed, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		note:  color.New(color.FgCyan, color.Bold),
		caret: color.New(color.FgGreen, color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.note, p.caret} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.note
	}
}

// Pretty форматирует диагностики в человекочитаемый вид, который понимают IDE и сборщики.
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <severity>: <message>
//	<строка исходника>
//	<отступ>^
//
// затем каждую заметку тем же блоком с severity note.
// Идёт по bag.Items() в порядке добавления.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		if err := writeBlock(w, fs, p, d.Severity, d.Primary, d.Message, opts.PathMode); err != nil {
			return err
		}
		if !opts.ShowNotes {
			continue
		}
		for _, note := range d.Notes {
			if err := writeBlock(w, fs, p, diag.SevNote, note.Pos, note.Msg, opts.PathMode); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeBlock(w io.Writer, fs *source.FileSet, p palette, sev diag.Severity, pos source.Pos, msg string, mode PathMode) error {
	file := fs.Get(pos.File)
	line, col := clampPosition(file, pos.LineCol)
	text := file.Line(line)

	_, err := fmt.Fprintf(w, "%s:%d:%d: %s %s\n%s\n%s%s\n",
		displayPath(fs, pos.File, mode), line, col,
		p.severity(sev).Sprint(sev.Label()+":"), msg,
		text,
		caretFill(text, col), p.caret.Sprint("^"),
	)
	return err
}

// clampPosition keeps the caret inside the line table: line in [1, lines],
// column in [1, len(line)+1].
func clampPosition(file *source.File, lc source.LineCol) (line, col uint32) {
	line = max(lc.Line, 1)
	if n := file.LineCount(); line > n {
		line = max(n, 1)
	}
	width, err := safecast.Conv[uint32](utf8.RuneCountInString(file.Line(line)))
	if err != nil {
		panic(fmt.Errorf("line width overflow: %w", err))
	}
	col = min(max(lc.Col, 1), width+1)
	return line, col
}

// caretFill returns what goes before '^' for the characters left of col.
// Tabs are copied so the caret lines up with the source line. Other characters
// are filled by display width (go-runewidth), so on non-ASCII lines the fill
// is not always col-1 characters: wide runes take two spaces and zero-width
// runes (combining marks) take none.
func caretFill(text string, col uint32) string {
	var b strings.Builder
	n := uint32(1)
	for _, r := range text {
		if n >= col {
			break
		}
		if r == '\t' {
			b.WriteByte('\t')
		} else {
			b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
		n++
	}
	return b.String()
}
