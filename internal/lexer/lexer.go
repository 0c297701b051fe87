package lexer

import (
	"stringslint/internal/diag"
	"stringslint/internal/source"
)

const relatedKeyNote = "related key is here"

// Result summarises one pass over a file.
type Result struct {
	Entries int // completed "key" = "value"; entries
	Errors  int // syntax errors reported, end of file included
	Final   State
	End     source.Pos
}

// Scanner validates one file in a single left-to-right pass.
// All mutable scan state lives here; a Scanner is used once.
type Scanner struct {
	file   *source.File
	cursor Cursor
	opts   Options
	state  State

	key    source.Pos // opening quote of the last key
	hasKey bool

	entries int
	errors  int
}

// New returns a Scanner positioned at the start of file in AwaitingKeyStart.
func New(file *source.File, opts Options) *Scanner {
	return &Scanner{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		state:  Await(AwaitingKeyStart),
	}
}

// State returns the current parse state.
func (sc *Scanner) State() State {
	return sc.state
}

// Run consumes the whole file, reporting through Options.Reporter, then runs
// the end-of-file check.
func (sc *Scanner) Run() Result {
	for !sc.cursor.EOF() {
		pos := sc.cursor.Pos()
		r := sc.cursor.Bump()
		sc.feed(r, pos)
	}
	sc.finish()
	return Result{
		Entries: sc.entries,
		Errors:  sc.errors,
		Final:   sc.state,
		End:     sc.cursor.Pos(),
	}
}

// feed applies one character, twice when the transition asks for reprocessing.
func (sc *Scanner) feed(r rune, pos source.Pos) {
	for {
		t := Step(sc.state, r, sc.opts)
		if t.Code != 0 {
			sc.reportSyntax(t, pos)
		}
		if t.OpenKey {
			sc.key = pos
			sc.hasKey = true
		}
		if t.EntryDone {
			sc.entries++
		}
		sc.state = t.Next
		if !t.Reprocess {
			return
		}
	}
}

func (sc *Scanner) reportSyntax(t Transition, pos source.Pos) {
	sc.errors++
	b := diag.ReportError(sc.reporter(), t.Code, pos, Message(t.Code))
	if t.Related && sc.hasKey {
		b.WithNote(sc.key, relatedKeyNote)
	}
	b.Emit()
}

// Scan is a shortcut for New(file, opts).Run().
func Scan(file *source.File, opts Options) Result {
	return New(file, opts).Run()
}
