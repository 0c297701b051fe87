package lexer

import (
	"unicode"

	"stringslint/internal/diag"
)

// Transition is the outcome of feeding one character to a State.
type Transition struct {
	Next State
	// Code is non-zero when the character is a syntax error.
	Code diag.Code
	// Related asks for a note pointing at the open entry's key.
	Related bool
	// Reprocess feeds the same character again against Next.
	Reprocess bool
	// OpenKey marks the character as the opening quote of a key.
	OpenKey bool
	// EntryDone marks the ';' that completes an entry.
	EntryDone bool
}

var syntaxMessages = map[diag.Code]string{
	diag.StrExpectKey:        "expected key",
	diag.StrExpectEquals:     "expected '='",
	diag.StrExpectValue:      "expected value string",
	diag.StrExpectSemicolon:  "expected ';'",
	diag.StrBadCommentOpener: "expected comment start",
}

// Message returns the diagnostic text for a syntax error code.
func Message(code diag.Code) string {
	if msg, ok := syntaxMessages[code]; ok {
		return msg
	}
	return code.Title()
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r)
}

func stay(s State) Transition { return Transition{Next: s} }

func goTo(k Kind) Transition { return Transition{Next: Await(k)} }

// fail reports code and drops the rest of the line.
func fail(s State, code diag.Code) Transition {
	return Transition{
		Next:    Suspend(AwaitingNextLine, Await(AwaitingKeyStart)),
		Code:    code,
		Related: pairOpen(s),
	}
}

// Step is the transition function of the scanner: one state, one character.
// It has no side effects; the Scanner applies the returned Transition.
func Step(s State, r rune, opts Options) Transition {
	switch s.Kind {
	case AwaitingNextLine:
		if r == '\n' {
			next, _ := s.Resume()
			return Transition{Next: next}
		}
		return stay(s)

	case AwaitingKeyStart:
		switch {
		case r == '"':
			return Transition{Next: Await(AwaitingKeyEnd), OpenKey: true}
		case r == '/':
			return Transition{Next: Suspend(AwaitingCommentStart, s)}
		case isSpace(r):
			return stay(s)
		}
		return fail(s, diag.StrExpectKey)

	case AwaitingKeyEnd:
		if r == '"' {
			return goTo(AwaitingEquals)
		}
		return stay(s)

	case AwaitingEquals:
		switch {
		case r == '=':
			return goTo(AwaitingValueStart)
		case r == '/':
			return Transition{Next: Suspend(AwaitingCommentStart, s)}
		case isSpace(r):
			return stay(s)
		}
		return fail(s, diag.StrExpectEquals)

	case AwaitingValueStart:
		switch {
		case r == '"':
			return goTo(AwaitingValueEnd)
		case r == '/':
			return Transition{Next: Suspend(AwaitingCommentStart, s)}
		case isSpace(r):
			return stay(s)
		}
		return fail(s, diag.StrExpectValue)

	case AwaitingValueEnd:
		if r == '"' {
			return goTo(AwaitingSemicolon)
		}
		return stay(s)

	case AwaitingSemicolon:
		switch {
		case r == ';':
			return Transition{Next: Await(AwaitingKeyStart), EntryDone: true}
		case r == '/':
			return Transition{Next: Suspend(AwaitingCommentStart, s)}
		case isSpace(r):
			return stay(s)
		}
		// the character may open the next key: report and look at it again
		return Transition{
			Next:      Await(AwaitingKeyStart),
			Code:      diag.StrExpectSemicolon,
			Related:   true,
			Reprocess: true,
		}

	case AwaitingCommentStart:
		next, _ := s.Resume()
		switch r {
		case '/':
			return Transition{Next: Suspend(AwaitingNextLine, next)}
		case '*':
			return Transition{Next: s.with(AwaitingCommentEnd)}
		}
		if !opts.StrictComments {
			// "/x" is absorbed silently, x included
			return Transition{Next: next}
		}
		t := fail(next, diag.StrBadCommentOpener)
		if r == '\n' {
			t.Next = Await(AwaitingKeyStart)
		}
		return t

	case AwaitingCommentEnd:
		if r == '*' {
			return Transition{Next: s.with(AwaitingCommentClose)}
		}
		return stay(s)

	case AwaitingCommentClose:
		switch {
		case r == '/':
			next, _ := s.Resume()
			return Transition{Next: next}
		case r == '*', isSpace(r):
			return stay(s)
		}
		return Transition{Next: s.with(AwaitingCommentEnd)}
	}
	return stay(s)
}
