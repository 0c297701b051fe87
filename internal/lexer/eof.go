package lexer

import "stringslint/internal/diag"

type unterminated struct {
	code     diag.Code
	expected string
}

var unterminatedByKind = map[Kind]unterminated{
	AwaitingKeyEnd:       {diag.EOFExpectKeyEnd, "end of key"},
	AwaitingEquals:       {diag.EOFExpectEquals, "'='"},
	AwaitingValueStart:   {diag.EOFExpectValue, "value string"},
	AwaitingValueEnd:     {diag.EOFExpectValueEnd, "end of value"},
	AwaitingSemicolon:    {diag.EOFExpectSemicolon, "';'"},
	AwaitingCommentStart: {diag.EOFExpectCommentOpen, "comment start"},
	AwaitingCommentEnd:   {diag.EOFExpectCommentEnd, "end of comment"},
	AwaitingCommentClose: {diag.EOFExpectCommentEnd, "end of comment"},
}

// EndOfFileMessage returns the diagnostic for a scan that stopped in s,
// or ok=false when s is a fine place for the input to end.
func EndOfFileMessage(s State) (code diag.Code, msg string, ok bool) {
	u, found := unterminatedByKind[s.Kind]
	if !found {
		// AwaitingKeyStart, and AwaitingNextLine: a dropped tail is harmless
		return 0, "", false
	}
	return u.code, "end of file reached when expecting " + u.expected, true
}

// finish reports at most one unterminated construct at the end position.
func (sc *Scanner) finish() {
	code, msg, ok := EndOfFileMessage(sc.state)
	if !ok {
		return
	}
	sc.errors++
	b := diag.ReportError(sc.reporter(), code, sc.cursor.Pos(), msg)
	if sc.hasKey {
		b.WithNote(sc.key, relatedKeyNote)
	}
	b.Emit()
}
