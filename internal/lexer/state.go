package lexer

import "strings"

// Kind names where in the entry grammar the scanner stands.
type Kind uint8

const (
	AwaitingKeyStart Kind = iota
	AwaitingKeyEnd
	AwaitingEquals
	AwaitingValueStart
	AwaitingValueEnd
	AwaitingSemicolon
	// AwaitingCommentStart: seen '/', waiting for '/' or '*'.
	AwaitingCommentStart
	// AwaitingCommentEnd: inside /* */, waiting for '*'.
	AwaitingCommentEnd
	// AwaitingCommentClose: seen the closing '*', waiting for '/'.
	AwaitingCommentClose
	// AwaitingNextLine: rest of the line is discarded (line comment or error recovery).
	AwaitingNextLine
)

var kindNames = [...]string{
	AwaitingKeyStart:     "AwaitingKeyStart",
	AwaitingKeyEnd:       "AwaitingKeyEnd",
	AwaitingEquals:       "AwaitingEquals",
	AwaitingValueStart:   "AwaitingValueStart",
	AwaitingValueEnd:     "AwaitingValueEnd",
	AwaitingSemicolon:    "AwaitingSemicolon",
	AwaitingCommentStart: "AwaitingCommentStart",
	AwaitingCommentEnd:   "AwaitingCommentEnd",
	AwaitingCommentClose: "AwaitingCommentClose",
	AwaitingNextLine:     "AwaitingNextLine",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// suspends reports whether states of this kind carry a continuation.
func (k Kind) suspends() bool {
	return k >= AwaitingCommentStart
}

// State is one parse state. Comment and skip states own the state to resume
// once they complete; States are immutable values, so a continuation captured
// by one transition can never be overwritten by a later one.
type State struct {
	Kind   Kind
	resume *State
}

// Await returns a plain grammar state. It panics for comment/skip kinds,
// which must be built with their continuation.
func Await(k Kind) State {
	if k.suspends() {
		panic("lexer: " + k.String() + " needs a continuation")
	}
	return State{Kind: k}
}

// Suspend builds a comment or skip state that resumes into next.
func Suspend(k Kind, next State) State {
	if !k.suspends() {
		panic("lexer: " + k.String() + " takes no continuation")
	}
	return State{Kind: k, resume: &next}
}

// Resume returns the continuation of a comment/skip state.
func (s State) Resume() (State, bool) {
	if s.resume == nil {
		return State{}, false
	}
	return *s.resume, true
}

// with keeps s's continuation but switches the kind, e.g. CommentEnd -> CommentClose.
func (s State) with(k Kind) State {
	return State{Kind: k, resume: s.resume}
}

// Equal compares kinds and continuations.
func (s State) Equal(other State) bool {
	if s.Kind != other.Kind {
		return false
	}
	a, okA := s.Resume()
	b, okB := other.Resume()
	if okA != okB {
		return false
	}
	return !okA || a.Equal(b)
}

// String renders the state with its continuation, e.g. AwaitingCommentEnd(AwaitingEquals).
func (s State) String() string {
	var b strings.Builder
	b.WriteString(s.Kind.String())
	depth := 0
	for next, ok := s.Resume(); ok; next, ok = next.Resume() {
		b.WriteByte('(')
		b.WriteString(next.Kind.String())
		depth++
	}
	b.WriteString(strings.Repeat(")", depth))
	return b.String()
}

// pairOpen reports whether an entry has been opened and not yet closed,
// looking through comment continuations.
func pairOpen(s State) bool {
	switch s.Kind {
	case AwaitingEquals, AwaitingValueStart, AwaitingValueEnd, AwaitingSemicolon, AwaitingKeyEnd:
		return true
	}
	if next, ok := s.Resume(); ok {
		return pairOpen(next)
	}
	return false
}
