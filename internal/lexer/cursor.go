package lexer

import (
	"fmt"
	"unicode/utf8"

	"stringslint/internal/source"

	"fortio.org/safecast"
)

// Cursor walks a file rune by rune and keeps the line/column of the next rune.
type Cursor struct {
	File *source.File
	Off  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
	Line  uint32
	Col   uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Limit: limit,
		Line:  1,
		Col:   1,
	}
}

// EOF проверяет, достигнут ли конец файла
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// Peek возвращает текущую руну и её размер в байтах, не сдвигая курсор.
// На EOF возвращает utf8.RuneError и 0.
func (c *Cursor) Peek() (rune, int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	b := c.File.Content[c.Off]
	if b < utf8.RuneSelf { // fast-path ASCII
		return rune(b), 1
	}
	return utf8.DecodeRune(c.File.Content[c.Off:c.Limit])
}

// Bump перемещает курсор на одну руну вперед и возвращает её.
// '\n' moves to column 1 of the next line; every other rune advances one column.
func (c *Cursor) Bump() rune {
	r, sz := c.Peek()
	if sz == 0 {
		return r
	}
	usz, err := safecast.Conv[uint32](sz)
	if err != nil {
		panic(fmt.Errorf("bump overflow: %w", err))
	}
	c.Off += usz
	if r == '\n' {
		c.Line++
		c.Col = 1
	} else {
		c.Col++
	}
	return r
}

// Pos returns the position of the next rune (or of the end of input).
func (c *Cursor) Pos() source.Pos {
	return source.Pos{
		File:    c.File.ID,
		Off:     c.Off,
		LineCol: source.LineCol{Line: c.Line, Col: c.Col},
	}
}
