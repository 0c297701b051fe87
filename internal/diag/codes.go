package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Синтаксические: восстановление до следующей строки
	StrInfo             Code = 1000
	StrExpectKey        Code = 1001
	StrExpectEquals     Code = 1002
	StrExpectValue      Code = 1003
	StrExpectSemicolon  Code = 1004
	StrBadCommentOpener Code = 1005

	// Незавершённые конструкции в конце файла
	EOFInfo              Code = 1100
	EOFExpectKeyEnd      Code = 1101
	EOFExpectEquals      Code = 1102
	EOFExpectValue       Code = 1103
	EOFExpectValueEnd    Code = 1104
	EOFExpectSemicolon   Code = 1105
	EOFExpectCommentOpen Code = 1106
	EOFExpectCommentEnd  Code = 1107

	// IO
	IOInfo           Code = 4000
	IOFileUnreadable Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:          "Unknown error",
	StrInfo:              "Syntax information",
	StrExpectKey:         "Expected key",
	StrExpectEquals:      "Expected '='",
	StrExpectValue:       "Expected value string",
	StrExpectSemicolon:   "Expected ';'",
	StrBadCommentOpener:  "Malformed comment opener",
	EOFInfo:              "End of file information",
	EOFExpectKeyEnd:      "Unterminated key",
	EOFExpectEquals:      "Missing '=' before end of file",
	EOFExpectValue:       "Missing value before end of file",
	EOFExpectValueEnd:    "Unterminated value",
	EOFExpectSemicolon:   "Missing ';' before end of file",
	EOFExpectCommentOpen: "Incomplete comment opener",
	EOFExpectCommentEnd:  "Unterminated block comment",
	IOInfo:               "IO information",
	IOFileUnreadable:     "File unreadable",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 1100:
		return fmt.Sprintf("STR%04d", ic)
	case ic >= 1100 && ic < 2000:
		return fmt.Sprintf("EOF%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
