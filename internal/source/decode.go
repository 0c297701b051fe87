package source

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

var errInvalidUTF8 = errors.New("content is not valid UTF-8")

// decodeText turns raw file bytes into UTF-8 text.
// A UTF-8 BOM is dropped, UTF-16 content (detected by its BOM) is transcoded.
// Anything else must already be valid UTF-8.
func decodeText(raw []byte) ([]byte, FileFlags, error) {
	var endianness unicode.Endianness
	switch {
	case bytes.HasPrefix(raw, bomUTF16LE):
		endianness = unicode.LittleEndian
	case bytes.HasPrefix(raw, bomUTF16BE):
		endianness = unicode.BigEndian
	default:
		content, hadBOM := removeBOM(raw)
		if !utf8.Valid(content) {
			return nil, 0, errInvalidUTF8
		}
		if hadBOM {
			return content, FileHadBOM, nil
		}
		return content, 0, nil
	}

	dec := unicode.UTF16(endianness, unicode.ExpectBOM).NewDecoder()
	content, err := dec.Bytes(raw)
	if err != nil {
		return nil, 0, err
	}
	if !utf8.Valid(content) {
		return nil, 0, errInvalidUTF8
	}
	return content, FileHadBOM | FileDecodedUTF16, nil
}
