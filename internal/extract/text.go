package extract

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

var errInvalidUTF8 = errors.New("document is not valid UTF-8")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExtractPlainText decodes body as UTF-8. There is no fallback encoding.
func ExtractPlainText(body []byte) (string, error) {
	body = bytes.TrimPrefix(body, utf8BOM)
	if !utf8.Valid(body) {
		return "", errInvalidUTF8
	}
	return string(body), nil
}
