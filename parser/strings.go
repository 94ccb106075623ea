package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// decodeString decodes a raw STRING token, quotes included, into its logical
// value. It is the inverse of the formatter's escaping routine: literal
// whitespace inside the quotes is preserved verbatim, and Unicode letters
// need no escaping.
//
// Supported escapes: \" \\ \$ \` the mnemonics \a \b \v \f \e \t \n \r \0,
// and the long form \u{hex}. Any other escaped character stands for itself.
func decodeString(raw string) (string, error) {
	if len(raw) < 2 || raw[0] != '"' || raw[len(raw)-1] != '"' {
		return "", fmt.Errorf("unterminated string")
	}
	body := raw[1 : len(raw)-1]

	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}

	var buf strings.Builder
	buf.Grow(len(body))

	for i := 0; i < len(body); {
		ch := body[i]
		if ch != '\\' {
			buf.WriteByte(ch)
			i++
			continue
		}
		if i+1 >= len(body) {
			// A trailing backslash means the closing quote was escaped.
			return "", fmt.Errorf("unterminated string")
		}

		esc := body[i+1]
		i += 2
		switch esc {
		case 'a':
			buf.WriteByte(0x07)
		case 'b':
			buf.WriteByte(0x08)
		case 'v':
			buf.WriteByte(0x0b)
		case 'f':
			buf.WriteByte(0x0c)
		case 'e':
			buf.WriteByte(0x1b)
		case 't':
			buf.WriteByte('\t')
		case 'n':
			buf.WriteByte('\n')
		case 'r':
			buf.WriteByte('\r')
		case '0':
			buf.WriteByte(0x00)
		case 'u':
			r, width, err := decodeUnicodeEscape(body[i:])
			if err != nil {
				return "", err
			}
			buf.WriteRune(r)
			i += width
		default:
			// \" \\ \$ \` and any other escaped character stand for
			// themselves.
			buf.WriteByte(esc)
		}
	}

	return buf.String(), nil
}

// decodeUnicodeEscape decodes the "{hex}" tail of a \u{hex} escape.
// Returns the rune and the number of bytes consumed.
func decodeUnicodeEscape(s string) (rune, int, error) {
	if len(s) == 0 || s[0] != '{' {
		return 0, 0, fmt.Errorf(`invalid unicode escape: expected "{"`)
	}
	end := strings.IndexByte(s, '}')
	if end < 0 {
		return 0, 0, fmt.Errorf(`invalid unicode escape: missing "}"`)
	}

	n, err := strconv.ParseUint(s[1:end], 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid unicode escape: %v", err)
	}
	r := rune(n)
	if !utf8.ValidRune(r) {
		return 0, 0, fmt.Errorf("invalid unicode escape: U+%X is not a valid rune", n)
	}

	return r, end + 1, nil
}
