package formatter

import (
	"fmt"
	"strings"
	"unicode"
)

// Escape wraps s in double quotes, escaping the characters the grammar
// cannot carry verbatim. This routine is the single escaping point for all
// quoted output (narration, payee, descriptions, metadata values, option,
// plugin and custom text); bare tokens never go through it.
//
// Rules: '"' and '\' get backslash escapes, as do '$' and '`'. The plain
// space character is preserved literally. Control characters use the short
// mnemonics \a \b \v \f \e \t \n \r; any other character in a Unicode
// control, format or separator category uses the long form \u{hex}.
// Everything else, multi-byte Unicode letters included, passes through
// unescaped.
func Escape(s string) string {
	var buf strings.Builder
	buf.Grow(len(s) + 2)
	buf.WriteByte('"')

	for _, c := range s {
		switch {
		case c == '"':
			buf.WriteString(`\"`)
		case c == '\\':
			buf.WriteString(`\\`)
		case c == ' ':
			// kept literal even though it is a separator
			buf.WriteByte(' ')
		case c == '$':
			buf.WriteString(`\$`)
		case c == '`':
			buf.WriteString("\\`")
		case unicode.In(c, unicode.C, unicode.Z):
			buf.WriteString(escapeCharacter(c))
		default:
			buf.WriteRune(c)
		}
	}

	buf.WriteByte('"')
	return buf.String()
}

// escapeCharacter renders one control/format/separator character.
func escapeCharacter(c rune) string {
	switch c {
	case 0x07:
		return `\a`
	case 0x08:
		return `\b`
	case 0x0b:
		return `\v`
	case 0x0c:
		return `\f`
	case 0x1b:
		return `\e`
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	default:
		return fmt.Sprintf(`\u{%x}`, c)
	}
}
