package codegen

import (
	"strings"
	"unicode/utf8"

	"github.com/esgen/esgen/internal/helpers"
)

const hexChars = "0123456789ABCDEF"

func canPrintWithoutEscape(c rune, quote byte) bool {
	if c <= 0x7E {
		return c >= 0x20 && c != '\\' && c != rune(quote)
	}
	return c != '\u2028' && c != '\u2029' && c != '\uFEFF' && !helpers.IsSurrogate(c)
}

// EscapeStringLiteral returns the shortest quoted JavaScript string literal for
// the given WTF-8 text. The quote character that appears less often in the
// text is used, with ties going to double quotes.
func EscapeStringLiteral(text string) string {
	quote := byte('"')
	if strings.Count(text, "\"") > strings.Count(text, "'") {
		quote = '\''
	}

	sb := strings.Builder{}
	sb.Grow(len(text) + 2)
	sb.WriteByte(quote)

	i := 0
	n := len(text)
	for i < n {
		c, width := helpers.DecodeWTF8Rune(text[i:])

		// Fast path: a run of characters that don't need escaping
		if canPrintWithoutEscape(c, quote) && !(c == utf8.RuneError && width <= 1) {
			start := i
			i += width
			for i < n {
				c, width = helpers.DecodeWTF8Rune(text[i:])
				if !canPrintWithoutEscape(c, quote) || (c == utf8.RuneError && width <= 1) {
					break
				}
				i += width
			}
			sb.WriteString(text[start:i])
			continue
		}

		switch c {
		case '\b':
			sb.WriteString("\\b")
		case '\t':
			sb.WriteString("\\t")
		case '\n':
			sb.WriteString("\\n")
		case '\v':
			sb.WriteString("\\v")
		case '\f':
			sb.WriteString("\\f")
		case '\r':
			sb.WriteString("\\r")
		case '\\':
			sb.WriteString("\\\\")

		case 0:
			// "\0" followed by a digit would be a legacy octal escape
			if i+1 < n && text[i+1] >= '0' && text[i+1] <= '9' {
				sb.WriteString("\\x00")
			} else {
				sb.WriteString("\\0")
			}

		default:
			switch {
			case c == rune(quote):
				sb.WriteByte('\\')
				sb.WriteByte(quote)
			case c < 0x20:
				sb.WriteString("\\x")
				sb.WriteByte(hexChars[c>>4])
				sb.WriteByte(hexChars[c&15])
			case c == utf8.RuneError:
				// Bytes that aren't WTF-8 can't be represented
				sb.WriteString("\\uFFFD")
			default:
				sb.WriteString("\\u")
				sb.WriteByte(hexChars[c>>12])
				sb.WriteByte(hexChars[(c>>8)&15])
				sb.WriteByte(hexChars[(c>>4)&15])
				sb.WriteByte(hexChars[c&15])
			}
		}

		if width < 1 {
			width = 1
		}
		i += width
	}

	sb.WriteByte(quote)
	return sb.String()
}
