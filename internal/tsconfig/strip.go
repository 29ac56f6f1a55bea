package tsconfig

import "strings"

// StripComments removes block (/* ... */) and line (// ...) comments from
// JSON-with-comments text. String literals are scanned, not pattern-matched,
// so comment-like sequences inside strings survive intact. Newlines inside a
// removed block comment are kept so byte offsets reported by Parse still map
// to recognizable lines of the original file.
func StripComments(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		c := text[i]

		switch {
		case c == '"':
			j := skipString(text, i)
			b.WriteString(text[i:j])
			i = j

		case c == '/' && i+1 < len(text) && text[i+1] == '/':
			for i < len(text) && text[i] != '\n' {
				i++
			}

		case c == '/' && i+1 < len(text) && text[i+1] == '*':
			i += 2
			for i < len(text) {
				if text[i] == '*' && i+1 < len(text) && text[i+1] == '/' {
					i += 2
					break
				}
				if text[i] == '\n' {
					b.WriteByte('\n')
				}
				i++
			}

		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String()
}

// StripTrailingCommas removes a comma that is followed, modulo whitespace, by
// a closing brace or bracket. Commas inside string literals are never touched.
func StripTrailingCommas(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	for i := 0; i < len(text); {
		c := text[i]

		switch {
		case c == '"':
			j := skipString(text, i)
			b.WriteString(text[i:j])
			i = j

		case c == ',':
			j := i + 1
			for j < len(text) && isSpace(text[j]) {
				j++
			}
			if j < len(text) && (text[j] == '}' || text[j] == ']') {
				// Drop the comma, keep the whitespace run.
				b.WriteString(text[i+1 : j])
				i = j
			} else {
				b.WriteByte(c)
				i++
			}

		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String()
}

// skipString returns the index just past the string literal starting at
// text[start] (which must be '"'). Backslash escapes are honored. An
// unterminated string runs to end of input; Parse reports the error.
func skipString(text string, start int) int {
	i := start + 1
	for i < len(text) {
		switch text[i] {
		case '\\':
			// A backslash as the final byte has nothing to escape.
			i += 2
			if i > len(text) {
				return len(text)
			}
		case '"':
			return i + 1
		default:
			i++
		}
	}
	return i
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
