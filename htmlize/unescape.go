// Package htmlize converts between raw text and HTML-safe text: escaping
// reserved characters for safe embedding, and expanding named and numeric
// character references following the WHATWG character reference algorithm.
//
// Unescaping is total: malformed or unknown references are never dropped or
// reported, their source text reappears verbatim in the output.
package htmlize

import (
	"strings"

	"code/internal/bytescan"
)

// ReplacementChar is the Unicode replacement character (U+FFFD). Certain
// invalid numeric references expand to it.
const ReplacementChar = '�'

// Unescape expands all valid character references in s. Bytes that are not
// part of a reference pass through unchanged, as does the full source text of
// any reference that cannot be resolved.
func Unescape(s string) string {
	if strings.IndexByte(s, '&') < 0 {
		return s
	}

	return string(unescape([]byte(s)))
}

// UnescapeBytes is Unescape for byte slices. The result never aliases b.
func UnescapeBytes(b []byte) []byte {
	return unescape(b)
}

func unescape(b []byte) []byte {
	out := make([]byte, 0, len(b))
	cur := bytescan.New(b)

	for {
		c, ok := cur.Next()
		if !ok {
			return out
		}

		if c == '&' {
			out = append(out, matchReference(cur)...)

			continue
		}

		out = append(out, c)
	}
}

// matchReference consumes one reference after its leading ampersand and
// returns the bytes to emit: an expansion, or the consumed literal as
// fallback.
func matchReference(cur *bytescan.Cursor) []byte {
	if c, ok := cur.Peek(); ok && c == '#' {
		return matchNumeric(cur)
	}

	return matchNamed(cur)
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func isAlphanumeric(c byte) bool {
	return isDigit(c) || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
