package htmlize

import (
	"fmt"
	"strings"
)

// EscapeText escapes text-node content: & < and > become named references.
// Escaping is not idempotent; already-escaped text gets its ampersands
// escaped again. Quotes are left alone, use EscapeAttribute for attribute
// values.
func EscapeText(s string) string {
	return escape(s, "&<>")
}

// EscapeAttribute escapes s for a double-quoted attribute value: the text set
// plus double quotes.
func EscapeAttribute(s string) string {
	return escape(s, `&<>"`)
}

// EscapeAllQuotes escapes the attribute set plus single quotes.
func EscapeAllQuotes(s string) string {
	return escape(s, `&<>"'`)
}

// escape substitutes every byte of s found in escapable with its named
// reference in a single forward pass.
func escape(s string, escapable string) string {
	if !strings.ContainsAny(s, escapable) {
		return s
	}

	var builder strings.Builder
	builder.Grow(len(s) + len(s)/2)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(escapable, c) < 0 {
			builder.WriteByte(c)

			continue
		}

		builder.WriteString(referenceFor(c))
	}

	return builder.String()
}

func referenceFor(c byte) string {
	switch c {
	case '&':
		return "&amp;"
	case '<':
		return "&lt;"
	case '>':
		return "&gt;"
	case '"':
		return "&quot;"
	case '\'':
		return "&apos;"
	}

	panic(fmt.Sprintf("htmlize: no reference for byte %q", c))
}
