package htmlize_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	xhtml "golang.org/x/net/html"

	"code/htmlize"
)

// x/net/html is an independent implementation of the same reference
// algorithm; it must be able to undo any output of the escape variants.
func TestSpec_Escape_RoundTripsThroughNetHTML(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"clean",
		"a < b && c > d",
		`Björk & Борис O'Brien <3, "love > hate"`,
		`attr="value" with 'quotes'`,
	}

	for _, s := range inputs {
		require.Equal(t, s, xhtml.UnescapeString(htmlize.EscapeText(s)), "text variant, input %q", s)
		require.Equal(t, s, xhtml.UnescapeString(htmlize.EscapeAttribute(s)), "attribute variant, input %q", s)
		require.Equal(t, s, xhtml.UnescapeString(htmlize.EscapeAllQuotes(s)), "all-quotes variant, input %q", s)
	}
}

// On well-terminated references both implementations follow the same WHATWG
// rules and must agree. (Malformed and control-range references are excluded:
// there this library deliberately keeps the literal text.)
func TestSpec_Unescape_AgreesWithNetHTML_OnTerminatedReferences(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"&amp;",
		"&AMP;",
		"&lt;x&gt;",
		"&times;",
		"&timesb;",
		"&timesbar;",
		"&nbsp;",
		"&fjlig;",
		"&NotNestedGreaterGreater;",
		"&CounterClockwiseContourIntegral;",
		"&#122;",
		"&#x21D2;",
		"&#0;",
		"&#x95;",
	}

	for _, s := range inputs {
		require.Equal(t, xhtml.UnescapeString(s), htmlize.Unescape(s), "input %q", s)
	}
}
