package htmlize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"code/htmlize"
)

func TestSpec_Escape_Variants(t *testing.T) {
	t.Parallel()

	variants := []struct {
		name   string
		escape func(string) string
	}{
		{name: "text", escape: htmlize.EscapeText},
		{name: "attribute", escape: htmlize.EscapeAttribute},
		{name: "all quotes", escape: htmlize.EscapeAllQuotes},
	}

	// Inputs on which every variant agrees.
	shared := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "clean", want: "clean"},
		{in: "< >", want: "&lt; &gt;"},
		{in: "&amp;", want: "&amp;amp;"},
	}

	for _, variant := range variants {
		t.Run(variant.name, func(t *testing.T) {
			t.Parallel()

			for _, tt := range shared {
				require.Equal(t, tt.want, variant.escape(tt.in), "input %q", tt.in)
			}
		})
	}
}

func TestSpec_Escape_QuoteHandlingDiffersPerVariant(t *testing.T) {
	t.Parallel()

	in := `He said, "That's mine."`

	require.Equal(t, `He said, "That's mine."`, htmlize.EscapeText(in))
	require.Equal(t, `He said, &quot;That's mine.&quot;`, htmlize.EscapeAttribute(in))
	require.Equal(t, "He said, &quot;That&apos;s mine.&quot;", htmlize.EscapeAllQuotes(in))
}

func TestSpec_Escape_PassesNonASCIIBytesThrough(t *testing.T) {
	t.Parallel()

	in := `Björk & Борис O'Brien <3, "love > hate"`

	require.Equal(t, `Björk &amp; Борис O'Brien &lt;3, "love &gt; hate"`, htmlize.EscapeText(in))
	require.Equal(t, `Björk &amp; Борис O'Brien &lt;3, &quot;love &gt; hate&quot;`, htmlize.EscapeAttribute(in))
	require.Equal(t, "Björk &amp; Борис O&apos;Brien &lt;3, &quot;love &gt; hate&quot;", htmlize.EscapeAllQuotes(in))
}
