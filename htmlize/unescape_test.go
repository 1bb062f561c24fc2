package htmlize_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"code/htmlize"
)

func TestSpec_Unescape_NamedReferences_LongestMatchWins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "almost an entity", in: "&time", want: "&time"},
		{name: "exact without semicolon", in: "&times", want: "×"},
		{name: "exact with semicolon", in: "&times;", want: "×"},
		{name: "entity then ordinary char", in: "&timesa", want: "×a"},
		{name: "shorter entity plus leftover", in: "&timesb", want: "×b"},
		{name: "longer entity wins over prefix", in: "&timesb;", want: "⊠"},
		{name: "longest of the family", in: "&timesbar;", want: "⨱"},
		{name: "entity in the middle", in: " &amp; ", want: " & "},
		{name: "surrounding ampersands", in: "&&amp;&", want: "&&&"},
		{name: "case sensitive cased spellings", in: "AND &amp;&AMP; and", want: "AND && and"},
		{name: "two scalar expansion", in: "x &NotNestedGreaterGreater; y", want: "x ⪢̸ y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, htmlize.Unescape(tt.in))
		})
	}
}

func TestSpec_Unescape_NonEntityPassthrough(t *testing.T) {
	t.Parallel()

	overLongName := "&" + strings.Repeat("a", 70) + ";"

	inputs := []string{
		"",
		"none",
		"&",
		"&;",
		"&unknown;",
		"&#",
		"&#x",
		"&#;",
		"&#xZ;",
		"&#XZ;",
		"&#7a;",
		overLongName,
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, in, htmlize.Unescape(in))
		})
	}
}

func TestSpec_Unescape_NumericReferences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "hex lower x lower digits", in: "&#x7a;", want: "z"},
		{name: "hex lower x upper digits", in: "&#x7A;", want: "z"},
		{name: "hex upper x lower digits", in: "&#X7a;", want: "z"},
		{name: "hex upper x upper digits", in: "&#X7A;", want: "z"},
		{name: "decimal", in: "&#122;", want: "z"},
		{name: "hex beyond ascii", in: "&#x21D2;", want: "⇒"},
		{name: "hex missing semicolon mid text", in: "&#x7Az", want: "zz"},
		{name: "hex missing semicolon at end", in: "&#x7A", want: "z"},
		{name: "decimal missing semicolon mid text", in: "&#122z", want: "zz"},
		{name: "decimal missing semicolon at end", in: "&#122", want: "z"},
		{name: "space without semicolon", in: "&#x20", want: " "},
		{name: "leading zeros", in: "&#00000122;", want: "z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, htmlize.Unescape(tt.in))
		})
	}
}

func TestSpec_Unescape_HexAndDecimalSpellingsAgree(t *testing.T) {
	t.Parallel()

	require.Equal(t, htmlize.Unescape("&#x7A;"), htmlize.Unescape("&#122;"))
	require.Equal(t, "z", htmlize.Unescape("&#x7A;"))
}

func TestSpec_Unescape_NumericCorrections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "null to replacement char", in: "&#0;", want: "�"},
		{name: "surrogate low bound", in: "&#xD800;", want: "�"},
		{name: "surrogate high bound", in: "&#xDFFF;", want: "�"},
		{name: "outside unicode range", in: "&#x110000;", want: "�"},
		{name: "far outside unicode range", in: "&#xFFFFFFFF;", want: "�"},
		{name: "legacy bullet", in: "&#x95;", want: "•"},
		{name: "legacy euro", in: "&#x80;", want: "€"},
		{name: "legacy oe ligature", in: "&#x9C;", want: "œ"},
		{name: "bullet spellings normalize", in: "&#x95;&#149;&#x2022;•", want: "••••"},
		{name: "unmapped c1 gap stays literal", in: "&#x81;", want: "&#x81;"},
		{name: "carriage return stays literal", in: "&#13;", want: "&#13;"},
		{name: "bell control stays literal", in: "&#7;", want: "&#7;"},
		{name: "delete control stays literal", in: "&#x7F;", want: "&#x7F;"},
		{name: "noncharacter block stays literal", in: "&#xFDD0;", want: "&#xFDD0;"},
		{name: "plane end noncharacter stays literal", in: "&#x1FFFE;", want: "&#x1FFFE;"},
		{name: "max code point is a noncharacter", in: "&#x10FFFF;", want: "&#x10FFFF;"},
		{name: "tab is allowed whitespace", in: "&#9;", want: "\t"},
		{name: "uint32 overflow stays literal", in: "&#4294967296;", want: "&#4294967296;"},
		{name: "huge decimal stays literal", in: "&#99999999999999999999;", want: "&#99999999999999999999;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, htmlize.Unescape(tt.in))
		})
	}
}

func TestSpec_Unescape_RoundTripsEscapedText(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"clean",
		"a < b && c > d",
		`He said, "That's <mine>."`,
		"Björk & Борис",
	}

	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, s, htmlize.Unescape(htmlize.EscapeText(s)))
			require.Equal(t, s, htmlize.Unescape(htmlize.EscapeAttribute(s)))
			require.Equal(t, s, htmlize.Unescape(htmlize.EscapeAllQuotes(s)))
		})
	}
}

func TestSpec_UnescapeBytes_MatchesUnescape_AndNeverAliases(t *testing.T) {
	t.Parallel()

	in := []byte("pre &amp; post &#x95; end")
	got := htmlize.UnescapeBytes(in)

	require.Equal(t, htmlize.Unescape(string(in)), string(got))

	for i := range got {
		got[i] = '!'
	}
	require.Equal(t, "pre &amp; post &#x95; end", string(in))
}
