package htmlize_test

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"code/htmlize"
)

// The fixture pair lists every defined spelling, one per line, against the
// text it must expand to.
func TestSpec_Golden_AllEntities_Expanded(t *testing.T) {
	t.Parallel()

	source := readFixture(t, "all_entities_source.txt")
	want := readFixture(t, "all_entities_expanded.txt")

	got := htmlize.Unescape(source)

	require.True(t, utf8.ValidString(got))
	require.Equal(t, want, got)
}
