package htmlize_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"code/htmlize"
)

// The entity table is shared, read-only state; decoders must be safe to call
// from many goroutines with no extra synchronization.
func TestSpec_ConcurrentCallers_ShareEntityTable(t *testing.T) {
	t.Parallel()

	const (
		workers    = 8
		iterations = 500
	)

	cases := []struct {
		in   string
		want string
	}{
		{in: "AND &amp;&AMP; and", want: "AND && and"},
		{in: "&#x95;&#149;&#x2022;•", want: "••••"},
		{in: "&timesbar;", want: "⨱"},
		{in: "plain text with no references", want: "plain text with no references"},
	}

	var group errgroup.Group
	for range workers {
		group.Go(func() error {
			for range iterations {
				for _, tt := range cases {
					if got := htmlize.Unescape(tt.in); got != tt.want {
						return fmt.Errorf("Unescape(%q) = %q, want %q", tt.in, got, tt.want)
					}

					escaped := htmlize.EscapeText(tt.want)
					if got := htmlize.Unescape(escaped); got != tt.want {
						return fmt.Errorf("Unescape(EscapeText(%q)) = %q", tt.want, got)
					}
				}
			}

			return nil
		})
	}

	require.NoError(t, group.Wait())
}
