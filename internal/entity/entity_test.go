package entity

import "testing"

func TestExpansion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		spelling string
		want     string
		wantOK   bool
	}{
		{name: "with semicolon", spelling: "&amp;", want: "&", wantOK: true},
		{name: "without semicolon", spelling: "&amp", want: "&", wantOK: true},
		{name: "cased spelling is distinct", spelling: "&AMP;", want: "&", wantOK: true},
		{name: "semicolon form only", spelling: "&timesb", wantOK: false},
		{name: "prefix family member", spelling: "&timesbar;", want: "⨱", wantOK: true},
		{name: "two scalar expansion", spelling: "&NotNestedGreaterGreater;", want: "⪢̸", wantOK: true},
		{name: "unknown name", spelling: "&unknown;", wantOK: false},
		{name: "missing ampersand", spelling: "amp;", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Expansion(tt.spelling)
			if ok != tt.wantOK {
				t.Fatalf("Expansion(%q) ok = %v; want %v", tt.spelling, ok, tt.wantOK)
			}

			if ok && got != tt.want {
				t.Fatalf("Expansion(%q) = %q; want %q", tt.spelling, got, tt.want)
			}
		})
	}
}

func TestLengthBoundsMatchTable(t *testing.T) {
	t.Parallel()

	shortest := MaxLength
	longest := MinLength

	for spelling := range expansions {
		if spelling[0] != '&' {
			t.Fatalf("spelling %q does not start with an ampersand", spelling)
		}

		if len(spelling) < shortest {
			shortest = len(spelling)
		}

		if len(spelling) > longest {
			longest = len(spelling)
		}
	}

	if shortest != MinLength {
		t.Fatalf("shortest spelling is %d bytes; MinLength = %d", shortest, MinLength)
	}

	if longest != MaxLength {
		t.Fatalf("longest spelling is %d bytes; MaxLength = %d", longest, MaxLength)
	}
}

func TestCountMatchesDataSet(t *testing.T) {
	t.Parallel()

	// The WHATWG named reference set is frozen at 2231 spellings.
	if Count() != 2231 {
		t.Fatalf("Count() = %d; want 2231", Count())
	}
}
