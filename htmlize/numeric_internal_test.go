package htmlize

import "testing"

func TestCorrectNumeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		value  uint32
		want   rune
		wantOK bool
	}{
		{name: "null", value: 0x00, want: ReplacementChar, wantOK: true},
		{name: "outside unicode range", value: 0x110000, want: ReplacementChar, wantOK: true},
		{name: "max uint32", value: 0xFFFFFFFF, want: ReplacementChar, wantOK: true},
		{name: "surrogate low bound", value: 0xD800, want: ReplacementChar, wantOK: true},
		{name: "surrogate high bound", value: 0xDFFF, want: ReplacementChar, wantOK: true},
		{name: "before surrogates", value: 0xD7FF, want: '퟿', wantOK: true},
		{name: "noncharacter arabic block start", value: 0xFDD0, wantOK: false},
		{name: "noncharacter arabic block end", value: 0xFDEF, wantOK: false},
		{name: "noncharacter bmp end", value: 0xFFFE, wantOK: false},
		{name: "noncharacter plane 1 end", value: 0x1FFFE, wantOK: false},
		{name: "noncharacter last code point", value: 0x10FFFF, wantOK: false},
		{name: "legacy euro", value: 0x80, want: '€', wantOK: true},
		{name: "legacy left single quote", value: 0x91, want: '‘', wantOK: true},
		{name: "legacy y diaeresis", value: 0x9F, want: 'Ÿ', wantOK: true},
		{name: "unmapped c1 gap", value: 0x81, wantOK: false},
		{name: "unmapped c1 gap high", value: 0x9D, wantOK: false},
		{name: "carriage return uncorrected", value: 0x0D, wantOK: false},
		{name: "tab", value: 0x09, want: '\t', wantOK: true},
		{name: "line feed", value: 0x0A, want: '\n', wantOK: true},
		{name: "form feed", value: 0x0C, want: '\f', wantOK: true},
		{name: "space", value: 0x20, want: ' ', wantOK: true},
		{name: "bell control", value: 0x07, wantOK: false},
		{name: "delete control", value: 0x7F, wantOK: false},
		{name: "ascii letter", value: 'z', want: 'z', wantOK: true},
		{name: "astral script letter", value: 0x1D49C, want: '𝒜', wantOK: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := correctNumeric(tt.value)
			if ok != tt.wantOK {
				t.Fatalf("correctNumeric(%#x) ok = %v; want %v", tt.value, ok, tt.wantOK)
			}

			if tt.wantOK && got != tt.want {
				t.Fatalf("correctNumeric(%#x) = %q; want %q", tt.value, got, tt.want)
			}
		})
	}
}
