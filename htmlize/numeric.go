package htmlize

import (
	"strconv"
	"unicode"
	"unicode/utf8"

	"code/internal/bytescan"
)

// matchNumeric consumes a numeric reference ("&#122;" or "&#x7A;") after the
// leading ampersand and returns the bytes to emit. A reference with no
// digits, a value that does not fit in 32 bits, or a code point the
// correction table refuses comes back as the consumed literal, unmodified.
func matchNumeric(cur *bytescan.Cursor) []byte {
	cur.MustNext('#')

	literal := []byte{'&', '#'}

	next, ok := cur.Peek()
	if !ok {
		return literal
	}

	base := 10
	if next == 'x' || next == 'X' {
		base = 16
		cur.MustNext(next)
		literal = append(literal, next)
	}

	var digits []byte
	if base == 16 {
		digits = cur.TakeWhile(isHexDigit)
	} else {
		digits = cur.TakeWhile(isDigit)
	}
	literal = append(literal, digits...)

	// missing-semicolon-after-character-reference is tolerated: without the
	// semicolon the reference simply ends at the last digit.
	if cur.Accept(';') {
		literal = append(literal, ';')
	}

	if len(digits) == 0 {
		return literal
	}

	value, err := strconv.ParseUint(string(digits), base, 32)
	if err != nil {
		return literal
	}

	if corrected, ok := correctNumeric(uint32(value)); ok {
		return utf8.AppendRune(nil, corrected)
	}

	return literal
}

// windows1252 maps the C1 range 0x80..0x9F to the characters legacy documents
// meant by those numeric references. The gaps (0x81, 0x8D, 0x8F, 0x90, 0x9D)
// have no mapping and stay uncorrected.
// https://html.spec.whatwg.org/multipage/parsing.html#numeric-character-reference-end-state
var windows1252 = map[uint32]rune{
	0x80: '€', // EURO SIGN
	0x82: '‚', // SINGLE LOW-9 QUOTATION MARK
	0x83: 'ƒ', // LATIN SMALL LETTER F WITH HOOK
	0x84: '„', // DOUBLE LOW-9 QUOTATION MARK
	0x85: '…', // HORIZONTAL ELLIPSIS
	0x86: '†', // DAGGER
	0x87: '‡', // DOUBLE DAGGER
	0x88: 'ˆ', // MODIFIER LETTER CIRCUMFLEX ACCENT
	0x89: '‰', // PER MILLE SIGN
	0x8A: 'Š', // LATIN CAPITAL LETTER S WITH CARON
	0x8B: '‹', // SINGLE LEFT-POINTING ANGLE QUOTATION MARK
	0x8C: 'Œ', // LATIN CAPITAL LIGATURE OE
	0x8E: 'Ž', // LATIN CAPITAL LETTER Z WITH CARON
	0x91: '‘', // LEFT SINGLE QUOTATION MARK
	0x92: '’', // RIGHT SINGLE QUOTATION MARK
	0x93: '“', // LEFT DOUBLE QUOTATION MARK
	0x94: '”', // RIGHT DOUBLE QUOTATION MARK
	0x95: '•', // BULLET
	0x96: '–', // EN DASH
	0x97: '—', // EM DASH
	0x98: '˜', // SMALL TILDE
	0x99: '™', // TRADE MARK SIGN
	0x9A: 'š', // LATIN SMALL LETTER S WITH CARON
	0x9B: '›', // SINGLE RIGHT-POINTING ANGLE QUOTATION MARK
	0x9C: 'œ', // LATIN SMALL LIGATURE OE
	0x9E: 'ž', // LATIN SMALL LETTER Z WITH CARON
	0x9F: 'Ÿ', // LATIN CAPITAL LETTER Y WITH DIAERESIS
}

// correctNumeric applies the numeric-character-reference-end corrections to a
// parsed code point. The second return is false when no correction applies
// and the reference falls back to its literal text.
//
// Divergence kept for compatibility: the written algorithm maps 0x0D to LINE
// FEED and emits unmapped C0/C1 controls as-is; here both stay uncorrected
// and the literal reference survives in the output.
func correctNumeric(value uint32) (rune, bool) {
	switch {
	case value == 0:
		return ReplacementChar, true
	case value > unicode.MaxRune:
		return ReplacementChar, true
	case isSurrogate(value):
		return ReplacementChar, true
	case isNoncharacter(value):
		return 0, false
	}

	if mapped, ok := windows1252[value]; ok {
		return mapped, true
	}

	switch {
	case value == 0x0D:
		return 0, false
	case isASCIIWhitespace(value):
		return rune(value), true
	case isControl(value):
		return 0, false
	}

	return rune(value), true
}

// https://infra.spec.whatwg.org/#surrogate
func isSurrogate(value uint32) bool {
	return 0xD800 <= value && value <= 0xDFFF
}

// https://infra.spec.whatwg.org/#noncharacter
func isNoncharacter(value uint32) bool {
	if 0xFDD0 <= value && value <= 0xFDEF {
		return true
	}

	// The last two code points of every plane.
	return value <= unicode.MaxRune && value&0xFFFE == 0xFFFE
}

// https://infra.spec.whatwg.org/#control
func isControl(value uint32) bool {
	return value <= 0x1F || (0x7F <= value && value <= 0x9F)
}

// https://infra.spec.whatwg.org/#ascii-whitespace
func isASCIIWhitespace(value uint32) bool {
	switch value {
	case 0x09, 0x0A, 0x0C, 0x0D, 0x20:
		return true
	}

	return false
}
