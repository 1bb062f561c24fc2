package htmlize

import (
	"code/internal/bytescan"
	"code/internal/entity"
)

// matchNamed consumes a named reference candidate, the maximal alphanumeric
// run plus a trailing semicolon if one follows, and resolves it against the
// entity table.
//
// Some references are valid without the semicolon, and some of those are
// prefixes of longer references:
//
//	&times &times; &timesb; &timesbar; &timesd;
//
// so the lookup tries every plausible length, longest first; whatever the
// match leaves over is ordinary text and is re-emitted after the expansion.
func matchNamed(cur *bytescan.Cursor) []byte {
	candidate := []byte{'&'}
	candidate = append(candidate, cur.TakeWhile(isAlphanumeric)...)

	if cur.Accept(';') {
		candidate = append(candidate, ';')
	}

	if len(candidate) < entity.MinLength {
		return candidate
	}

	maxLen := min(len(candidate), entity.MaxLength)
	for checkLen := maxLen; checkLen >= entity.MinLength; checkLen-- {
		expansion, ok := entity.Expansion(string(candidate[:checkLen]))
		if !ok {
			continue
		}

		emitted := make([]byte, 0, len(expansion)+len(candidate)-checkLen)
		emitted = append(emitted, expansion...)
		emitted = append(emitted, candidate[checkLen:]...)

		return emitted
	}

	return candidate
}
