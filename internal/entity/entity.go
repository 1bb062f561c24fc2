// Package entity provides the precomputed WHATWG named character reference
// table. Spellings include the leading ampersand and, where the reference
// defines one, the trailing semicolon; a reference that is valid without the
// semicolon appears as two distinct keys (for example "&amp" and "&amp;").
//
// The table is built once from the normative entities.json data set and never
// mutated, so it is safe to share across concurrent readers without locking.
package entity

// MinLength and MaxLength bound the byte length of every spelling in the
// table; no shorter or longer candidate can match.
const (
	MinLength = minSpellingLength
	MaxLength = maxSpellingLength
)

// Expansion returns the UTF-8 expansion of spelling (one or two Unicode
// scalar values) and whether the spelling is a defined reference.
func Expansion(spelling string) (string, bool) {
	expansion, ok := expansions[spelling]

	return expansion, ok
}

// Count returns the number of defined spellings.
func Count() int {
	return len(expansions)
}
