package jamo

import "golang.org/x/text/unicode/norm"

// Compose renders letters the way a host that auto-composes standalone
// jamo shows them after they are typed: a leading consonant+vowel(+trailing
// consonant) run becomes one syllable block, anything else stays as typed.
// It only models the short sequences DeleteOneJamo produces.
func Compose(letters []rune) string {
	if len(letters) < 2 {
		return string(letters)
	}

	lead, ok := leadOf[letters[0]]
	if !ok {
		return string(letters)
	}
	vowel, ok := vowelOf[letters[1]]
	if !ok {
		return string(letters)
	}

	parts := []rune{lead, vowel}
	rest := letters[2:]
	if len(rest) > 0 {
		if t, ok := trailingOf[rest[0]]; ok {
			parts = append(parts, t)
			rest = rest[1:]
		}
	}

	return norm.NFC.String(string(parts)) + string(rest)
}
