// Package jamo decomposes Hangul syllable blocks and computes which
// standalone letters must be retyped after peeling off one jamo.
package jamo

import (
	"golang.org/x/text/unicode/norm"
)

// Decomposition is a syllable split into conjoining jamo. Trailing holds
// zero, one or two simple trailing consonants; compound clusters are
// already expanded.
type Decomposition struct {
	Lead     rune
	Vowel    rune
	Trailing []rune
}

// Letters returns the typed (standalone) form of every part, skipping
// parts that have no typed form.
func (d Decomposition) Letters() []rune {
	parts := append([]rune{d.Lead, d.Vowel}, d.Trailing...)
	return typed(parts)
}

// IsStandalone reports whether r is already a standalone jamo letter.
func IsStandalone(r rune) bool {
	return r >= standaloneFirst && r <= standaloneLast
}

// IsSyllable reports whether r is a precomposed Hangul syllable block.
func IsSyllable(r rune) bool {
	return r >= syllableFirst && r <= syllableLast
}

// TypedForm returns the standalone letter for a conjoining jamo.
func TypedForm(r rune) (rune, bool) {
	t, ok := typedForm[r]
	return t, ok
}

// Decompose canonically decomposes ch. It returns false when ch does not
// break into at least a lead and a vowel.
func Decompose(ch rune) (Decomposition, bool) {
	parts := []rune(norm.NFD.String(string(ch)))
	if len(parts) < 2 {
		return Decomposition{}, false
	}

	d := Decomposition{Lead: parts[0], Vowel: parts[1]}
	if len(parts) > 2 {
		d.Trailing = expandTrailing(parts[2])
	}
	return d, true
}

// expandTrailing splits a compound cluster into its two consonants;
// anything else is a single consonant.
func expandTrailing(r rune) []rune {
	if pair, ok := compoundTrailing[r]; ok {
		return []rune{pair[0], pair[1]}
	}
	return []rune{r}
}

// DeleteOneJamo removes the last jamo of ch and returns the standalone
// letters that have to be typed to rebuild what is left. An empty result
// means the character disappears completely.
//
//	읽 → ㅇㅣㄹ   (ㄺ loses ㄱ)
//	각 → ㄱㅏ
//	가 → ㄱ
//	ㄱ → (nothing)
func DeleteOneJamo(ch rune) []rune {
	if IsStandalone(ch) {
		return nil
	}

	d, ok := Decompose(ch)
	if !ok {
		return nil
	}

	if len(d.Trailing) == 0 {
		return typed([]rune{d.Lead})
	}

	remaining := append([]rune{d.Lead, d.Vowel}, d.Trailing[:len(d.Trailing)-1]...)
	return typed(remaining)
}

func typed(parts []rune) []rune {
	var out []rune
	for _, p := range parts {
		if t, ok := TypedForm(p); ok {
			out = append(out, t)
		}
	}
	return out
}
