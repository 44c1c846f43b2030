package jamo

// Code point ranges used by the engine.
const (
	standaloneFirst = 0x3131 // ㄱ, first Hangul Compatibility Jamo letter
	standaloneLast  = 0x318E // ㆎ, last Hangul Compatibility Jamo letter

	syllableFirst = 0xAC00 // 가
	syllableLast  = 0xD7A3 // 힣
)

// compoundTrailing splits a two-letter trailing cluster into its simple
// consonants, both expressed as trailing (jongseong) jamo.
var compoundTrailing = map[rune][2]rune{
	0x11AA: {0x11A8, 0x11BA}, // ㄳ → ㄱ,ㅅ
	0x11AC: {0x11AB, 0x11BD}, // ㄵ → ㄴ,ㅈ
	0x11AD: {0x11AB, 0x11C2}, // ㄶ → ㄴ,ㅎ
	0x11B0: {0x11AF, 0x11A8}, // ㄺ → ㄹ,ㄱ
	0x11B1: {0x11AF, 0x11B7}, // ㄻ → ㄹ,ㅁ
	0x11B2: {0x11AF, 0x11B8}, // ㄼ → ㄹ,ㅂ
	0x11B3: {0x11AF, 0x11BA}, // ㄽ → ㄹ,ㅅ
	0x11B4: {0x11AF, 0x11C0}, // ㄾ → ㄹ,ㅌ
	0x11B5: {0x11AF, 0x11C1}, // ㄿ → ㄹ,ㅍ
	0x11B6: {0x11AF, 0x11C2}, // ㅀ → ㄹ,ㅎ
	0x11B9: {0x11B8, 0x11BA}, // ㅄ → ㅂ,ㅅ
}

// leadTyped maps choseong to the standalone letter typed for it.
var leadTyped = map[rune]rune{
	0x1100: 'ㄱ', 0x1101: 'ㄲ', 0x1102: 'ㄴ', 0x1103: 'ㄷ',
	0x1104: 'ㄸ', 0x1105: 'ㄹ', 0x1106: 'ㅁ', 0x1107: 'ㅂ',
	0x1108: 'ㅃ', 0x1109: 'ㅅ', 0x110A: 'ㅆ', 0x110B: 'ㅇ',
	0x110C: 'ㅈ', 0x110D: 'ㅉ', 0x110E: 'ㅊ', 0x110F: 'ㅋ',
	0x1110: 'ㅌ', 0x1111: 'ㅍ', 0x1112: 'ㅎ',
}

// vowelTyped maps jungseong to the standalone vowel letter.
var vowelTyped = map[rune]rune{
	0x1161: 'ㅏ', 0x1162: 'ㅐ', 0x1163: 'ㅑ', 0x1164: 'ㅒ',
	0x1165: 'ㅓ', 0x1166: 'ㅔ', 0x1167: 'ㅕ', 0x1168: 'ㅖ',
	0x1169: 'ㅗ', 0x116A: 'ㅘ', 0x116B: 'ㅙ', 0x116C: 'ㅚ',
	0x116D: 'ㅛ', 0x116E: 'ㅜ', 0x116F: 'ㅝ', 0x1170: 'ㅞ',
	0x1171: 'ㅟ', 0x1172: 'ㅠ', 0x1173: 'ㅡ', 0x1174: 'ㅢ',
	0x1175: 'ㅣ',
}

// trailingTyped maps simple jongseong to the standalone consonant letter.
// Compound clusters are split through compoundTrailing and never typed
// as one letter.
var trailingTyped = map[rune]rune{
	0x11A8: 'ㄱ', 0x11A9: 'ㄲ', 0x11AB: 'ㄴ', 0x11AE: 'ㄷ',
	0x11AF: 'ㄹ', 0x11B7: 'ㅁ', 0x11B8: 'ㅂ', 0x11BA: 'ㅅ',
	0x11BB: 'ㅆ', 0x11BC: 'ㅇ', 0x11BD: 'ㅈ', 0x11BE: 'ㅊ',
	0x11BF: 'ㅋ', 0x11C0: 'ㅌ', 0x11C1: 'ㅍ', 0x11C2: 'ㅎ',
}

// typedForm is the union of the three position tables, keyed by conjoining jamo.
var typedForm = func() map[rune]rune {
	m := make(map[rune]rune, len(leadTyped)+len(vowelTyped)+len(trailingTyped))
	for _, table := range []map[rune]rune{leadTyped, vowelTyped, trailingTyped} {
		for k, v := range table {
			m[k] = v
		}
	}
	return m
}()

// Reverse lookups used by Compose.
var (
	leadOf     = invert(leadTyped)
	vowelOf    = invert(vowelTyped)
	trailingOf = invert(trailingTyped)
)

func invert(m map[rune]rune) map[rune]rune {
	out := make(map[rune]rune, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}
