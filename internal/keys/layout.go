package keys

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"
)

// Stroke is one key of a letter. Shift marks keys that must be typed while
// holding shift (ㅒ and ㅖ on Dubeolsik).
type Stroke struct {
	Key   Key
	Shift bool
}

func (s Stroke) String() string {
	if s.Shift {
		return "shift+" + s.Key.String()
	}
	return s.Key.String()
}

// Layout maps a standalone jamo letter to the keys that type it. Every
// single-key letter has a one-element list; compound vowels use two keys.
type Layout map[rune][]Stroke

// TenseConsonants are typed as shift plus the base key of the plain consonant.
var TenseConsonants = map[rune]Key{
	'ㄲ': KeyR,
	'ㄸ': KeyE,
	'ㅃ': KeyQ,
	'ㅆ': KeyT,
	'ㅉ': KeyW,
}

// TenseBase returns the base key of a tense consonant.
func TenseBase(r rune) (Key, bool) {
	k, ok := TenseConsonants[r]
	return k, ok
}

func plain(keys ...Key) []Stroke {
	out := make([]Stroke, len(keys))
	for i, k := range keys {
		out[i] = Stroke{Key: k}
	}
	return out
}

// Dubeolsik returns the standard two-set Korean layout.
func Dubeolsik() Layout {
	return Layout{
		'ㄱ': plain(KeyR),
		'ㄴ': plain(KeyS),
		'ㄷ': plain(KeyE),
		'ㄹ': plain(KeyF),
		'ㅁ': plain(KeyA),
		'ㅂ': plain(KeyQ),
		'ㅅ': plain(KeyT),
		'ㅇ': plain(KeyD),
		'ㅈ': plain(KeyW),
		'ㅊ': plain(KeyC),
		'ㅋ': plain(KeyZ),
		'ㅌ': plain(KeyX),
		'ㅍ': plain(KeyV),
		'ㅎ': plain(KeyG),
		'ㅏ': plain(KeyK),
		'ㅐ': plain(KeyO),
		'ㅑ': plain(KeyI),
		'ㅒ': {{Key: KeyO, Shift: true}},
		'ㅓ': plain(KeyJ),
		'ㅔ': plain(KeyP),
		'ㅕ': plain(KeyU),
		'ㅖ': {{Key: KeyP, Shift: true}},
		'ㅗ': plain(KeyH),
		'ㅘ': plain(KeyH, KeyK),
		'ㅙ': plain(KeyH, KeyO),
		'ㅚ': plain(KeyH, KeyL),
		'ㅛ': plain(KeyY),
		'ㅜ': plain(KeyN),
		'ㅝ': plain(KeyN, KeyJ),
		'ㅞ': plain(KeyN, KeyP),
		'ㅟ': plain(KeyN, KeyL),
		'ㅠ': plain(KeyB),
		'ㅡ': plain(KeyM),
		'ㅢ': plain(KeyM, KeyL),
		'ㅣ': plain(KeyL),
	}
}

// Lookup returns the strokes for r.
func (l Layout) Lookup(r rune) ([]Stroke, bool) {
	s, ok := l[r]
	return s, ok && len(s) > 0
}

// Letters returns the mapped letters in code point order.
func (l Layout) Letters() []rune {
	out := make([]rune, 0, len(l))
	for r := range l {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// WithOverrides returns a copy of l where every entry of overrides replaces
// the strokes of its letter. Keys are written as "r" or "shift+o". Tense
// consonants cannot be overridden.
func (l Layout) WithOverrides(overrides map[string][]string) (Layout, error) {
	out := make(Layout, len(l)+len(overrides))
	for r, s := range l {
		out[r] = s
	}

	for letter, names := range overrides {
		if utf8.RuneCountInString(letter) != 1 {
			return nil, fmt.Errorf("layout entry %q: must be a single letter", letter)
		}
		r, _ := utf8.DecodeRuneInString(letter)
		if base, ok := TenseBase(r); ok {
			return nil, fmt.Errorf("layout entry %q: tense consonants are always typed as shift+%s", letter, base)
		}

		strokes := make([]Stroke, 0, len(names))
		for _, name := range names {
			s, err := ParseStroke(name)
			if err != nil {
				return nil, fmt.Errorf("layout entry %q: %w", letter, err)
			}
			strokes = append(strokes, s)
		}
		if len(strokes) == 0 {
			delete(out, r)
			continue
		}
		out[r] = strokes
	}

	return out, nil
}

// ParseStroke parses "k" or "shift+k".
func ParseStroke(s string) (Stroke, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	shift := false
	if rest, ok := strings.CutPrefix(name, "shift+"); ok {
		shift = true
		name = rest
	}
	k, err := ParseKey(name)
	if err != nil {
		return Stroke{}, err
	}
	return Stroke{Key: k, Shift: shift}, nil
}
