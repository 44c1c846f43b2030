package jamo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteOneJamo(t *testing.T) {
	tests := []struct {
		name string
		in   rune
		want string
	}{
		{name: "compound trailing loses last member", in: '읽', want: "ㅇㅣㄹ"},
		{name: "no trailing drops vowel", in: '가', want: "ㄱ"},
		{name: "simple trailing removed", in: '각', want: "ㄱㅏ"},
		{name: "tense trailing is a single consonant", in: '갔', want: "ㄱㅏ"},
		{name: "tense lead kept", in: '까', want: "ㄲ"},
		{name: "compound vowel dropped whole", in: '과', want: "ㄱ"},
		{name: "compound vowel kept with trailing", in: '광', want: "ㄱㅘ"},
		{name: "ㄳ", in: '넋', want: "ㄴㅓㄱ"},
		{name: "ㄵ", in: '앉', want: "ㅇㅏㄴ"},
		{name: "ㄶ", in: '않', want: "ㅇㅏㄴ"},
		{name: "ㄻ", in: '삶', want: "ㅅㅏㄹ"},
		{name: "ㄼ", in: '밟', want: "ㅂㅏㄹ"},
		{name: "ㄾ", in: '핥', want: "ㅎㅏㄹ"},
		{name: "ㄿ", in: '읊', want: "ㅇㅡㄹ"},
		{name: "ㅀ", in: '싫', want: "ㅅㅣㄹ"},
		{name: "ㅄ", in: '없', want: "ㅇㅓㅂ"},
		{name: "ㅒ vowel", in: '얘', want: "ㅇ"},
		{name: "last syllable", in: '힣', want: "ㅎㅣ"},
		{name: "first syllable", in: '가', want: "ㄱ"},
		{name: "latin letter", in: 'a', want: ""},
		{name: "digit", in: '7', want: ""},
		{name: "latin with accent has no typed form", in: 'é', want: ""},
		{name: "han character", in: '字', want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, string(DeleteOneJamo(tt.in)))
		})
	}
}

func TestDeleteOneJamo_StandaloneRangeIsEmpty(t *testing.T) {
	for r := rune(standaloneFirst); r <= standaloneLast; r++ {
		assert.Empty(t, DeleteOneJamo(r), "U+%04X", r)
	}
}

func TestDeleteOneJamo_AllSyllables(t *testing.T) {
	compounds := map[rune]bool{
		'ㄳ': true, 'ㄵ': true, 'ㄶ': true, 'ㄺ': true, 'ㄻ': true, 'ㄼ': true,
		'ㄽ': true, 'ㄾ': true, 'ㄿ': true, 'ㅀ': true, 'ㅄ': true,
	}

	for r := rune(syllableFirst); r <= syllableLast; r++ {
		out := DeleteOneJamo(r)
		require.NotEmpty(t, out, "U+%04X", r)
		require.LessOrEqual(t, len(out), 3, "U+%04X", r)
		for _, l := range out {
			require.True(t, IsStandalone(l), "U+%04X produced non-standalone %q", r, l)
			require.False(t, compounds[l], "U+%04X produced compound %q", r, l)
		}
	}
}

func TestDeleteOneJamo_RepeatedPeelingReachesNothing(t *testing.T) {
	text := "읽"
	var steps []string
	for i := 0; i < 5 && text != ""; i++ {
		runes := []rune(text)
		text = Compose(DeleteOneJamo(runes[len(runes)-1]))
		steps = append(steps, text)
	}
	assert.Equal(t, []string{"일", "이", "ㅇ", ""}, steps)
}

func TestDecompose(t *testing.T) {
	d, ok := Decompose('닭')
	require.True(t, ok)
	assert.Equal(t, rune(0x1103), d.Lead)
	assert.Equal(t, rune(0x1161), d.Vowel)
	assert.Equal(t, []rune{0x11AF, 0x11A8}, d.Trailing)
	assert.Equal(t, "ㄷㅏㄹㄱ", string(d.Letters()))

	d, ok = Decompose('나')
	require.True(t, ok)
	assert.Empty(t, d.Trailing)

	_, ok = Decompose('x')
	assert.False(t, ok)
}

func TestTypedForm(t *testing.T) {
	r, ok := TypedForm(0x1112)
	require.True(t, ok)
	assert.Equal(t, 'ㅎ', r)

	_, ok = TypedForm(0x11B0) // ㄺ is split, never typed
	assert.False(t, ok)

	_, ok = TypedForm('a')
	assert.False(t, ok)
}

func TestCompose(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"ㄱ", "ㄱ"},
		{"ㄱㅏ", "가"},
		{"ㅇㅣㄹ", "일"},
		{"ㄱㅘ", "과"},
		{"ㅏㄱ", "ㅏㄱ"},
		{"ㄱㅏㄸ", "가ㄸ"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Compose([]rune(tt.in)), "Compose(%q)", tt.in)
	}
}

func TestIsSyllable(t *testing.T) {
	assert.True(t, IsSyllable('한'))
	assert.False(t, IsSyllable('ㅎ'))
	assert.False(t, IsSyllable('h'))
}
