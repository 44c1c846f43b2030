package cmd

import (
	"strings"
	"testing"

	"github.com/f3rmion/jamobs/internal/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatKeymap(t *testing.T) {
	out := formatKeymap(keys.Dubeolsik())
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")

	assert.Contains(t, lines, "ㄱ    r")
	assert.Contains(t, lines, "ㅒ    shift+o")
	assert.Contains(t, lines, "ㅘ    h k")
	assert.Contains(t, lines, "ㄲ    shift+r")
	assert.Contains(t, lines, "Tense")
}

func TestFormatKeymap_Overrides(t *testing.T) {
	layout, err := keys.Dubeolsik().WithOverrides(map[string][]string{"ㄱ": {"shift+z"}})
	require.NoError(t, err)

	assert.Contains(t, formatKeymap(layout), "ㄱ    shift+z\n")
}

func TestSpaced(t *testing.T) {
	assert.Equal(t, "ㅇ ㅣ ㄹ", spaced([]rune("ㅇㅣㄹ")))
	assert.Equal(t, "", spaced(nil))
}
