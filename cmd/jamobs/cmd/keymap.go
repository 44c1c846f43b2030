package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/f3rmion/jamobs/internal/keys"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var keymapCmd = &cobra.Command{
	Use:   "keymap",
	Short: "Print the jamo-to-key layout in effect",
	Long: `Print how every standalone jamo is typed: the built-in Dubeolsik layout
with any overrides from the 'layout' section of the config applied.

Tense consonants (ㄲ ㄸ ㅃ ㅆ ㅉ) are always typed as shift plus the base key.`,
	RunE: runKeymap,
}

func init() {
	rootCmd.AddCommand(keymapCmd)
}

func runKeymap(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	layout, err := cfg.KeyLayout()
	if err != nil {
		return err
	}

	fmt.Print(formatKeymap(layout))
	return nil
}

// formatKeymap renders layout as an aligned two-column table.
func formatKeymap(layout keys.Layout) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  %s\n", runewidth.FillRight("Jamo", 4), "Keys"))
	for _, r := range layout.Letters() {
		strokes, _ := layout.Lookup(r)
		parts := make([]string, len(strokes))
		for i, s := range strokes {
			parts[i] = s.String()
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", runewidth.FillRight(string(r), 4), strings.Join(parts, " ")))
	}

	tense := make([]rune, 0, len(keys.TenseConsonants))
	for r := range keys.TenseConsonants {
		tense = append(tense, r)
	}
	sort.Slice(tense, func(i, j int) bool { return tense[i] < tense[j] })

	b.WriteString("\nTense\n")
	for _, r := range tense {
		b.WriteString(fmt.Sprintf("%s  shift+%s\n", runewidth.FillRight(string(r), 4), keys.TenseConsonants[r]))
	}
	return b.String()
}
