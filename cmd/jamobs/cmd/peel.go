package cmd

import (
	"fmt"
	"strings"

	"github.com/f3rmion/jamobs/internal/backspace"
	"github.com/f3rmion/jamobs/internal/jamo"
	"github.com/f3rmion/jamobs/internal/keys"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

var peelCmd = &cobra.Command{
	Use:   "peel <text>",
	Short: "Show what the smart backspace does to each character",
	Long: `Show, for every character of the given text, its jamo, what the smart
backspace would retype and the keystrokes it would send. Nothing is typed.

With --steps, the text is peeled from the end one activation at a time
until nothing is left.

Example:
  jamobs peel 읽
  jamobs peel --steps 안녕`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPeel,
}

func init() {
	rootCmd.AddCommand(peelCmd)
	peelCmd.Flags().Bool("steps", false, "peel the whole text one activation at a time")
}

func runPeel(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	layout, err := cfg.KeyLayout()
	if err != nil {
		return err
	}

	input := strings.Join(args, " ")
	if steps, _ := cmd.Flags().GetBool("steps"); steps {
		printSteps(input, layout)
		return nil
	}

	for _, char := range input {
		sim := backspace.NewSimulation(string(char), layout, nil)
		out, events := sim.Peel()

		fmt.Printf("Character: %s (U+%04X)\n", string(char), char)
		if jamo.IsSyllable(char) {
			if d, ok := jamo.Decompose(char); ok {
				fmt.Printf("  Jamo:    %s\n", spaced(d.Letters()))
			}
		}
		switch {
		case out.Fallback:
			fmt.Println("  Action:  ordinary backspace")
		case len(out.Retyped) == 0:
			fmt.Println("  Retype:  (nothing)")
		default:
			fmt.Printf("  Retype:  %s → %s\n", spaced(out.Retyped), jamo.Compose(out.Retyped))
		}
		fmt.Printf("  Keys:    %s\n", keys.FormatEvents(events))
		fmt.Println()
	}
	return nil
}

// printSteps peels text until it is empty, one line per activation.
func printSteps(text string, layout keys.Layout) {
	sim := backspace.NewSimulation(text, layout, nil)

	width := runewidth.StringWidth(text)
	fmt.Printf("  %s\n", display(text))
	for sim.Text() != "" {
		before := sim.Text()
		out, _ := sim.Peel()

		note := spaced(out.Retyped)
		if out.Fallback {
			note = "backspace"
		}
		fmt.Printf("→ %s  %s\n", runewidth.FillRight(display(sim.Text()), width), note)

		if sim.Text() == before {
			break
		}
	}
}

func spaced(letters []rune) string {
	parts := make([]string, len(letters))
	for i, r := range letters {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

func display(s string) string {
	if s == "" {
		return "∅"
	}
	return s
}
