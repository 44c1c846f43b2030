package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/jamobs/internal/tui"
	"github.com/f3rmion/jamobs/internal/tui/bigchar"
	"github.com/spf13/cobra"
)

var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Try the smart backspace in a terminal text field",
	Long: `Open a text field where alt+backspace (or tab) peels one jamo off the
last character, showing the keystrokes that would be sent. Nothing is
typed into other applications.

Controls:
  alt+backspace, tab   Peel one jamo
  ctrl+l               Clear history
  Esc                  Quit`,
	RunE: runPlayground,
}

func init() {
	rootCmd.AddCommand(playgroundCmd)
}

func runPlayground(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	layout, err := cfg.KeyLayout()
	if err != nil {
		return err
	}

	p := tea.NewProgram(tui.New(layout, bigchar.Default()), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
