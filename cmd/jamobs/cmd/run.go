package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/f3rmion/jamobs/internal/backspace"
	"github.com/f3rmion/jamobs/internal/clipboard"
	"github.com/f3rmion/jamobs/internal/config"
	"github.com/f3rmion/jamobs/internal/hotkey"
	"github.com/f3rmion/jamobs/internal/inject"
	"github.com/f3rmion/jamobs/internal/keys"
	"github.com/f3rmion/jamobs/internal/typist"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Listen for the hotkey and peel one jamo per activation",
	Long: `Register the trigger hotkey (default shift+backspace) and handle every
activation until interrupted.

Each activation:
  1. selects and copies the character before the caret
  2. restores your clipboard
  3. deletes the character and retypes what remains as standalone jamo

Anything that is not exactly one character falls back to a normal backspace.`,
	RunE: runDaemon,
}

var bannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4ecdc4"))

func init() {
	rootCmd.AddCommand(runCmd)

	for _, c := range []*cobra.Command{rootCmd, runCmd} {
		c.Flags().Bool("dry-run", false, "log keystrokes instead of sending them")
	}
}

// daemon holds the wired components for one process.
type daemon struct {
	orch     *backspace.Orchestrator
	recorder *keys.Recorder // non-nil in dry-run mode
}

// newDaemon wires clipboard, typist and orchestrator from cfg.
func newDaemon(cfg *config.Config, logger *slog.Logger, dryRun bool) (*daemon, error) {
	layout, err := cfg.KeyLayout()
	if err != nil {
		return nil, err
	}

	d := &daemon{}
	var injector keys.Injector
	if dryRun {
		d.recorder = keys.NewRecorder(logger)
		injector = d.recorder
	} else {
		injector, err = inject.New(logger)
		if err != nil {
			return nil, err
		}
	}

	ty := typist.New(injector, layout, typist.Timing{
		ComboKeyDelay: cfg.Timing.ComboKeyDelay,
		KeyDelay:      cfg.Timing.KeyDelay,
		LetterDelay:   cfg.Timing.LetterDelay,
		TenseDelay:    cfg.Timing.TenseDelay,
	}, logger)

	if !clipboard.Available() {
		logger.Warn("no clipboard backend found, every activation will fall back to a normal backspace")
	}
	bridge := clipboard.NewBridge(clipboard.System{}, ty, clipboard.Timing{
		Retries:      cfg.Clipboard.Retries,
		RetryDelay:   cfg.Timing.ClipboardRetryDelay,
		ClearSettle:  cfg.Timing.ClearSettle,
		SelectSettle: cfg.Timing.SelectSettle,
		CopySettle:   cfg.Timing.CopySettle,
	}, logger)

	d.orch = backspace.New(bridge, ty, logger)
	d.orch.DeleteSettle = cfg.Timing.DeleteSettle
	return d, nil
}

// handle processes one activation.
func (d *daemon) handle(logger *slog.Logger) {
	logger.Info("hotkey triggered")
	out, ok := d.orch.Trigger()
	if !ok {
		return
	}
	if d.recorder != nil {
		logger.Info("dry run", "captured", out.Captured, "keys", d.recorder.String())
		d.recorder.Reset()
	}
}

// runDaemon registers the hotkey and blocks until SIGINT/SIGTERM.
func runDaemon(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	d, err := newDaemon(cfg, logger, dryRun)
	if err != nil {
		return err
	}

	trigger, err := hotkey.Register(cfg.Hotkey)
	if err != nil {
		logger.Error("failed to register hotkey", "hotkey", cfg.Hotkey, "error", err)
		return fmt.Errorf("registering hotkey: %w", err)
	}
	defer trigger.Close()

	fmt.Println(bannerStyle.Render(fmt.Sprintf("Hotkey registered. Press %s to peel one jamo.", trigger)))
	logger.Debug("timing", "copy_settle", cfg.Timing.CopySettle, "retries", cfg.Clipboard.Retries, "dry_run", dryRun)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	trigger.Listen(ctx, func() { d.handle(logger) })

	logger.Info("shutting down")
	return nil
}
