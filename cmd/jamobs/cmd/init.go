package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/f3rmion/jamobs/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default configuration file",
	Long: `Write config.yaml with every setting at its default to your config
directory ($HOME/.config/jamobs unless --config is given).

Edit the file to change the hotkey, the clipboard and typing pauses, or to
remap letters in the 'layout' section. Running init again checks an
existing file and reports what is wrong with it.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")

	path := cfgFile
	if path == "" {
		path = filepath.Join(getConfigDir(), config.FileName)
	}

	if err := writeDefaultConfig(path, force); err != nil {
		return err
	}

	fmt.Printf("Created %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Run 'jamobs peel 읽' to see what one activation does")
	fmt.Println("  2. Run 'jamobs' and press the hotkey after a Hangul syllable")
	return nil
}

// writeDefaultConfig writes the default config to path. Without force an
// existing file is left alone and only validated.
func writeDefaultConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		if _, err := config.Load(path); err != nil {
			return fmt.Errorf("existing config %s is invalid: %w\nUse --force to overwrite", path, err)
		}
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking config file: %w", err)
	}

	if err := config.EnsureConfigDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return config.Save(path, config.Default())
}
