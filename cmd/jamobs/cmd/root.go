// Package cmd contains all CLI commands for jamobs.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/f3rmion/jamobs/internal/config"
	"github.com/f3rmion/jamobs/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jamobs",
	Short: "Smart backspace that deletes one Hangul jamo at a time",
	Long: `jamobs gives Hangul typists the legacy IME backspace: instead of
deleting a whole syllable block, the trigger hotkey peels off exactly one
jamo and leaves the rest in place.

  읽 → 일 → 이 → ㅇ → (gone)

It works in any application that supports shift+left and ctrl+c: the
character before the caret is selected and copied, the clipboard is
restored, and what is left is retyped as standalone jamo.

Running 'jamobs' without arguments starts listening for the hotkey.`,
	SilenceUsage: true,
	RunE:         runDaemon,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/jamobs/config.yaml)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("hotkey", "", "trigger hotkey, e.g. shift+backspace")
	rootCmd.PersistentFlags().String("log-format", "", "log format: text or json")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("hotkey", rootCmd.PersistentFlags().Lookup("hotkey"))
	viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
		viper.SetConfigFile(filepath.Join(dir, config.FileName))
	}

	viper.SetEnvPrefix("JAMOBS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "Warning: could not read config:", err)
	}
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	if cfgFile != "" {
		return filepath.Dir(cfgFile)
	}
	return viper.GetString("config_dir")
}

// loadConfig decodes the effective configuration from file, env and flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the diagnostic logger for cfg.
func newLogger(cfg *config.Config) *slog.Logger {
	lc := logging.DefaultConfig()
	if level, err := logging.ParseLevel(cfg.Log.Level); err == nil {
		lc.Level = level
	}
	if viper.GetBool("verbose") {
		lc.Level = slog.LevelDebug
	}
	if format, err := logging.ParseFormat(cfg.Log.Format); err == nil {
		lc.Format = format
	}

	logger := logging.New(lc)
	slog.SetDefault(logger)
	return logger
}
