// Package config handles loading and saving user configuration for jamobs.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/f3rmion/jamobs/internal/keys"
	"github.com/f3rmion/jamobs/internal/logging"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file inside the config directory.
const FileName = "config.yaml"

// Config holds all user configuration.
type Config struct {
	Hotkey    string              `yaml:"hotkey" mapstructure:"hotkey"`
	Timing    Timing              `yaml:"timing" mapstructure:"timing"`
	Clipboard Clipboard           `yaml:"clipboard" mapstructure:"clipboard"`
	Log       Log                 `yaml:"log" mapstructure:"log"`
	Layout    map[string][]string `yaml:"layout,omitempty" mapstructure:"layout"` // letter → keys, e.g. ㅒ: [shift+o]
}

// Timing holds the pacing pauses. They are heuristics that let the host
// application and the clipboard catch up with injected input.
type Timing struct {
	ClipboardRetryDelay time.Duration `yaml:"clipboard_retry_delay" mapstructure:"clipboard_retry_delay"`
	ClearSettle         time.Duration `yaml:"clear_settle" mapstructure:"clear_settle"`
	SelectSettle        time.Duration `yaml:"select_settle" mapstructure:"select_settle"`
	CopySettle          time.Duration `yaml:"copy_settle" mapstructure:"copy_settle"`
	ComboKeyDelay       time.Duration `yaml:"combo_key_delay" mapstructure:"combo_key_delay"`
	KeyDelay            time.Duration `yaml:"key_delay" mapstructure:"key_delay"`
	LetterDelay         time.Duration `yaml:"letter_delay" mapstructure:"letter_delay"`
	TenseDelay          time.Duration `yaml:"tense_delay" mapstructure:"tense_delay"`
	DeleteSettle        time.Duration `yaml:"delete_settle" mapstructure:"delete_settle"`
}

// Clipboard holds clipboard access settings.
type Clipboard struct {
	Retries int `yaml:"retries" mapstructure:"retries"`
}

// Log holds logging settings.
type Log struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Hotkey: "shift+backspace",
		Timing: Timing{
			ClipboardRetryDelay: 50 * time.Millisecond,
			ClearSettle:         50 * time.Millisecond,
			SelectSettle:        50 * time.Millisecond,
			CopySettle:          100 * time.Millisecond,
			ComboKeyDelay:       10 * time.Millisecond,
			KeyDelay:            15 * time.Millisecond,
			LetterDelay:         30 * time.Millisecond,
			TenseDelay:          30 * time.Millisecond,
			DeleteSettle:        50 * time.Millisecond,
		},
		Clipboard: Clipboard{Retries: 5},
		Log:       Log{Level: "info", Format: "text"},
	}
}

// SetDefaults registers the defaults with v so env vars and flags can
// override individual keys.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("hotkey", d.Hotkey)
	v.SetDefault("timing.clipboard_retry_delay", d.Timing.ClipboardRetryDelay)
	v.SetDefault("timing.clear_settle", d.Timing.ClearSettle)
	v.SetDefault("timing.select_settle", d.Timing.SelectSettle)
	v.SetDefault("timing.copy_settle", d.Timing.CopySettle)
	v.SetDefault("timing.combo_key_delay", d.Timing.ComboKeyDelay)
	v.SetDefault("timing.key_delay", d.Timing.KeyDelay)
	v.SetDefault("timing.letter_delay", d.Timing.LetterDelay)
	v.SetDefault("timing.tense_delay", d.Timing.TenseDelay)
	v.SetDefault("timing.delete_settle", d.Timing.DeleteSettle)
	v.SetDefault("clipboard.retries", d.Clipboard.Retries)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
}

// FromViper decodes and validates the configuration held by v.
func FromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Load reads a YAML config file. Missing fields keep their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes cfg as YAML to path.
func Save(path string, cfg *Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	var errs []error

	if _, err := keys.ParseBinding(c.Hotkey); err != nil {
		errs = append(errs, fmt.Errorf("hotkey: %w", err))
	}
	if c.Clipboard.Retries < 1 {
		errs = append(errs, fmt.Errorf("clipboard.retries must be at least 1, got %d", c.Clipboard.Retries))
	}
	for name, d := range c.Timing.named() {
		if d < 0 {
			errs = append(errs, fmt.Errorf("timing.%s must not be negative, got %s", name, d))
		}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if _, err := logging.ParseFormat(c.Log.Format); err != nil {
		errs = append(errs, fmt.Errorf("log.format: %w", err))
	}
	if _, err := c.KeyLayout(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// KeyLayout returns Dubeolsik with the configured overrides applied.
func (c *Config) KeyLayout() (keys.Layout, error) {
	return keys.Dubeolsik().WithOverrides(c.Layout)
}

func (t Timing) named() map[string]time.Duration {
	return map[string]time.Duration{
		"clipboard_retry_delay": t.ClipboardRetryDelay,
		"clear_settle":          t.ClearSettle,
		"select_settle":         t.SelectSettle,
		"copy_settle":           t.CopySettle,
		"combo_key_delay":       t.ComboKeyDelay,
		"key_delay":             t.KeyDelay,
		"letter_delay":          t.LetterDelay,
		"tense_delay":           t.TenseDelay,
		"delete_settle":         t.DeleteSettle,
	}
}

// GetConfigDir returns the default configuration directory.
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "jamobs"), nil
}

// EnsureConfigDir creates dir if it doesn't exist.
func EnsureConfigDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
