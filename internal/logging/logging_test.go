package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Output = &buf

	New(cfg).Info("hotkey registered", "binding", "shift+backspace")

	out := buf.String()
	assert.Contains(t, out, "hotkey registered")
	assert.Contains(t, out, "binding=shift+backspace")
	assert.Contains(t, out, "component=jamobs")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	New(Config{Level: slog.LevelDebug, Format: FormatJSON, Output: &buf}).Debug("typing letter", "letter", "ㄱ")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "typing letter", rec["msg"])
	assert.Equal(t, "ㄱ", rec["letter"])
	assert.NotContains(t, rec, "component")
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	New(Config{Level: slog.LevelWarn, Output: &buf}).Info("hidden")
	assert.Empty(t, buf.String())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}
