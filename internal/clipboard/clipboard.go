// Package clipboard provides access to the system clipboard and the
// snapshot/capture/restore dance used to read the character before the caret.
package clipboard

import (
	"errors"
	"fmt"

	atotto "github.com/atotto/clipboard"
)

// ErrUnavailable is returned when no clipboard backend exists on this system.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard is the text clipboard capability. Each call owns the underlying
// OS handle only for its own duration and may fail transiently, so callers
// are free to retry.
type Clipboard interface {
	Read() (string, error)
	Write(text string) error
	Clear() error
}

// System is the OS clipboard.
type System struct{}

// Read returns the current clipboard text.
func (System) Read() (string, error) {
	if !Available() {
		return "", ErrUnavailable
	}
	text, err := atotto.ReadAll()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}
	return text, nil
}

// Write replaces the clipboard contents with text.
func (System) Write(text string) error {
	if !Available() {
		return ErrUnavailable
	}
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Clear empties the clipboard.
func (s System) Clear() error {
	return s.Write("")
}

// Available checks if clipboard functionality is available.
func Available() bool {
	return !atotto.Unsupported
}
