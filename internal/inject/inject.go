// Package inject synthesizes hardware-level key events on the host OS.
package inject

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/f3rmion/jamobs/internal/keys"
)

// ErrUnsupported is returned on platforms without a key injection backend.
var ErrUnsupported = errors.New("key injection not supported on this platform")

// New returns the injector for the running OS.
func New(logger *slog.Logger) (keys.Injector, error) {
	if logger == nil {
		logger = slog.Default()
	}
	inj, err := newPlatform(logger)
	if err != nil {
		return nil, fmt.Errorf("creating key injector: %w", err)
	}
	return inj, nil
}

// unknownKeyError reports a key with no native code on this platform.
func unknownKeyError(k keys.Key) error {
	return fmt.Errorf("no native code for key %s", k)
}
