//go:build !windows && !linux

package inject

import (
	"log/slog"

	"github.com/f3rmion/jamobs/internal/keys"
)

func newPlatform(*slog.Logger) (keys.Injector, error) {
	return nil, ErrUnsupported
}
