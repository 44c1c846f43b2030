package clipboard

import (
	"log/slog"
	"time"

	"github.com/f3rmion/jamobs/internal/keys"
)

// Timing controls clipboard retries and the settle pauses around the
// injected select and copy shortcuts.
type Timing struct {
	Retries      int
	RetryDelay   time.Duration
	ClearSettle  time.Duration
	SelectSettle time.Duration
	// CopySettle is longer than SelectSettle: the clipboard ownership
	// handoff after ctrl+c is the slower of the two.
	CopySettle time.Duration
}

// DefaultTiming returns the defaults used by the daemon.
func DefaultTiming() Timing {
	return Timing{
		Retries:      5,
		RetryDelay:   50 * time.Millisecond,
		ClearSettle:  50 * time.Millisecond,
		SelectSettle: 50 * time.Millisecond,
		CopySettle:   100 * time.Millisecond,
	}
}

// KeySender sends key combinations; the typist satisfies it.
type KeySender interface {
	SendKeyCombination(events []keys.Event)
}

// Bridge captures the character immediately before the caret by selecting
// it and copying it, leaving the user's clipboard as it was.
type Bridge struct {
	clip   Clipboard
	keys   KeySender
	timing Timing
	logger *slog.Logger

	// Sleep is used for every pause; tests replace it.
	Sleep func(time.Duration)
}

// NewBridge creates a bridge over clip that drives selection through sender.
func NewBridge(clip Clipboard, sender KeySender, timing Timing, logger *slog.Logger) *Bridge {
	if timing.Retries < 1 {
		timing.Retries = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Bridge{
		clip:   clip,
		keys:   sender,
		timing: timing,
		logger: logger,
		Sleep:  time.Sleep,
	}
}

// CapturePrecedingCharacter selects the previous character, copies it and
// returns the copied text. The original clipboard text is restored before
// returning. Failures yield an empty string; the caller validates the shape.
func (b *Bridge) CapturePrecedingCharacter() string {
	snapshot, ok := b.read()
	if !ok {
		b.logger.Debug("clipboard snapshot unavailable, treating as empty")
	}

	if err := b.retry(b.clip.Clear); err != nil {
		b.logger.Warn("clearing clipboard failed", "error", err)
	}
	b.Sleep(b.timing.ClearSettle)

	b.keys.SendKeyCombination(keys.SelectPrevious)
	b.Sleep(b.timing.SelectSettle)

	b.keys.SendKeyCombination(keys.Copy)
	b.Sleep(b.timing.CopySettle)

	captured, ok := b.read()
	if !ok {
		b.logger.Debug("nothing captured from selection")
	}

	if err := b.retry(func() error { return b.clip.Write(snapshot) }); err != nil {
		b.logger.Warn("restoring clipboard failed", "error", err)
	}

	return captured
}

// read reads the clipboard with bounded retries.
func (b *Bridge) read() (string, bool) {
	var text string
	err := b.retry(func() error {
		var err error
		text, err = b.clip.Read()
		return err
	})
	if err != nil {
		return "", false
	}
	return text, true
}

func (b *Bridge) retry(fn func() error) error {
	var err error
	for attempt := 0; attempt < b.timing.Retries; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		b.Sleep(b.timing.RetryDelay)
	}
	return err
}
