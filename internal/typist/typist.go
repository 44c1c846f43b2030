// Package typist replays standalone jamo letters as physical keystrokes.
package typist

import (
	"log/slog"
	"time"

	"github.com/f3rmion/jamobs/internal/keys"
)

// Timing holds the pauses inserted between injected keys. They give the
// host application time to process each key before the next one arrives.
type Timing struct {
	ComboKeyDelay time.Duration // between the events of a key combination
	KeyDelay      time.Duration // after each key of a letter
	LetterDelay   time.Duration // after a whole letter
	TenseDelay    time.Duration // after a shift+key tense consonant
}

// DefaultTiming returns the pacing that works with common editors.
func DefaultTiming() Timing {
	return Timing{
		ComboKeyDelay: 10 * time.Millisecond,
		KeyDelay:      15 * time.Millisecond,
		LetterDelay:   30 * time.Millisecond,
		TenseDelay:    30 * time.Millisecond,
	}
}

// Typist sends letters through an injector one at a time.
type Typist struct {
	injector keys.Injector
	layout   keys.Layout
	timing   Timing
	logger   *slog.Logger

	// Sleep is used for every pause; tests replace it.
	Sleep func(time.Duration)
}

// New creates a typist. A nil layout means Dubeolsik.
func New(injector keys.Injector, layout keys.Layout, timing Timing, logger *slog.Logger) *Typist {
	if layout == nil {
		layout = keys.Dubeolsik()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Typist{
		injector: injector,
		layout:   layout,
		timing:   timing,
		logger:   logger,
		Sleep:    time.Sleep,
	}
}

// SendKeyCombination sends events in order with a short pause after each.
func (t *Typist) SendKeyCombination(events []keys.Event) {
	for _, e := range events {
		t.send(e)
		t.Sleep(t.timing.ComboKeyDelay)
	}
}

// Tap presses and releases k without pausing.
func (t *Typist) Tap(k keys.Key) {
	for _, e := range keys.Tap(k) {
		t.send(e)
	}
}

// TypeSequence types every letter, finishing each one (pauses included)
// before starting the next. Letters without a key mapping are skipped.
func (t *Typist) TypeSequence(letters []rune) {
	for _, l := range letters {
		t.typeLetter(l)
	}
}

func (t *Typist) typeLetter(l rune) {
	if base, ok := keys.TenseBase(l); ok {
		t.logger.Debug("typing tense consonant", "letter", string(l), "key", "shift+"+base.String())
		t.SendKeyCombination(keys.Chord(keys.KeyShift, base))
		t.Sleep(t.timing.TenseDelay)
		return
	}

	strokes, ok := t.layout.Lookup(l)
	if !ok {
		t.logger.Warn("no key mapping for letter", "letter", string(l))
		return
	}

	t.logger.Debug("typing letter", "letter", string(l), "strokes", len(strokes))
	for _, s := range strokes {
		if s.Shift {
			t.SendKeyCombination(keys.Chord(keys.KeyShift, s.Key))
		} else {
			t.Tap(s.Key)
		}
		t.Sleep(t.timing.KeyDelay)
	}
	t.Sleep(t.timing.LetterDelay)
}

func (t *Typist) send(e keys.Event) {
	if err := keys.Send(t.injector, e); err != nil {
		t.logger.Warn("key injection failed", "event", e.String(), "error", err)
	}
}
