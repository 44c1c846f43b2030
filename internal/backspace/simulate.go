package backspace

import (
	"log/slog"
	"time"

	"github.com/f3rmion/jamobs/internal/jamo"
	"github.com/f3rmion/jamobs/internal/keys"
	"github.com/f3rmion/jamobs/internal/typist"
)

// Simulation runs the orchestrator against an in-memory text buffer that
// composes retyped letters the way Hangul-aware editors do. No OS input is
// involved; the keystrokes that would have been sent are recorded.
type Simulation struct {
	text     []rune
	caret    int
	recorder *keys.Recorder
	typist   *typist.Typist
	orch     *Orchestrator
}

// NewSimulation creates a simulation with the caret at the end of text.
func NewSimulation(text string, layout keys.Layout, logger *slog.Logger) *Simulation {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Simulation{
		text:     []rune(text),
		recorder: keys.NewRecorder(nil),
	}
	s.caret = len(s.text)
	s.typist = typist.New(s.recorder, layout, typist.Timing{}, logger)
	s.typist.Sleep = func(time.Duration) {}

	s.orch = New(s, s, logger)
	s.orch.Sleep = func(time.Duration) {}
	return s
}

// Peel fires one smart backspace and returns what it did along with the
// keystrokes it produced.
func (s *Simulation) Peel() (Outcome, []keys.Event) {
	s.recorder.Reset()
	out, _ := s.orch.Trigger()
	return out, s.recorder.Events()
}

// Text returns the buffer contents.
func (s *Simulation) Text() string {
	return string(s.text)
}

// Caret returns the caret position in runes.
func (s *Simulation) Caret() int {
	return s.caret
}

// SetCaret moves the caret, clamped to the buffer.
func (s *Simulation) SetCaret(pos int) {
	s.caret = max(0, min(pos, len(s.text)))
}

// CapturePrecedingCharacter implements Capturer for the buffer.
func (s *Simulation) CapturePrecedingCharacter() string {
	if s.caret == 0 {
		return ""
	}
	return string(s.text[s.caret-1])
}

// Tap implements Keyboard; backspace removes the character before the caret.
func (s *Simulation) Tap(k keys.Key) {
	s.typist.Tap(k)
	if k == keys.KeyBackspace && s.caret > 0 {
		s.text = append(s.text[:s.caret-1], s.text[s.caret:]...)
		s.caret--
	}
}

// TypeSequence implements Keyboard and composes the letters into the
// buffer at the caret.
func (s *Simulation) TypeSequence(letters []rune) {
	s.typist.TypeSequence(letters)
	composed := []rune(jamo.Compose(letters))
	s.text = append(s.text[:s.caret], append(composed, s.text[s.caret:]...)...)
	s.caret += len(composed)
}
