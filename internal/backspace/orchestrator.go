// Package backspace sequences a single smart-backspace trigger: capture the
// character before the caret, decide what survives, delete it and retype.
package backspace

import (
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/f3rmion/jamobs/internal/jamo"
	"github.com/f3rmion/jamobs/internal/keys"
)

// State is a step of trigger handling.
type State int32

const (
	StateIdle State = iota
	StateCapturing
	StateDeciding
	StateDeleting
	StateRetyping
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCapturing:
		return "capturing"
	case StateDeciding:
		return "deciding"
	case StateDeleting:
		return "deleting"
	case StateRetyping:
		return "retyping"
	default:
		return "unknown"
	}
}

// Capturer returns the text selected and copied before the caret.
type Capturer interface {
	CapturePrecedingCharacter() string
}

// Keyboard deletes and retypes; the typist satisfies it.
type Keyboard interface {
	Tap(k keys.Key)
	TypeSequence(letters []rune)
}

// Outcome describes what one trigger did.
type Outcome struct {
	Captured string
	Fallback bool   // ordinary backspace because the capture was not one character
	Retyped  []rune // letters handed to the keyboard after the delete
}

// Orchestrator runs the trigger state machine. Triggers that arrive while
// a previous one is still running are ignored.
type Orchestrator struct {
	capture  Capturer
	keyboard Keyboard
	logger   *slog.Logger
	state    atomic.Int32

	// DeleteSettle is the pause between deleting the character and retyping.
	DeleteSettle time.Duration
	// Sleep is used for every pause; tests replace it.
	Sleep func(time.Duration)
}

// New creates an orchestrator.
func New(capture Capturer, keyboard Keyboard, logger *slog.Logger) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Orchestrator{
		capture:      capture,
		keyboard:     keyboard,
		logger:       logger,
		DeleteSettle: 50 * time.Millisecond,
		Sleep:        time.Sleep,
	}
}

// State returns the step currently executing.
func (o *Orchestrator) State() State {
	return State(o.state.Load())
}

// Trigger handles one hotkey activation. It returns false without doing
// anything when another activation is still in progress.
func (o *Orchestrator) Trigger() (Outcome, bool) {
	if !o.state.CompareAndSwap(int32(StateIdle), int32(StateCapturing)) {
		o.logger.Debug("trigger ignored", "state", o.State().String())
		return Outcome{}, false
	}
	defer o.state.Store(int32(StateIdle))

	return o.run(), true
}

func (o *Orchestrator) run() Outcome {
	captured := o.capture.CapturePrecedingCharacter()
	out := Outcome{Captured: captured}
	o.logger.Debug("captured selection", "text", captured)

	o.enter(StateDeciding)
	if utf8.RuneCountInString(captured) != 1 {
		o.logger.Info("no single character selected, sending regular backspace",
			"length", utf8.RuneCountInString(captured))
		o.keyboard.Tap(keys.KeyBackspace)
		out.Fallback = true
		return out
	}

	ch, _ := utf8.DecodeRuneInString(captured)
	letters := jamo.DeleteOneJamo(ch)
	o.logger.Info("peeling one jamo",
		"char", captured,
		"code", fmt.Sprintf("U+%04X", ch),
		"retype", string(letters))

	o.enter(StateDeleting)
	o.keyboard.Tap(keys.KeyBackspace)
	o.Sleep(o.DeleteSettle)

	o.enter(StateRetyping)
	o.keyboard.TypeSequence(letters)
	out.Retyped = letters

	return out
}

func (o *Orchestrator) enter(s State) {
	o.state.Store(int32(s))
}
