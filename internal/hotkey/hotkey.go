// Package hotkey registers the global key combination that fires the smart
// backspace and delivers its activations.
package hotkey

import (
	"context"
	"errors"
	"fmt"

	"github.com/f3rmion/jamobs/internal/keys"
	"golang.design/x/hotkey"
)

// ErrUnknownKey is returned when a binding names a key or modifier this
// platform cannot register.
var ErrUnknownKey = errors.New("unknown hotkey key")

var commonKeys = map[string]hotkey.Key{
	"space":  hotkey.KeySpace,
	"tab":    hotkey.KeyTab,
	"return": hotkey.KeyReturn,
	"enter":  hotkey.KeyReturn,
	"escape": hotkey.KeyEscape,
	"a":      hotkey.KeyA,
	"b":      hotkey.KeyB,
	"c":      hotkey.KeyC,
	"d":      hotkey.KeyD,
	"e":      hotkey.KeyE,
	"f":      hotkey.KeyF,
	"g":      hotkey.KeyG,
	"h":      hotkey.KeyH,
	"i":      hotkey.KeyI,
	"j":      hotkey.KeyJ,
	"k":      hotkey.KeyK,
	"l":      hotkey.KeyL,
	"m":      hotkey.KeyM,
	"n":      hotkey.KeyN,
	"o":      hotkey.KeyO,
	"p":      hotkey.KeyP,
	"q":      hotkey.KeyQ,
	"r":      hotkey.KeyR,
	"s":      hotkey.KeyS,
	"t":      hotkey.KeyT,
	"u":      hotkey.KeyU,
	"v":      hotkey.KeyV,
	"w":      hotkey.KeyW,
	"x":      hotkey.KeyX,
	"y":      hotkey.KeyY,
	"z":      hotkey.KeyZ,
}

// Resolve translates a binding into native modifiers and key.
func Resolve(b keys.Binding) ([]hotkey.Modifier, hotkey.Key, error) {
	key, ok := platformKeys[b.Key]
	if !ok {
		key, ok = commonKeys[b.Key]
	}
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownKey, b.Key)
	}

	mods := make([]hotkey.Modifier, 0, len(b.Modifiers))
	for _, name := range b.Modifiers {
		m, ok := modifiers[name]
		if !ok {
			return nil, 0, fmt.Errorf("%w: modifier %q", ErrUnknownKey, name)
		}
		mods = append(mods, m)
	}
	return mods, key, nil
}

// Trigger is a registered global hotkey.
type Trigger struct {
	hk      *hotkey.Hotkey
	binding keys.Binding
}

// Register parses binding and registers it with the OS.
func Register(binding string) (*Trigger, error) {
	b, err := keys.ParseBinding(binding)
	if err != nil {
		return nil, err
	}
	mods, key, err := Resolve(b)
	if err != nil {
		return nil, err
	}

	hk := hotkey.New(mods, key)
	if err := hk.Register(); err != nil {
		return nil, fmt.Errorf("registering %s: %w", b, err)
	}
	return &Trigger{hk: hk, binding: b}, nil
}

// Listen calls handle for every activation until ctx is done. handle runs
// on the calling goroutine. Activations that arrive while handle is running
// are dropped, not replayed afterwards.
func (t *Trigger) Listen(ctx context.Context, handle func()) {
	listen(ctx, t.hk.Keydown(), handle)
}

func listen(ctx context.Context, events <-chan hotkey.Event, handle func()) {
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-events:
			if !ok {
				return
			}
			handle()
			drain(events)
		}
	}
}

// drain discards activations queued up while the last one was handled.
func drain(events <-chan hotkey.Event) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

// Close unregisters the hotkey.
func (t *Trigger) Close() error {
	return t.hk.Unregister()
}

func (t *Trigger) String() string {
	return t.binding.String()
}
