// Package keys defines platform-neutral key identifiers, the Dubeolsik
// layout used to type standalone jamo, and the injection capability the
// typist drives.
package keys

import (
	"fmt"
	"strings"
)

// Key identifies a physical key independently of the platform's codes.
type Key int

const (
	KeyUnknown Key = iota
	KeyShift
	KeyControl
	KeyBackspace
	KeyLeft
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
)

var keyNames = map[Key]string{
	KeyShift:     "shift",
	KeyControl:   "ctrl",
	KeyBackspace: "backspace",
	KeyLeft:      "left",
}

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('a' + int(k-KeyA)))
	}
}

// String returns the lowercase key name used in configuration files.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", int(k))
}

// IsLetter reports whether k is one of the A–Z keys.
func (k Key) IsLetter() bool {
	return k >= KeyA && k <= KeyZ
}

// ParseKey resolves a key name such as "r", "shift" or "backspace".
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "control":
		return KeyControl, nil
	case "back", "bksp":
		return KeyBackspace, nil
	}
	for k, n := range keyNames {
		if n == name {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", name)
}

// Event is a single press or release of a key.
type Event struct {
	Key  Key
	Down bool
}

func (e Event) String() string {
	if e.Down {
		return e.Key.String() + "↓"
	}
	return e.Key.String() + "↑"
}

// Tap returns the press/release pair for k.
func Tap(k Key) []Event {
	return []Event{{Key: k, Down: true}, {Key: k, Down: false}}
}

// Chord returns modifier-down, key-down, key-up, modifier-up.
func Chord(modifier, k Key) []Event {
	return []Event{
		{Key: modifier, Down: true},
		{Key: k, Down: true},
		{Key: k, Down: false},
		{Key: modifier, Down: false},
	}
}

// Common sequences.
var (
	SelectPrevious = Chord(KeyShift, KeyLeft)
	Copy           = Chord(KeyControl, KeyC)
)

// Injector synthesizes hardware-level key events.
type Injector interface {
	Press(k Key) error
	Release(k Key) error
}

// Send delivers a single event to inj.
func Send(inj Injector, e Event) error {
	if e.Down {
		return inj.Press(e.Key)
	}
	return inj.Release(e.Key)
}
