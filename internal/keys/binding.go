package keys

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidBinding is returned for malformed hotkey bindings.
var ErrInvalidBinding = errors.New("invalid binding")

// Binding is a parsed global hotkey such as "shift+backspace".
type Binding struct {
	Modifiers []string
	Key       string
}

var bindingModifiers = map[string]string{
	"shift":   "shift",
	"ctrl":    "ctrl",
	"control": "ctrl",
	"alt":     "alt",
	"option":  "alt",
	"super":   "super",
	"win":     "super",
	"cmd":     "super",
}

// ParseBinding converts a binding string to its modifiers and key. At least
// one modifier is required so the hotkey cannot swallow ordinary typing.
func ParseBinding(binding string) (Binding, error) {
	parts := strings.Split(binding, "+")
	if len(parts) < 2 {
		return Binding{}, fmt.Errorf("%w: %q (need modifier+key)", ErrInvalidBinding, binding)
	}

	b := Binding{Key: strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))}
	if b.Key == "" {
		return Binding{}, fmt.Errorf("%w: %q (missing key)", ErrInvalidBinding, binding)
	}

	seen := make(map[string]bool)
	for _, m := range parts[:len(parts)-1] {
		name, ok := bindingModifiers[strings.ToLower(strings.TrimSpace(m))]
		if !ok {
			return Binding{}, fmt.Errorf("%w: unknown modifier %q", ErrInvalidBinding, m)
		}
		if !seen[name] {
			seen[name] = true
			b.Modifiers = append(b.Modifiers, name)
		}
	}

	return b, nil
}

func (b Binding) String() string {
	return strings.Join(append(append([]string(nil), b.Modifiers...), b.Key), "+")
}
