//go:build linux

package inject

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/f3rmion/jamobs/internal/keys"
	"github.com/micmonay/keybd_event"
)

// uinputSettle is how long a fresh uinput device needs before the
// compositor accepts its events.
const uinputSettle = 2 * time.Second

// evdevCodes are the Linux input event codes (linux/input-event-codes.h).
var evdevCodes = map[keys.Key]int{
	keys.KeyShift:     42, // KEY_LEFTSHIFT
	keys.KeyControl:   29, // KEY_LEFTCTRL
	keys.KeyBackspace: 14,
	keys.KeyLeft:      105,
	keys.KeyA:         30,
	keys.KeyB:         48,
	keys.KeyC:         46,
	keys.KeyD:         32,
	keys.KeyE:         18,
	keys.KeyF:         33,
	keys.KeyG:         34,
	keys.KeyH:         35,
	keys.KeyI:         23,
	keys.KeyJ:         36,
	keys.KeyK:         37,
	keys.KeyL:         38,
	keys.KeyM:         50,
	keys.KeyN:         49,
	keys.KeyO:         24,
	keys.KeyP:         25,
	keys.KeyQ:         16,
	keys.KeyR:         19,
	keys.KeyS:         31,
	keys.KeyT:         20,
	keys.KeyU:         22,
	keys.KeyV:         47,
	keys.KeyW:         17,
	keys.KeyX:         45,
	keys.KeyY:         21,
	keys.KeyZ:         44,
}

type uinputInjector struct {
	kb     keybd_event.KeyBonding
	logger *slog.Logger
}

func newPlatform(logger *slog.Logger) (keys.Injector, error) {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, fmt.Errorf("%w: opening uinput: %v", ErrUnsupported, err)
	}
	logger.Debug("waiting for uinput device", "delay", uinputSettle)
	time.Sleep(uinputSettle)
	return &uinputInjector{kb: kb, logger: logger}, nil
}

func (u *uinputInjector) Press(k keys.Key) error {
	code, ok := evdevCodes[k]
	if !ok {
		return unknownKeyError(k)
	}
	u.kb.Clear()
	u.kb.SetKeys(code)
	return u.kb.Press()
}

func (u *uinputInjector) Release(k keys.Key) error {
	code, ok := evdevCodes[k]
	if !ok {
		return unknownKeyError(k)
	}
	u.kb.Clear()
	u.kb.SetKeys(code)
	return u.kb.Release()
}
