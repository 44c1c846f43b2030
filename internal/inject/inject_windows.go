//go:build windows

package inject

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/f3rmion/jamobs/internal/keys"
	"golang.org/x/sys/windows"
)

const (
	inputKeyboard  = 1
	keyeventfKeyUp = 0x0002

	vkBack    = 0x08
	vkShift   = 0x10
	vkControl = 0x11
	vkLeft    = 0x25
)

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	procSendInput = user32.NewProc("SendInput")
)

// keybdInput mirrors KEYBDINPUT.
type keybdInput struct {
	wVk         uint16
	wScan       uint16
	dwFlags     uint32
	time        uint32
	dwExtraInfo uintptr
}

// input mirrors INPUT for the keyboard case; the padding covers the larger
// MOUSEINPUT member of the union.
type input struct {
	inputType uint32
	ki        keybdInput
	padding   uint64
}

type sendInputInjector struct {
	logger *slog.Logger
}

func newPlatform(logger *slog.Logger) (keys.Injector, error) {
	if err := procSendInput.Find(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	return &sendInputInjector{logger: logger}, nil
}

func virtualKey(k keys.Key) (uint16, bool) {
	switch {
	case k == keys.KeyShift:
		return vkShift, true
	case k == keys.KeyControl:
		return vkControl, true
	case k == keys.KeyBackspace:
		return vkBack, true
	case k == keys.KeyLeft:
		return vkLeft, true
	case k.IsLetter():
		// VK_A..VK_Z are the ASCII upper-case letters.
		return uint16('A' + int(k-keys.KeyA)), true
	}
	return 0, false
}

func (s *sendInputInjector) Press(k keys.Key) error {
	return s.send(k, 0)
}

func (s *sendInputInjector) Release(k keys.Key) error {
	return s.send(k, keyeventfKeyUp)
}

func (s *sendInputInjector) send(k keys.Key, flags uint32) error {
	vk, ok := virtualKey(k)
	if !ok {
		return unknownKeyError(k)
	}

	in := input{
		inputType: inputKeyboard,
		ki: keybdInput{
			wVk:     vk,
			dwFlags: flags,
		},
	}
	n, _, err := procSendInput.Call(1, uintptr(unsafe.Pointer(&in)), unsafe.Sizeof(in))
	if n != 1 {
		return fmt.Errorf("SendInput %s: %w", k, err)
	}
	return nil
}
