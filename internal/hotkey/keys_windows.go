//go:build windows

package hotkey

import "golang.design/x/hotkey"

var modifiers = map[string]hotkey.Modifier{
	"ctrl":  hotkey.ModCtrl,
	"shift": hotkey.ModShift,
	"alt":   hotkey.ModAlt,
	"super": hotkey.ModWin,
}

// Virtual-key codes without a named constant in the hotkey package.
var platformKeys = map[string]hotkey.Key{
	"backspace": hotkey.Key(0x08), // VK_BACK
	"delete":    hotkey.Key(0x2E), // VK_DELETE
	"insert":    hotkey.Key(0x2D), // VK_INSERT
}
