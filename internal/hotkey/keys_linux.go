//go:build linux

package hotkey

import "golang.design/x/hotkey"

var modifiers = map[string]hotkey.Modifier{
	"ctrl":  hotkey.ModCtrl,
	"shift": hotkey.ModShift,
	"alt":   hotkey.Mod1,
	"super": hotkey.Mod4,
}

// X11 keysyms without a named constant in the hotkey package.
var platformKeys = map[string]hotkey.Key{
	"backspace": hotkey.Key(0xff08), // XK_BackSpace
	"delete":    hotkey.Key(0xffff), // XK_Delete
	"insert":    hotkey.Key(0xff63), // XK_Insert
}
