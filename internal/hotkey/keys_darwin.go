//go:build darwin

package hotkey

import "golang.design/x/hotkey"

var modifiers = map[string]hotkey.Modifier{
	"ctrl":  hotkey.ModCtrl,
	"shift": hotkey.ModShift,
	"alt":   hotkey.ModOption,
	"super": hotkey.ModCmd,
}

// Carbon virtual key codes without a named constant in the hotkey package.
var platformKeys = map[string]hotkey.Key{
	"backspace": hotkey.Key(0x33), // kVK_Delete
	"delete":    hotkey.Key(0x75), // kVK_ForwardDelete
	"insert":    hotkey.Key(0x72), // kVK_Help
}
