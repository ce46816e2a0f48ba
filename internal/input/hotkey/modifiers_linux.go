//go:build linux

package hotkey

import "golang.design/x/hotkey"

// modifierMap maps Modifier flags to X11 modifier masks.
var modifierMap = map[Modifier]hotkey.Modifier{
	ModCtrl:  hotkey.ModCtrl,
	ModShift: hotkey.ModShift,
	ModAlt:   hotkey.Mod1,
	ModMeta:  hotkey.Mod4,
}
