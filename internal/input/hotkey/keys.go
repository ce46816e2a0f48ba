package hotkey

import (
	"fmt"
	"strings"
)

// Key identifies a physical key independent of platform key codes.
type Key uint16

const (
	KeyUnknown Key = iota
	KeyCtrl
	KeyLeftCtrl
	KeyRightCtrl
	KeyShift
	KeyLeftShift
	KeyRightShift
	KeyAlt
	KeyLeftAlt
	KeyRightAlt
	KeyMeta
	KeyLeftMeta
	KeyRightMeta
	KeySpace
	KeyEnter
	KeyTab
	KeyEsc
	KeyBackspace
	KeyInsert
	KeyDelete
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyCapsLock
	KeyPause
	KeyPrintScreen
)

const (
	keyLetterBase   Key = 0x100
	keyDigitBase    Key = 0x200
	keyFunctionBase Key = 0x300
	maxFunctionKey      = 24
)

// Letter returns the key for an ASCII letter.
func Letter(r rune) Key {
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r > 'z' {
		return KeyUnknown
	}
	return keyLetterBase + Key(r-'a')
}

// Digit returns the key for a top-row digit.
func Digit(n int) Key {
	if n < 0 || n > 9 {
		return KeyUnknown
	}
	return keyDigitBase + Key(n)
}

// Function returns the key for F1..F24.
func Function(n int) Key {
	if n < 1 || n > maxFunctionKey {
		return KeyUnknown
	}
	return keyFunctionBase + Key(n)
}

var specialNames = []struct {
	key   Key
	names []string
}{
	{KeyCtrl, []string{"ctrl", "control"}},
	{KeyLeftCtrl, []string{"left ctrl", "left control", "lctrl"}},
	{KeyRightCtrl, []string{"right ctrl", "right control", "rctrl"}},
	{KeyShift, []string{"shift"}},
	{KeyLeftShift, []string{"left shift", "lshift"}},
	{KeyRightShift, []string{"right shift", "rshift"}},
	{KeyAlt, []string{"alt", "option"}},
	{KeyLeftAlt, []string{"left alt", "lalt"}},
	{KeyRightAlt, []string{"right alt", "ralt", "alt gr", "altgr"}},
	{KeyMeta, []string{"windows", "win", "super", "cmd", "command", "meta"}},
	{KeyLeftMeta, []string{"left windows", "left win", "left super", "left cmd"}},
	{KeyRightMeta, []string{"right windows", "right win", "right super", "right cmd"}},
	{KeySpace, []string{"space", "spacebar"}},
	{KeyEnter, []string{"enter", "return"}},
	{KeyTab, []string{"tab"}},
	{KeyEsc, []string{"esc", "escape"}},
	{KeyBackspace, []string{"backspace"}},
	{KeyInsert, []string{"insert", "ins"}},
	{KeyDelete, []string{"delete", "del"}},
	{KeyHome, []string{"home"}},
	{KeyEnd, []string{"end"}},
	{KeyPageUp, []string{"page up", "pgup", "prior"}},
	{KeyPageDown, []string{"page down", "pgdn", "next"}},
	{KeyLeft, []string{"left", "left arrow"}},
	{KeyRight, []string{"right", "right arrow"}},
	{KeyUp, []string{"up", "up arrow"}},
	{KeyDown, []string{"down", "down arrow"}},
	{KeyCapsLock, []string{"caps lock", "capslock"}},
	{KeyPause, []string{"pause", "break"}},
	{KeyPrintScreen, []string{"print screen", "prtsc", "snapshot"}},
}

var (
	keysByName = map[string]Key{}
	namesByKey = map[Key]string{}
)

func init() {
	for _, entry := range specialNames {
		namesByKey[entry.key] = entry.names[0]
		for _, name := range entry.names {
			keysByName[name] = entry.key
		}
	}
	for r := 'a'; r <= 'z'; r++ {
		keysByName[string(r)] = Letter(r)
		namesByKey[Letter(r)] = string(r)
	}
	for n := 0; n <= 9; n++ {
		name := fmt.Sprintf("%d", n)
		keysByName[name] = Digit(n)
		namesByKey[Digit(n)] = name
	}
	for n := 1; n <= maxFunctionKey; n++ {
		name := fmt.Sprintf("f%d", n)
		keysByName[name] = Function(n)
		namesByKey[Function(n)] = name
	}
}

// ParseKey resolves a key name such as "ctrl", "Left Shift", "page_up" or "F8".
func ParseKey(value string) (Key, error) {
	name := normalizeName(value)
	key, ok := keysByName[name]
	if !ok {
		return KeyUnknown, fmt.Errorf("unknown key %q: %w", value, ErrUnsupportedKey)
	}
	return key, nil
}

func (key Key) String() string {
	if name, ok := namesByKey[key]; ok {
		return name
	}
	return fmt.Sprintf("key(%d)", uint16(key))
}

// Matches reports whether a pressed key satisfies key. Side-neutral
// modifiers match both sides.
func (key Key) Matches(pressed Key) bool {
	if key == pressed {
		return true
	}
	switch key {
	case KeyCtrl:
		return pressed == KeyLeftCtrl || pressed == KeyRightCtrl
	case KeyShift:
		return pressed == KeyLeftShift || pressed == KeyRightShift
	case KeyAlt:
		return pressed == KeyLeftAlt || pressed == KeyRightAlt
	case KeyMeta:
		return pressed == KeyLeftMeta || pressed == KeyRightMeta
	default:
		return false
	}
}

// Modifier returns the modifier flag a key contributes, if any.
func (key Key) Modifier() Modifier {
	switch key {
	case KeyCtrl, KeyLeftCtrl, KeyRightCtrl:
		return ModCtrl
	case KeyShift, KeyLeftShift, KeyRightShift:
		return ModShift
	case KeyAlt, KeyLeftAlt, KeyRightAlt:
		return ModAlt
	case KeyMeta, KeyLeftMeta, KeyRightMeta:
		return ModMeta
	default:
		return 0
	}
}

// IsModifier reports whether key is a modifier key.
func (key Key) IsModifier() bool {
	return key.Modifier() != 0
}

// Modifier is a set of held modifier keys.
type Modifier uint8

const (
	ModCtrl Modifier = 1 << iota
	ModShift
	ModAlt
	ModMeta
)

// Chord is a key plus the modifiers that must be held with it.
type Chord struct {
	Modifiers Modifier
	Key       Key
}

// ParseChord parses "ctrl", "f8" or "ctrl+shift+a".
func ParseChord(value string) (Chord, error) {
	parts := strings.Split(value, "+")
	key, err := ParseKey(parts[len(parts)-1])
	if err != nil {
		return Chord{}, err
	}

	chord := Chord{Key: key}
	for _, part := range parts[:len(parts)-1] {
		modifierKey, err := ParseKey(part)
		if err != nil {
			return Chord{}, err
		}
		if !modifierKey.IsModifier() {
			return Chord{}, fmt.Errorf("%q in %q is not a modifier: %w", part, value, ErrUnsupportedKey)
		}
		chord.Modifiers |= modifierKey.Modifier()
	}
	return chord, nil
}

func (chord Chord) String() string {
	var parts []string
	for _, entry := range []struct {
		flag Modifier
		name string
	}{{ModCtrl, "ctrl"}, {ModShift, "shift"}, {ModAlt, "alt"}, {ModMeta, "windows"}} {
		if chord.Modifiers&entry.flag != 0 {
			parts = append(parts, entry.name)
		}
	}
	return strings.Join(append(parts, chord.Key.String()), "+")
}

func normalizeName(value string) string {
	name := strings.ToLower(strings.TrimSpace(value))
	name = strings.NewReplacer("_", " ", "-", " ").Replace(name)
	return strings.Join(strings.Fields(name), " ")
}
