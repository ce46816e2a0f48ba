//go:build windows

package hotkey

const (
	vkBack     uint32 = 0x08
	vkTab      uint32 = 0x09
	vkReturn   uint32 = 0x0D
	vkShift    uint32 = 0x10
	vkControl  uint32 = 0x11
	vkMenu     uint32 = 0x12
	vkPause    uint32 = 0x13
	vkCapital  uint32 = 0x14
	vkEscape   uint32 = 0x1B
	vkSpace    uint32 = 0x20
	vkPrior    uint32 = 0x21
	vkNext     uint32 = 0x22
	vkEnd      uint32 = 0x23
	vkHome     uint32 = 0x24
	vkLeft     uint32 = 0x25
	vkUp       uint32 = 0x26
	vkRight    uint32 = 0x27
	vkDown     uint32 = 0x28
	vkSnapshot uint32 = 0x2C
	vkInsert   uint32 = 0x2D
	vkDelete   uint32 = 0x2E
	vkLWin     uint32 = 0x5B
	vkRWin     uint32 = 0x5C
	vkLShift   uint32 = 0xA0
	vkRShift   uint32 = 0xA1
	vkLControl uint32 = 0xA2
	vkRControl uint32 = 0xA3
	vkLMenu    uint32 = 0xA4
	vkRMenu    uint32 = 0xA5

	llkhfExtended uint32 = 0x01
)

var keysByVK = map[uint32]Key{
	vkBack:     KeyBackspace,
	vkTab:      KeyTab,
	vkReturn:   KeyEnter,
	vkPause:    KeyPause,
	vkCapital:  KeyCapsLock,
	vkEscape:   KeyEsc,
	vkSpace:    KeySpace,
	vkPrior:    KeyPageUp,
	vkNext:     KeyPageDown,
	vkEnd:      KeyEnd,
	vkHome:     KeyHome,
	vkLeft:     KeyLeft,
	vkUp:       KeyUp,
	vkRight:    KeyRight,
	vkDown:     KeyDown,
	vkSnapshot: KeyPrintScreen,
	vkInsert:   KeyInsert,
	vkDelete:   KeyDelete,
	vkLWin:     KeyLeftMeta,
	vkRWin:     KeyRightMeta,
	vkLShift:   KeyLeftShift,
	vkRShift:   KeyRightShift,
	vkLControl: KeyLeftCtrl,
	vkRControl: KeyRightCtrl,
	vkLMenu:    KeyLeftAlt,
	vkRMenu:    KeyRightAlt,

	0x41: Letter('a'),
	0x42: Letter('b'),
	0x43: Letter('c'),
	0x44: Letter('d'),
	0x45: Letter('e'),
	0x46: Letter('f'),
	0x47: Letter('g'),
	0x48: Letter('h'),
	0x49: Letter('i'),
	0x4A: Letter('j'),
	0x4B: Letter('k'),
	0x4C: Letter('l'),
	0x4D: Letter('m'),
	0x4E: Letter('n'),
	0x4F: Letter('o'),
	0x50: Letter('p'),
	0x51: Letter('q'),
	0x52: Letter('r'),
	0x53: Letter('s'),
	0x54: Letter('t'),
	0x55: Letter('u'),
	0x56: Letter('v'),
	0x57: Letter('w'),
	0x58: Letter('x'),
	0x59: Letter('y'),
	0x5A: Letter('z'),
	0x30: Digit(0),
	0x31: Digit(1),
	0x32: Digit(2),
	0x33: Digit(3),
	0x34: Digit(4),
	0x35: Digit(5),
	0x36: Digit(6),
	0x37: Digit(7),
	0x38: Digit(8),
	0x39: Digit(9),
	0x70: Function(1),
	0x71: Function(2),
	0x72: Function(3),
	0x73: Function(4),
	0x74: Function(5),
	0x75: Function(6),
	0x76: Function(7),
	0x77: Function(8),
	0x78: Function(9),
	0x79: Function(10),
	0x7A: Function(11),
	0x7B: Function(12),
	0x7C: Function(13),
	0x7D: Function(14),
	0x7E: Function(15),
	0x7F: Function(16),
	0x80: Function(17),
	0x81: Function(18),
	0x82: Function(19),
	0x83: Function(20),
	0x84: Function(21),
	0x85: Function(22),
	0x86: Function(23),
	0x87: Function(24),
}

// keyFromVK maps a low-level hook code to a Key. The hook usually reports
// side-specific modifier codes; the generic ones are resolved with the
// extended-key flag.
func keyFromVK(vk, flags uint32) (Key, bool) {
	extended := flags&llkhfExtended != 0
	switch vk {
	case vkControl:
		if extended {
			return KeyRightCtrl, true
		}
		return KeyLeftCtrl, true
	case vkMenu:
		if extended {
			return KeyRightAlt, true
		}
		return KeyLeftAlt, true
	case vkShift:
		return KeyLeftShift, true
	}
	key, ok := keysByVK[vk]
	return key, ok
}
