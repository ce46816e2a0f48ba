package preferences

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrUnknownColor indicates a color value that is neither a known name nor hex.
var ErrUnknownColor = errors.New("unknown color")

// ParseColor accepts SVG color names ("snow", "Light Gray") and the hex
// forms #RGB, #RRGGBB and #AARRGGBB.
func ParseColor(value string) (color.NRGBA, error) {
	raw := strings.TrimSpace(value)
	if strings.HasPrefix(raw, "#") {
		return parseHexColor(raw)
	}

	name := strings.ToLower(strings.ReplaceAll(raw, " ", ""))
	if name == "transparent" {
		return color.NRGBA{}, nil
	}
	named, ok := colornames.Map[name]
	if !ok {
		return color.NRGBA{}, fmt.Errorf("%q: %w", value, ErrUnknownColor)
	}
	return color.NRGBA{R: named.R, G: named.G, B: named.B, A: named.A}, nil
}

// MustParseColor returns the color or panics on error.
func MustParseColor(value string) color.NRGBA {
	parsed, err := ParseColor(value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func parseHexColor(raw string) (color.NRGBA, error) {
	digits := raw[1:]
	parsed, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%q: %w", raw, ErrUnknownColor)
	}
	value := uint32(parsed)

	switch len(digits) {
	case 3:
		return color.NRGBA{
			R: uint8(value>>8&0xf) * 0x11,
			G: uint8(value>>4&0xf) * 0x11,
			B: uint8(value&0xf) * 0x11,
			A: 0xff,
		}, nil
	case 6:
		return color.NRGBA{R: uint8(value >> 16), G: uint8(value >> 8), B: uint8(value), A: 0xff}, nil
	case 8:
		return color.NRGBA{A: uint8(value >> 24), R: uint8(value >> 16), G: uint8(value >> 8), B: uint8(value)}, nil
	default:
		return color.NRGBA{}, fmt.Errorf("%q: %w", raw, ErrUnknownColor)
	}
}
