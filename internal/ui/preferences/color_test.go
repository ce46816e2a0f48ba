package preferences

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		raw      string
		expected color.NRGBA
	}{
		{raw: "snow", expected: color.NRGBA{R: 255, G: 250, B: 250, A: 255}},
		{raw: "Red", expected: color.NRGBA{R: 255, A: 255}},
		{raw: " black ", expected: color.NRGBA{A: 255}},
		{raw: "Light Gray", expected: color.NRGBA{R: 211, G: 211, B: 211, A: 255}},
		{raw: "#fff", expected: color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{raw: "#1e90ff", expected: color.NRGBA{R: 0x1e, G: 0x90, B: 0xff, A: 255}},
		{raw: "#801e90ff", expected: color.NRGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0x80}},
		{raw: "transparent", expected: color.NRGBA{}},
	}

	for _, tc := range tests {
		got, err := ParseColor(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.expected, got, tc.raw)
	}
}

func TestParseColorRejectsUnknown(t *testing.T) {
	for _, raw := range []string{"", "notacolor", "#12", "#zzzzzz", "#12345"} {
		_, err := ParseColor(raw)
		assert.ErrorIs(t, err, ErrUnknownColor, raw)
	}
}

func TestDefaultSettingsStyle(t *testing.T) {
	style := DefaultSettings().StyleConfig()

	assert.Equal(t, "AI", style.Prefix)
	assert.Equal(t, MustParseColor("snow"), style.FontColor)
	assert.Equal(t, MustParseColor("black"), style.OutlineColor)
	assert.Equal(t, MustParseColor("red"), style.IndicatorColor)
	assert.Equal(t, float32(-70), style.IndicatorOffset.X)
	assert.Equal(t, float32(30), style.IndicatorOffset.Y)
	assert.True(t, style.ShowIndicator)
}
