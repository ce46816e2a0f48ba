package preferences

import (
	"image/color"

	"aicount/internal/core/model"
)

// Settings defines the user preferences read from config.ini.
type Settings struct {
	ResetNumber  int
	ResetNumber2 int
	ChangeHotkey string
	CountHotkey  string

	SmallText       bool
	PrefixText      string
	FontColor       color.NRGBA
	SwitchFontColor color.NRGBA
	OutlineColor    color.NRGBA
	SmallFontColor  color.NRGBA
	TextXOffset     int
	TextYOffset     int
	FontSize        int
	SmallFontSize   int

	WindowX int
	WindowY int
	// WindowPositionSet is true when window_x or window_y came from the file.
	WindowPositionSet bool
}

// DefaultSettings returns default settings for AIcount.
func DefaultSettings() Settings {
	return Settings{
		ResetNumber:     2,
		ResetNumber2:    3,
		ChangeHotkey:    "shift",
		CountHotkey:     "ctrl",
		SmallText:       true,
		PrefixText:      "AI",
		FontColor:       MustParseColor("snow"),
		SwitchFontColor: MustParseColor("snow"),
		OutlineColor:    MustParseColor("black"),
		SmallFontColor:  MustParseColor("red"),
		TextXOffset:     -70,
		TextYOffset:     30,
		FontSize:        24,
		SmallFontSize:   9,
		WindowX:         100,
		WindowY:         100,
	}
}

// CounterConfig converts settings to CounterConfig.
func (settings Settings) CounterConfig() model.CounterConfig {
	return model.CounterConfig{
		PrimaryLimit:   settings.ResetNumber,
		SecondaryLimit: settings.ResetNumber2,
	}
}

// StyleConfig converts settings to StyleConfig.
func (settings Settings) StyleConfig() model.StyleConfig {
	return model.StyleConfig{
		Prefix:            settings.PrefixText,
		FontColor:         settings.FontColor,
		SwitchFontColor:   settings.SwitchFontColor,
		OutlineColor:      settings.OutlineColor,
		IndicatorColor:    settings.SmallFontColor,
		FontSize:          float32(settings.FontSize),
		IndicatorFontSize: float32(settings.SmallFontSize),
		ShowIndicator:     settings.SmallText,
		IndicatorOffset: model.Point{
			X: float32(settings.TextXOffset),
			Y: float32(settings.TextYOffset),
		},
		WindowPosition: model.Point{
			X: float32(settings.WindowX),
			Y: float32(settings.WindowY),
		},
	}
}
