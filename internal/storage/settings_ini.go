package storage

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"aicount/internal/ui/preferences"
	"gopkg.in/ini.v1"
)

const (
	settingsSection        = "Settings"
	legacyIndicatorSection = "AdditionalText"
)

var (
	// ErrMissingKey indicates a required key is absent from the config file.
	ErrMissingKey = errors.New("missing required key")
	// ErrInvalidValue indicates a key whose value cannot be used.
	ErrInvalidValue = errors.New("invalid value")
)

// ResolveConfigPath returns path unchanged unless it is relative and missing
// from the working directory, in which case a file of the same name next to
// the executable is preferred.
func ResolveConfigPath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if _, err := os.Stat(path); err == nil {
		return path
	}
	executable, err := os.Executable()
	if err != nil {
		return path
	}
	candidate := filepath.Join(filepath.Dir(executable), path)
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return path
}

// LoadSettings reads user preferences from an INI file.
func LoadSettings(path string) (preferences.Settings, error) {
	rawData, err := os.ReadFile(path)
	if err != nil {
		return preferences.DefaultSettings(), fmt.Errorf("read settings file: %w", err)
	}
	return ParseSettings(rawData)
}

// ParseSettings decodes INI data. The counter limits and both hotkeys are
// required; every other key falls back to its default.
func ParseSettings(data []byte) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	file, err := ini.LoadSources(ini.LoadOptions{
		InsensitiveKeys:     true,
		IgnoreInlineComment: true,
	}, data)
	if err != nil {
		return settings, fmt.Errorf("parse settings ini: %w", err)
	}
	section, err := file.GetSection(settingsSection)
	if err != nil {
		return settings, fmt.Errorf("section [%s]: %w", settingsSection, ErrMissingKey)
	}
	reader := sectionReader{section: section}

	if settings.ResetNumber, err = reader.requiredLimit("reset_number"); err != nil {
		return settings, err
	}
	if settings.ResetNumber2, err = reader.requiredLimit("reset_number_2"); err != nil {
		return settings, err
	}
	if settings.ChangeHotkey, err = reader.requiredString("change_hotkey"); err != nil {
		return settings, err
	}
	if settings.CountHotkey, err = reader.requiredString("count_hotkey"); err != nil {
		return settings, err
	}

	if err := applyIndicatorToggle(&settings, file, reader); err != nil {
		return settings, err
	}
	if err := applyStyle(&settings, reader); err != nil {
		return settings, err
	}
	return settings, nil
}

func applyIndicatorToggle(settings *preferences.Settings, file *ini.File, reader sectionReader) error {
	readers := []sectionReader{reader}
	if legacy, err := file.GetSection(legacyIndicatorSection); err == nil {
		readers = append(readers, sectionReader{section: legacy})
	}
	for _, candidate := range readers {
		found, err := candidate.optionalBool(&settings.SmallText, "small_text", "display_additional_text")
		if err != nil || found {
			return err
		}
	}
	return nil
}

func applyStyle(settings *preferences.Settings, reader sectionReader) error {
	if value, ok := reader.lookup("prefix_text"); ok {
		settings.PrefixText = value
	}

	colors := []struct {
		key    string
		target *color.NRGBA
	}{
		{key: "font_color", target: &settings.FontColor},
		{key: "outline_color", target: &settings.OutlineColor},
		{key: "small_font_color", target: &settings.SmallFontColor},
	}
	for _, entry := range colors {
		if err := reader.optionalColor(entry.target, entry.key); err != nil {
			return err
		}
	}
	settings.SwitchFontColor = settings.FontColor
	if err := reader.optionalColor(&settings.SwitchFontColor, "switch_font_color"); err != nil {
		return err
	}

	ints := []struct {
		keys   []string
		target *int
		min    int
	}{
		{keys: []string{"text_x_offset", "x_offset"}, target: &settings.TextXOffset, min: math.MinInt},
		{keys: []string{"text_y_offset", "y_offset"}, target: &settings.TextYOffset, min: math.MinInt},
		{keys: []string{"font_size"}, target: &settings.FontSize, min: 1},
		{keys: []string{"small_font_size"}, target: &settings.SmallFontSize, min: 1},
	}
	for _, entry := range ints {
		if _, err := reader.optionalInt(entry.target, entry.min, entry.keys...); err != nil {
			return err
		}
	}

	foundX, err := reader.optionalInt(&settings.WindowX, math.MinInt, "window_x")
	if err != nil {
		return err
	}
	foundY, err := reader.optionalInt(&settings.WindowY, math.MinInt, "window_y")
	if err != nil {
		return err
	}
	settings.WindowPositionSet = foundX || foundY
	return nil
}

type sectionReader struct {
	section *ini.Section
}

// lookup returns the trimmed value of the first present key.
func (reader sectionReader) lookup(keys ...string) (string, bool) {
	for _, key := range keys {
		if reader.section.HasKey(key) {
			return strings.TrimSpace(reader.section.Key(key).String()), true
		}
	}
	return "", false
}

func (reader sectionReader) requiredLimit(key string) (int, error) {
	if _, ok := reader.lookup(key); !ok {
		return 0, fmt.Errorf("%s: %w", key, ErrMissingKey)
	}
	value := 0
	if _, err := reader.optionalInt(&value, 1, key); err != nil {
		return 0, err
	}
	return value, nil
}

func (reader sectionReader) requiredString(key string) (string, error) {
	value, ok := reader.lookup(key)
	if !ok {
		return "", fmt.Errorf("%s: %w", key, ErrMissingKey)
	}
	if value == "" {
		return "", fmt.Errorf("%s is empty: %w", key, ErrInvalidValue)
	}
	return value, nil
}

func (reader sectionReader) optionalInt(target *int, min int, keys ...string) (bool, error) {
	for _, key := range keys {
		if !reader.section.HasKey(key) {
			continue
		}
		value, err := reader.section.Key(key).Int()
		if err != nil {
			return true, fmt.Errorf("%s=%q is not an integer: %w", key, reader.section.Key(key).String(), ErrInvalidValue)
		}
		if value < min {
			return true, fmt.Errorf("%s=%d is below %d: %w", key, value, min, ErrInvalidValue)
		}
		*target = value
		return true, nil
	}
	return false, nil
}

func (reader sectionReader) optionalBool(target *bool, keys ...string) (bool, error) {
	for _, key := range keys {
		if !reader.section.HasKey(key) {
			continue
		}
		value, err := reader.section.Key(key).Bool()
		if err != nil {
			return true, fmt.Errorf("%s=%q is not a boolean: %w", key, reader.section.Key(key).String(), ErrInvalidValue)
		}
		*target = value
		return true, nil
	}
	return false, nil
}

func (reader sectionReader) optionalColor(target *color.NRGBA, key string) error {
	raw, ok := reader.lookup(key)
	if !ok {
		return nil
	}
	value, err := preferences.ParseColor(raw)
	if err != nil {
		return fmt.Errorf("%s: %v: %w", key, err, ErrInvalidValue)
	}
	*target = value
	return nil
}
