package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"aicount/internal/core/model"
	"gopkg.in/yaml.v3"
)

const windowStateFileName = "window.yaml"

type yamlWindowState struct {
	WindowX int `yaml:"window_x"`
	WindowY int `yaml:"window_y"`
}

// LoadWindowPosition reads the last dragged window position.
// ok is false when nothing has been saved yet.
func LoadWindowPosition(appName string) (position model.Point, ok bool, err error) {
	statePath, err := resolveStatePath(appName)
	if err != nil {
		return model.Point{}, false, err
	}
	return loadWindowPositionFile(statePath)
}

// SaveWindowPosition writes the window position to YAML.
func SaveWindowPosition(appName string, position model.Point) error {
	statePath, err := resolveStatePath(appName)
	if err != nil {
		return err
	}
	return saveWindowPositionFile(statePath, position)
}

func loadWindowPositionFile(statePath string) (model.Point, bool, error) {
	rawData, err := os.ReadFile(statePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.Point{}, false, nil
		}
		return model.Point{}, false, fmt.Errorf("read window state: %w", err)
	}

	var fileData yamlWindowState
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return model.Point{}, false, fmt.Errorf("parse window state yaml: %w", err)
	}
	return model.Point{X: float32(fileData.WindowX), Y: float32(fileData.WindowY)}, true, nil
}

func saveWindowPositionFile(statePath string, position model.Point) error {
	if err := os.MkdirAll(filepath.Dir(statePath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlWindowState{
		WindowX: int(position.X),
		WindowY: int(position.Y),
	}
	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal window state yaml: %w", err)
	}

	if err := os.WriteFile(statePath, serialized, 0o644); err != nil {
		return fmt.Errorf("write window state: %w", err)
	}
	return nil
}

func resolveStatePath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, windowStateFileName), nil
}
