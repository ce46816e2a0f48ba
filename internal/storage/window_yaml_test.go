package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aicount/internal/core/model"
)

func TestWindowPositionRoundTrip(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), "nested", windowStateFileName)

	require.NoError(t, saveWindowPositionFile(statePath, model.Point{X: 640, Y: -20}))

	position, ok, err := loadWindowPositionFile(statePath)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, model.Point{X: 640, Y: -20}, position)
}

func TestWindowPositionMissingFile(t *testing.T) {
	_, ok, err := loadWindowPositionFile(filepath.Join(t.TempDir(), windowStateFileName))

	require.NoError(t, err)
	assert.False(t, ok)
}

func TestWindowPositionCorruptFile(t *testing.T) {
	statePath := filepath.Join(t.TempDir(), windowStateFileName)
	require.NoError(t, os.WriteFile(statePath, []byte("window_x: [oops"), 0o644))

	_, ok, err := loadWindowPositionFile(statePath)
	assert.Error(t, err)
	assert.False(t, ok)
}
