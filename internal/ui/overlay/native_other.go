//go:build !windows

package overlay

import "aicount/internal/core/model"

const nativeMoveSupported = false

// Fyne has no portable API for window placement or per-pixel transparency,
// so other platforms keep a regular undecorated window.
func (overlay *Window) applyNative(position model.Point) {
	overlay.logger.Debug("native overlay placement unavailable on this platform", "x", position.X, "y", position.Y)
}

func (overlay *Window) moveNative(model.Point) {}
