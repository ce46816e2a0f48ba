// Package hotkey listens for global key presses while the overlay is not
// focused.
package hotkey

import (
	"errors"
	"log/slog"
)

var (
	// ErrUnsupportedKey indicates a key or chord the backend cannot watch.
	ErrUnsupportedKey = errors.New("unsupported key")
	// ErrUnsupportedPlatform indicates global hotkeys are unavailable here.
	ErrUnsupportedPlatform = errors.New("global hotkeys unsupported on this platform")
	// ErrAlreadyStarted indicates Register was called after Start.
	ErrAlreadyStarted = errors.New("listener already started")
)

// Listener delivers global key presses to registered handlers.
// Handlers run on the listener's own goroutine.
type Listener interface {
	Register(chord Chord, handler func()) error
	Start() error
	Stop()
}

// New returns the platform listener.
func New(logger *slog.Logger) Listener {
	if logger == nil {
		logger = slog.Default()
	}
	return newListener(logger)
}

type binding struct {
	chord   Chord
	handler func()
}
