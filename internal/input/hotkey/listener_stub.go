//go:build !windows && !darwin && !linux

package hotkey

import "log/slog"

type unsupportedListener struct{}

func newListener(_ *slog.Logger) Listener {
	return unsupportedListener{}
}

func (unsupportedListener) Register(Chord, func()) error {
	return ErrUnsupportedPlatform
}

func (unsupportedListener) Start() error {
	return ErrUnsupportedPlatform
}

func (unsupportedListener) Stop() {}
