//go:build windows

package hotkey

import (
	"io"
	"log/slog"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const llkhfInjected uint32 = 0x10

func TestHookCountsInjectedPresses(t *testing.T) {
	listener := newListener(slog.New(slog.NewTextHandler(io.Discard, nil))).(*windowsListener)
	count := 0
	require.NoError(t, listener.Register(Chord{Key: KeyCtrl}, func() { count++ }))

	down := keyboardLLHookStruct{VkCode: vkLControl, Flags: llkhfInjected}
	listener.handleKeyboardHook(uintptr(wmKeyDown), uintptr(unsafe.Pointer(&down)))

	require.Len(t, listener.pending, 1)
	(<-listener.pending)()
	assert.Equal(t, 1, count)

	up := keyboardLLHookStruct{VkCode: vkLControl, Flags: llkhfInjected}
	listener.handleKeyboardHook(uintptr(wmKeyUp), uintptr(unsafe.Pointer(&up)))
	assert.Empty(t, listener.dispatcher.held)
}
