package hotkey

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		raw      string
		expected Key
	}{
		{raw: "Ctrl", expected: KeyCtrl},
		{raw: "shift", expected: KeyShift},
		{raw: "Left Shift", expected: KeyLeftShift},
		{raw: "right_ctrl", expected: KeyRightCtrl},
		{raw: "a", expected: Letter('a')},
		{raw: "Z", expected: Letter('z')},
		{raw: "7", expected: Digit(7)},
		{raw: "F8", expected: Function(8)},
		{raw: "f24", expected: Function(24)},
		{raw: "page-up", expected: KeyPageUp},
		{raw: " esc ", expected: KeyEsc},
	}

	for _, tc := range tests {
		got, err := ParseKey(tc.raw)
		require.NoError(t, err, tc.raw)
		assert.Equal(t, tc.expected, got, tc.raw)
	}
}

func TestParseKeyUnknown(t *testing.T) {
	for _, raw := range []string{"", "f25", "hyper", "ctrl+a"} {
		_, err := ParseKey(raw)
		assert.ErrorIs(t, err, ErrUnsupportedKey, raw)
	}
}

func TestKeyString(t *testing.T) {
	assert.Equal(t, "ctrl", KeyCtrl.String())
	assert.Equal(t, "f8", Function(8).String())
	assert.Equal(t, "q", Letter('Q').String())
}

func TestParseChord(t *testing.T) {
	chord, err := ParseChord("ctrl+shift+F1")
	require.NoError(t, err)
	assert.Equal(t, ModCtrl|ModShift, chord.Modifiers)
	assert.Equal(t, Function(1), chord.Key)
	assert.Equal(t, "ctrl+shift+f1", chord.String())

	bare, err := ParseChord("Ctrl")
	require.NoError(t, err)
	assert.Equal(t, Chord{Key: KeyCtrl}, bare)

	_, err = ParseChord("a+b")
	assert.ErrorIs(t, err, ErrUnsupportedKey)
}

func TestMatchesSides(t *testing.T) {
	assert.True(t, KeyCtrl.Matches(KeyLeftCtrl))
	assert.True(t, KeyCtrl.Matches(KeyRightCtrl))
	assert.False(t, KeyLeftCtrl.Matches(KeyRightCtrl))
	assert.False(t, KeyShift.Matches(KeyCtrl))
	assert.True(t, Letter('a').Matches(Letter('a')))
}

var start = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

func TestDispatcherBareModifier(t *testing.T) {
	d := newDispatcher()
	count := 0
	d.add(Chord{Key: KeyCtrl}, func() { count++ })

	for _, handler := range d.keyDown(KeyLeftCtrl, start) {
		handler()
	}
	// auto-repeat
	for _, handler := range d.keyDown(KeyLeftCtrl, start.Add(500*time.Millisecond)) {
		handler()
	}
	d.keyUp(KeyLeftCtrl)
	for _, handler := range d.keyDown(KeyRightCtrl, start.Add(time.Second)) {
		handler()
	}

	assert.Equal(t, 2, count)
}

func TestDispatcherChordNeedsModifiers(t *testing.T) {
	d := newDispatcher()
	fired := 0
	d.add(Chord{Modifiers: ModCtrl, Key: Function(1)}, func() { fired++ })

	assert.Empty(t, d.keyDown(Function(1), start))
	d.keyUp(Function(1))

	assert.Empty(t, d.keyDown(KeyLeftCtrl, start))
	handlers := d.keyDown(Function(1), start)
	require.Len(t, handlers, 1)
	handlers[0]()
	assert.Equal(t, 1, fired)
}

func TestDispatcherSeparateBindings(t *testing.T) {
	d := newDispatcher()
	var calls []string
	d.add(Chord{Key: KeyCtrl}, func() { calls = append(calls, "count") })
	d.add(Chord{Key: KeyShift}, func() { calls = append(calls, "mode") })

	for _, key := range []Key{KeyLeftShift, KeyLeftCtrl} {
		for _, handler := range d.keyDown(key, start) {
			handler()
		}
		d.keyUp(key)
	}

	assert.Equal(t, []string{"mode", "count"}, calls)
}

func TestDispatcherHeldKeyRepeatsFireOnce(t *testing.T) {
	d := newDispatcher()
	count := 0
	d.add(Chord{Key: KeyCtrl}, func() { count++ })

	at := start
	for i := 0; i < 100; i++ {
		for _, handler := range d.keyDown(KeyLeftCtrl, at) {
			handler()
		}
		at = at.Add(33 * time.Millisecond)
	}

	assert.Equal(t, 1, count)
}

func TestDispatcherRecoversLostKeyUp(t *testing.T) {
	d := newDispatcher()
	count := 0
	d.add(Chord{Key: KeyCtrl}, func() { count++ })

	for _, handler := range d.keyDown(KeyLeftCtrl, start) {
		handler()
	}
	// The up went to another desktop; the next press comes much later.
	for _, handler := range d.keyDown(KeyLeftCtrl, start.Add(time.Minute)) {
		handler()
	}

	assert.Equal(t, 2, count)
}
