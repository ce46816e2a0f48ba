//go:build darwin || linux

package hotkey

import (
	"fmt"
	"log/slog"
	"sync"

	"golang.design/x/hotkey"
)

var systemKeys = map[Key]hotkey.Key{
	KeySpace:  hotkey.KeySpace,
	KeyEnter:  hotkey.KeyReturn,
	KeyEsc:    hotkey.KeyEscape,
	KeyDelete: hotkey.KeyDelete,
	KeyTab:    hotkey.KeyTab,
	KeyLeft:   hotkey.KeyLeft,
	KeyRight:  hotkey.KeyRight,
	KeyUp:     hotkey.KeyUp,
	KeyDown:   hotkey.KeyDown,

	Letter('a'): hotkey.KeyA,
	Letter('b'): hotkey.KeyB,
	Letter('c'): hotkey.KeyC,
	Letter('d'): hotkey.KeyD,
	Letter('e'): hotkey.KeyE,
	Letter('f'): hotkey.KeyF,
	Letter('g'): hotkey.KeyG,
	Letter('h'): hotkey.KeyH,
	Letter('i'): hotkey.KeyI,
	Letter('j'): hotkey.KeyJ,
	Letter('k'): hotkey.KeyK,
	Letter('l'): hotkey.KeyL,
	Letter('m'): hotkey.KeyM,
	Letter('n'): hotkey.KeyN,
	Letter('o'): hotkey.KeyO,
	Letter('p'): hotkey.KeyP,
	Letter('q'): hotkey.KeyQ,
	Letter('r'): hotkey.KeyR,
	Letter('s'): hotkey.KeyS,
	Letter('t'): hotkey.KeyT,
	Letter('u'): hotkey.KeyU,
	Letter('v'): hotkey.KeyV,
	Letter('w'): hotkey.KeyW,
	Letter('x'): hotkey.KeyX,
	Letter('y'): hotkey.KeyY,
	Letter('z'): hotkey.KeyZ,

	Digit(0): hotkey.Key0,
	Digit(1): hotkey.Key1,
	Digit(2): hotkey.Key2,
	Digit(3): hotkey.Key3,
	Digit(4): hotkey.Key4,
	Digit(5): hotkey.Key5,
	Digit(6): hotkey.Key6,
	Digit(7): hotkey.Key7,
	Digit(8): hotkey.Key8,
	Digit(9): hotkey.Key9,

	Function(1):  hotkey.KeyF1,
	Function(2):  hotkey.KeyF2,
	Function(3):  hotkey.KeyF3,
	Function(4):  hotkey.KeyF4,
	Function(5):  hotkey.KeyF5,
	Function(6):  hotkey.KeyF6,
	Function(7):  hotkey.KeyF7,
	Function(8):  hotkey.KeyF8,
	Function(9):  hotkey.KeyF9,
	Function(10): hotkey.KeyF10,
	Function(11): hotkey.KeyF11,
	Function(12): hotkey.KeyF12,
	Function(13): hotkey.KeyF13,
	Function(14): hotkey.KeyF14,
	Function(15): hotkey.KeyF15,
	Function(16): hotkey.KeyF16,
	Function(17): hotkey.KeyF17,
	Function(18): hotkey.KeyF18,
	Function(19): hotkey.KeyF19,
	Function(20): hotkey.KeyF20,
}

// systemListener registers chords with the OS through golang.design/x/hotkey.
// Bare modifier keys cannot be registered this way.
type systemListener struct {
	logger   *slog.Logger
	bindings []binding

	mu       sync.Mutex
	started  bool
	hotkeys  []*hotkey.Hotkey
	stopCh   chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

func newListener(logger *slog.Logger) Listener {
	return &systemListener{
		logger: logger,
		stopCh: make(chan struct{}),
	}
}

func (l *systemListener) Register(chord Chord, handler func()) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started {
		return ErrAlreadyStarted
	}
	if chord.Key.IsModifier() {
		return fmt.Errorf("%s needs a non-modifier key on this platform: %w", chord, ErrUnsupportedKey)
	}
	if _, ok := systemKeys[chord.Key]; !ok {
		return fmt.Errorf("%s: %w", chord, ErrUnsupportedKey)
	}
	l.bindings = append(l.bindings, binding{chord: chord, handler: handler})
	return nil
}

func (l *systemListener) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.started {
		return ErrAlreadyStarted
	}
	l.started = true

	for _, b := range l.bindings {
		hk := hotkey.New(systemModifiers(b.chord.Modifiers), systemKeys[b.chord.Key])
		if err := hk.Register(); err != nil {
			l.unregisterLocked()
			return fmt.Errorf("register hotkey %s: %w", b.chord, err)
		}
		l.hotkeys = append(l.hotkeys, hk)
		l.logger.Debug("hotkey registered", "chord", b.chord.String())

		l.wg.Add(1)
		go l.listen(hk, b.handler)
	}
	return nil
}

func (l *systemListener) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopCh)
		l.mu.Lock()
		l.unregisterLocked()
		l.mu.Unlock()
		l.wg.Wait()
	})
}

func (l *systemListener) listen(hk *hotkey.Hotkey, handler func()) {
	defer l.wg.Done()
	keydown := hk.Keydown()
	for {
		select {
		case <-l.stopCh:
			return
		case _, ok := <-keydown:
			if !ok {
				return
			}
			handler()
		}
	}
}

func (l *systemListener) unregisterLocked() {
	for _, hk := range l.hotkeys {
		if err := hk.Unregister(); err != nil {
			l.logger.Warn("unregister hotkey", "err", err)
		}
	}
	l.hotkeys = nil
}

func systemModifiers(modifiers Modifier) []hotkey.Modifier {
	var result []hotkey.Modifier
	for _, flag := range []Modifier{ModCtrl, ModShift, ModAlt, ModMeta} {
		if modifiers&flag == 0 {
			continue
		}
		if mod, ok := modifierMap[flag]; ok {
			result = append(result, mod)
		}
	}
	return result
}
