package hotkey

import "time"

// staleKeyAfter bounds how long a held key may go without a down event.
// Auto-repeat resends downs well inside it, even after the longest initial
// repeat delay Windows allows (one second). A down after a longer silence
// means the matching up was lost, e.g. to the secure desktop, and counts as
// a new press.
const staleKeyAfter = 1500 * time.Millisecond

// dispatcher turns raw key transitions into handler calls. It fires on the
// down transition only, so auto-repeat while a key is held is ignored.
type dispatcher struct {
	bindings []binding
	held     map[Key]time.Time
}

func newDispatcher() *dispatcher {
	return &dispatcher{held: make(map[Key]time.Time)}
}

func (d *dispatcher) add(chord Chord, handler func()) {
	d.bindings = append(d.bindings, binding{chord: chord, handler: handler})
}

// keyDown records a press at the given time and returns the handlers it
// triggers.
func (d *dispatcher) keyDown(key Key, at time.Time) []func() {
	last, held := d.held[key]
	d.held[key] = at
	if held && at.Sub(last) < staleKeyAfter {
		return nil
	}

	modifiers := d.heldModifiers(key)
	var handlers []func()
	for _, b := range d.bindings {
		if !b.chord.Key.Matches(key) {
			continue
		}
		if modifiers&b.chord.Modifiers != b.chord.Modifiers {
			continue
		}
		handlers = append(handlers, b.handler)
	}
	return handlers
}

func (d *dispatcher) keyUp(key Key) {
	delete(d.held, key)
}

// heldModifiers excludes the key just pressed so a bare modifier binding
// does not count itself.
func (d *dispatcher) heldModifiers(pressed Key) Modifier {
	var modifiers Modifier
	for key := range d.held {
		if key == pressed {
			continue
		}
		modifiers |= key.Modifier()
	}
	return modifiers
}
