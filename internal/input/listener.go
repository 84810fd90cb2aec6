package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Listener is the only writer of a State. It receives raw key events and
// keeps an action held while any of its bound keys is down.
type Listener struct {
	State    *State
	Bindings Bindings
	down     map[int32]bool
}

func NewListener(state *State, bindings Bindings) *Listener {
	if bindings == nil {
		bindings = DefaultBindings()
	}
	return &Listener{State: state, Bindings: bindings, down: make(map[int32]bool)}
}

// KeyDown marks the bound action held. Unbound keys are ignored.
func (l *Listener) KeyDown(key int32) {
	action, ok := l.Bindings[key]
	if !ok {
		return
	}
	if l.down == nil {
		l.down = make(map[int32]bool)
	}
	l.down[key] = true
	l.State.Set(action, true)
}

// KeyUp releases the bound action unless another key bound to it is still down.
func (l *Listener) KeyUp(key int32) {
	action, ok := l.Bindings[key]
	if !ok {
		return
	}
	delete(l.down, key)
	for k := range l.down {
		if l.Bindings[k] == action {
			return
		}
	}
	l.State.Set(action, false)
}

// Reset forgets every key, e.g. when the window loses focus.
func (l *Listener) Reset() {
	clear(l.down)
	l.State.Reset()
}

// RaylibSource turns raylib's per-frame key edges into Listener events.
// Must be polled on the window thread, once per frame.
type RaylibSource struct {
	keys []int32
}

func NewRaylibSource(b Bindings) *RaylibSource {
	return &RaylibSource{keys: b.Keys()}
}

func (r *RaylibSource) Poll(l *Listener) {
	for _, key := range r.keys {
		if rl.IsKeyPressed(key) {
			l.KeyDown(key)
		}
		if rl.IsKeyReleased(key) {
			l.KeyUp(key)
		}
	}
}
