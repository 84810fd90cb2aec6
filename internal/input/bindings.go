package input

import (
	"fmt"
	"sort"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bindings maps raylib key codes to actions.
type Bindings map[int32]Action

var keyNames = map[string]int32{
	"W":     rl.KeyW,
	"A":     rl.KeyA,
	"S":     rl.KeyS,
	"D":     rl.KeyD,
	"Z":     rl.KeyZ,
	"Q":     rl.KeyQ,
	"E":     rl.KeyE,
	"SPACE": rl.KeySpace,
	"UP":    rl.KeyUp,
	"DOWN":  rl.KeyDown,
	"LEFT":  rl.KeyLeft,
	"RIGHT": rl.KeyRight,
	"ENTER": rl.KeyEnter,
	"SHIFT": rl.KeyLeftShift,
}

// DefaultBindings is WASD plus arrows, Space to jump.
func DefaultBindings() Bindings {
	return Bindings{
		rl.KeyW:     Forward,
		rl.KeyUp:    Forward,
		rl.KeyS:     Back,
		rl.KeyDown:  Back,
		rl.KeyA:     Left,
		rl.KeyLeft:  Left,
		rl.KeyD:     Right,
		rl.KeyRight: Right,
		rl.KeySpace: Jump,
	}
}

// ParseBindings builds Bindings from action name -> key names.
func ParseBindings(byAction map[string][]string) (Bindings, error) {
	b := make(Bindings)
	for actionName, keys := range byAction {
		action, err := ParseAction(actionName)
		if err != nil {
			return nil, err
		}
		for _, name := range keys {
			key, ok := keyNames[strings.ToUpper(strings.TrimSpace(name))]
			if !ok {
				return nil, fmt.Errorf("action %s: unknown key %q", action, name)
			}
			if prev, dup := b[key]; dup && prev != action {
				return nil, fmt.Errorf("key %q bound to both %s and %s", name, prev, action)
			}
			b[key] = action
		}
	}
	return b, nil
}

// Keys returns the bound key codes in ascending order.
func (b Bindings) Keys() []int32 {
	keys := make([]int32, 0, len(b))
	for k := range b {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
