// Package input turns keyboard events into a set of held logical actions.
package input

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Action is a logical control, independent of the physical key.
type Action int

const (
	Forward Action = iota
	Back
	Left
	Right
	Jump
	actionCount
)

var actionNames = [actionCount]string{"forward", "back", "left", "right", "jump"}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction maps a config name such as "forward" to its Action.
func ParseAction(name string) (Action, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Actions lists every action in evaluation order.
func Actions() []Action {
	return []Action{Forward, Back, Left, Right, Jump}
}

// Reader is the read-only view the controller gets.
type Reader interface {
	Held(a Action) bool
}

// State holds one flag per action. Each flag has a single writer (the event
// source) and a single reader (the tick), so atomics are all it needs.
type State struct {
	held [actionCount]atomic.Bool
}

func NewState() *State {
	return &State{}
}

// Set records the latest event for an action. Last write wins.
func (s *State) Set(a Action, held bool) {
	if a < 0 || a >= actionCount {
		return
	}
	s.held[a].Store(held)
}

func (s *State) Held(a Action) bool {
	if a < 0 || a >= actionCount {
		return false
	}
	return s.held[a].Load()
}

// Reset releases every action, e.g. when the window loses focus.
func (s *State) Reset() {
	for i := range s.held {
		s.held[i].Store(false)
	}
}

// AnyMovement reports whether a planar movement key is held.
func (s *State) AnyMovement() bool {
	return s.Held(Forward) || s.Held(Back) || s.Held(Left) || s.Held(Right)
}
