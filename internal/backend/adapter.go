package backend

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultTimestep is one display refresh at 60Hz.
const DefaultTimestep = float32(1.0 / 60.0)

// CreateWorld builds a world with constant gravity on the given backend.
func CreateWorld(b Backend, gravity rl.Vector3, timestep float32) (World, error) {
	if b == nil {
		return nil, &InitializationError{Err: ErrBackendUnavailable}
	}
	if timestep <= 0 {
		timestep = DefaultTimestep
	}
	w, err := b.NewWorld(WorldDesc{Gravity: gravity, Timestep: timestep})
	if err != nil {
		return nil, &InitializationError{Backend: b.Name(), Err: err}
	}
	if w == nil {
		return nil, &InitializationError{Backend: b.Name(), Err: ErrBackendUnavailable}
	}
	return w, nil
}

// CreateFixedBody registers an immovable collider.
func CreateFixedBody(w World, shape Shape, t Transform) (Body, error) {
	if w == nil {
		return nil, fmt.Errorf("create fixed body: %w", ErrUninitialized)
	}
	return w.CreateFixedBody(shape, t)
}

// CreateDynamicBody registers a body subject to gravity and velocity commands.
func CreateDynamicBody(w World, shape Shape, position rl.Vector3) (Body, error) {
	if w == nil {
		return nil, fmt.Errorf("create dynamic body: %w", ErrUninitialized)
	}
	return w.CreateDynamicBody(shape, position)
}
