package physics

import (
	"capsulewalk/internal/backend"
	"fmt"
)

// BackendName is the registry key of the built-in engine.
const BackendName = "native"

func init() {
	backend.Register(BackendName, Engine{})
}

// Engine is the backend.Backend for PhysicsWorld.
type Engine struct{}

func (Engine) Name() string { return BackendName }

func (Engine) NewWorld(desc backend.WorldDesc) (backend.World, error) {
	if desc.Timestep <= 0 {
		return nil, fmt.Errorf("timestep must be positive, got %v", desc.Timestep)
	}
	if !isFinite(desc.Gravity) {
		return nil, fmt.Errorf("gravity must be finite, got %v", desc.Gravity)
	}
	return NewPhysicsWorld(desc.Gravity, desc.Timestep), nil
}

var _ backend.World = (*PhysicsWorld)(nil)
var _ backend.Body = (*RigidBody)(nil)
