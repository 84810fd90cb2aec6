// Package backend declares the capability surface a physics engine must
// provide to drive the character demo. Concrete engines register themselves
// here from an init function and are resolved once at startup.
package backend

import rl "github.com/gen2brain/raylib-go/raylib"

// BodyKind distinguishes immovable bodies from simulated ones.
type BodyKind int

const (
	Fixed BodyKind = iota
	Dynamic
)

func (k BodyKind) String() string {
	switch k {
	case Fixed:
		return "fixed"
	case Dynamic:
		return "dynamic"
	}
	return "unknown"
}

// Transform places a fixed body in the world. Rotation is Euler degrees.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3
}

// WorldDesc describes a world to construct.
type WorldDesc struct {
	Gravity  rl.Vector3
	Timestep float32 // seconds per Step
}

// Ray is a half-line query. Direction need not be normalized.
type Ray struct {
	Origin    rl.Vector3
	Direction rl.Vector3
}

// RayHit describes the closest intersection of a ray cast.
type RayHit struct {
	Body   Body
	Point  rl.Vector3
	Normal rl.Vector3
	Toi    float32 // time of impact along the normalized direction
}

// Body is a handle to a rigid body owned by a World.
type Body interface {
	Kind() BodyKind
	Translation() rl.Vector3
	Rotation() rl.Vector3
	LinearVelocity() rl.Vector3
	SetLinearVelocity(v rl.Vector3)

	// UserData is a non-owning link to whatever represents the body visually.
	UserData() any
	SetUserData(data any)
}

// World is a running simulation. All calls must come from the tick goroutine.
type World interface {
	CreateFixedBody(shape Shape, t Transform) (Body, error)
	CreateDynamicBody(shape Shape, position rl.Vector3) (Body, error)

	// Step advances the simulation by exactly one fixed timestep.
	Step()

	// CastRay returns the closest hit within maxToi, ignoring exclude (may be nil).
	CastRay(ray Ray, maxToi float32, exclude Body) (RayHit, bool)

	Gravity() rl.Vector3
	Timestep() float32
	Release()
}

// Backend constructs worlds.
type Backend interface {
	Name() string
	NewWorld(desc WorldDesc) (World, error)
}
