package physics

import (
	"capsulewalk/internal/backend"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RigidBody is a simulated object owned by a PhysicsWorld.
type RigidBody struct {
	ID       int
	kind     backend.BodyKind
	Position rl.Vector3
	rotation rl.Vector3 // Euler angles in degrees
	Velocity rl.Vector3
	Collider Collider

	userData any
}

// Collider is the shape attached to exactly one body. Never mutated after creation.
type Collider struct {
	Shape backend.Shape
}

func (r *RigidBody) Kind() backend.BodyKind { return r.kind }

func (r *RigidBody) Translation() rl.Vector3 { return r.Position }

func (r *RigidBody) Rotation() rl.Vector3 { return r.rotation }

func (r *RigidBody) LinearVelocity() rl.Vector3 {
	if r.kind == backend.Fixed {
		return rl.Vector3{}
	}
	return r.Velocity
}

// SetLinearVelocity overwrites all three components. Ignored on fixed bodies.
func (r *RigidBody) SetLinearVelocity(v rl.Vector3) {
	if r.kind == backend.Fixed {
		return
	}
	r.Velocity = v
}

func (r *RigidBody) UserData() any { return r.userData }

func (r *RigidBody) SetUserData(data any) { r.userData = data }

// Bounds returns the world-space AABB of the collider.
func (r *RigidBody) Bounds() AABB {
	switch s := r.Collider.Shape.(type) {
	case backend.Box:
		return NewAABBFromHalfExtents(r.Position, s.HalfExtents)
	case backend.Capsule:
		return NewAABBFromHalfExtents(r.Position, rl.Vector3{
			X: s.Radius,
			Y: s.HalfHeight + s.Radius,
			Z: s.Radius,
		})
	}
	return AABB{Min: r.Position, Max: r.Position}
}

// segment returns the capsule's inner segment endpoints.
func (r *RigidBody) segment(c backend.Capsule) (rl.Vector3, rl.Vector3) {
	off := rl.Vector3{Y: c.HalfHeight}
	return rl.Vector3Subtract(r.Position, off), rl.Vector3Add(r.Position, off)
}

func validateShape(shape backend.Shape) error {
	switch s := shape.(type) {
	case backend.Box:
		if s.HalfExtents.X <= 0 || s.HalfExtents.Y <= 0 || s.HalfExtents.Z <= 0 {
			return backend.ErrUnsupportedShape
		}
		return nil
	case backend.Capsule:
		if s.Radius <= 0 || s.HalfHeight < 0 {
			return backend.ErrUnsupportedShape
		}
		return nil
	}
	return backend.ErrUnsupportedShape
}
