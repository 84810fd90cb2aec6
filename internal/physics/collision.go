package physics

import (
	"capsulewalk/internal/backend"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const contactEpsilon = 1e-6

// contact is a separating direction and the distance to move along it.
type contact struct {
	Normal rl.Vector3
	Depth  float32
}

// resolveStaticCollision pushes a dynamic body out of a fixed one and removes
// the velocity component heading into the contact (no restitution).
func (p *PhysicsWorld) resolveStaticCollision(rb, static *RigidBody) {
	if !rb.Bounds().Intersects(static.Bounds()) {
		return
	}

	var c contact
	var ok bool
	switch shape := rb.Collider.Shape.(type) {
	case backend.Capsule:
		box, isBox := static.Collider.Shape.(backend.Box)
		if !isBox {
			return
		}
		c, ok = capsuleBoxContact(rb, shape, static.Position, box)
	case backend.Box:
		c, ok = boxBoxContact(rb.Bounds(), static.Bounds())
	}
	if !ok {
		return
	}

	rb.Position = rl.Vector3Add(rb.Position, rl.Vector3Scale(c.Normal, c.Depth))

	if vn := rl.Vector3DotProduct(rb.Velocity, c.Normal); vn < 0 {
		rb.Velocity = rl.Vector3Subtract(rb.Velocity, rl.Vector3Scale(c.Normal, vn))
	}
}

func capsuleBoxContact(rb *RigidBody, capsule backend.Capsule, boxCenter rl.Vector3, box backend.Box) (contact, bool) {
	aabb := NewAABBFromHalfExtents(boxCenter, box.HalfExtents)
	a, b := rb.segment(capsule)

	// Alternate projections between the segment and the box; both are convex
	// so this settles on the closest pair in a few rounds.
	t := float32(0.5)
	var onSeg, onBox rl.Vector3
	for range 4 {
		onSeg = rl.Vector3Lerp(a, b, t)
		onBox = aabb.ClosestPoint(onSeg)
		t = closestOnSegment(a, b, onBox)
	}
	onSeg = rl.Vector3Lerp(a, b, t)
	onBox = aabb.ClosestPoint(onSeg)

	d := rl.Vector3Subtract(onSeg, onBox)
	dist := rl.Vector3Length(d)
	if dist >= capsule.Radius {
		return contact{}, false
	}
	if dist > contactEpsilon {
		return contact{
			Normal: rl.Vector3Scale(d, 1/dist),
			Depth:  capsule.Radius - dist,
		}, true
	}

	// Segment is inside the box: fall back to bounds separation.
	return boxBoxContact(rb.Bounds(), aabb)
}

func boxBoxContact(a, b AABB) (contact, bool) {
	push := a.Resolve(b)
	depth := rl.Vector3Length(push)
	if depth <= contactEpsilon {
		return contact{}, false
	}
	return contact{Normal: rl.Vector3Scale(push, 1/depth), Depth: depth}, true
}
