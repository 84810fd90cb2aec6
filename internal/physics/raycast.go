package physics

import (
	"capsulewalk/internal/backend"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// CastRay checks every collider and returns the closest hit within maxToi.
// Origins inside a collider hit it at toi 0.
func (p *PhysicsWorld) CastRay(ray backend.Ray, maxToi float32, exclude backend.Body) (backend.RayHit, bool) {
	if p.released || maxToi < 0 {
		return backend.RayHit{}, false
	}
	direction := rl.Vector3Normalize(ray.Direction)
	if rl.Vector3Length(direction) == 0 {
		return backend.RayHit{}, false
	}

	var closest backend.RayHit
	closest.Toi = maxToi
	hit := false

	check := func(bodies []*RigidBody) {
		for _, rb := range bodies {
			if exclude != nil && backend.Body(rb) == exclude {
				continue
			}
			var h backend.RayHit
			var ok bool
			switch s := rb.Collider.Shape.(type) {
			case backend.Box:
				h, ok = raycastBox(ray.Origin, direction, NewAABBFromHalfExtents(rb.Position, s.HalfExtents), maxToi)
			case backend.Capsule:
				a, b := rb.segment(s)
				h, ok = raycastCapsule(ray.Origin, direction, a, b, s.Radius, maxToi)
			}
			if ok && (!hit || h.Toi < closest.Toi) {
				closest = h
				closest.Body = rb
				hit = true
			}
		}
	}
	check(p.Dynamics)
	check(p.Statics)

	return closest, hit
}

func raycastBox(origin, direction rl.Vector3, box AABB, maxDistance float32) (backend.RayHit, bool) {
	if box.Contains(origin) {
		return backend.RayHit{Point: origin, Normal: rl.Vector3Negate(direction), Toi: 0}, true
	}

	min, max := box.Min, box.Max
	tmin := float32(-1e30)
	tmax := float32(1e30)

	slab := func(o, d, lo, hi float32) bool {
		if d == 0 {
			return o >= lo && o <= hi
		}
		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		return tmin <= tmax
	}
	if !slab(origin.X, direction.X, min.X, max.X) ||
		!slab(origin.Y, direction.Y, min.Y, max.Y) ||
		!slab(origin.Z, direction.Z, min.Z, max.Z) {
		return backend.RayHit{}, false
	}

	t := tmin
	if t < 0 || t > maxDistance {
		return backend.RayHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Normal from the face that was hit
	var normal rl.Vector3
	epsilon := float32(0.001)
	if abs(point.X-min.X) < epsilon {
		normal = rl.Vector3{X: -1, Y: 0, Z: 0}
	} else if abs(point.X-max.X) < epsilon {
		normal = rl.Vector3{X: 1, Y: 0, Z: 0}
	} else if abs(point.Y-min.Y) < epsilon {
		normal = rl.Vector3{X: 0, Y: -1, Z: 0}
	} else if abs(point.Y-max.Y) < epsilon {
		normal = rl.Vector3{X: 0, Y: 1, Z: 0}
	} else if abs(point.Z-min.Z) < epsilon {
		normal = rl.Vector3{X: 0, Y: 0, Z: -1}
	} else {
		normal = rl.Vector3{X: 0, Y: 0, Z: 1}
	}

	return backend.RayHit{Point: point, Normal: normal, Toi: t}, true
}

// raycastCapsule tests the Y-aligned capsule with inner segment a-b (a below b).
func raycastCapsule(origin, direction, a, b rl.Vector3, radius, maxDistance float32) (backend.RayHit, bool) {
	inner := rl.Vector3Lerp(a, b, closestOnSegment(a, b, origin))
	if rl.Vector3Distance(origin, inner) <= radius {
		return backend.RayHit{Point: origin, Normal: rl.Vector3Negate(direction), Toi: 0}, true
	}

	best := backend.RayHit{Toi: maxDistance}
	found := false
	keep := func(h backend.RayHit, ok bool) {
		if ok && (!found || h.Toi < best.Toi) {
			best = h
			found = true
		}
	}
	keep(raycastSphere(origin, direction, a, radius, maxDistance))
	keep(raycastSphere(origin, direction, b, radius, maxDistance))
	keep(raycastCylinder(origin, direction, a, b, radius, maxDistance))
	return best, found
}

func raycastSphere(origin, direction, center rl.Vector3, radius, maxDistance float32) (backend.RayHit, bool) {
	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - radius*radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return backend.RayHit{}, false
	}

	t := (-b - sqrt(discriminant)) / (2 * a)
	if t < 0 {
		t = (-b + sqrt(discriminant)) / (2 * a)
	}
	if t < 0 || t > maxDistance {
		return backend.RayHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return backend.RayHit{Point: point, Normal: normal, Toi: t}, true
}

// raycastCylinder hits only the side wall between a.Y and b.Y; the caps are
// covered by the end spheres.
func raycastCylinder(origin, direction, a, b rl.Vector3, radius, maxDistance float32) (backend.RayHit, bool) {
	ox, oz := origin.X-a.X, origin.Z-a.Z
	qa := direction.X*direction.X + direction.Z*direction.Z
	if qa == 0 {
		return backend.RayHit{}, false
	}
	qb := 2 * (ox*direction.X + oz*direction.Z)
	qc := ox*ox + oz*oz - radius*radius

	discriminant := qb*qb - 4*qa*qc
	if discriminant < 0 {
		return backend.RayHit{}, false
	}
	t := (-qb - sqrt(discriminant)) / (2 * qa)
	if t < 0 || t > maxDistance {
		return backend.RayHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	if point.Y < a.Y || point.Y > b.Y {
		return backend.RayHit{}, false
	}
	normal := rl.Vector3Normalize(rl.Vector3{X: point.X - a.X, Z: point.Z - a.Z})
	return backend.RayHit{Point: point, Normal: normal, Toi: t}, true
}
