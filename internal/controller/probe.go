package controller

import (
	"capsulewalk/internal/backend"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultProbeDistance covers the capsule's own half-height plus radius, so
// the character counts as grounded while within about a body-height of a surface.
const DefaultProbeDistance = float32(1.6)

var down = rl.Vector3{X: 0, Y: -1, Z: 0}

// IsGrounded casts a ray straight down from the body's origin and reports a
// hit closer than maxDistance. The body's own collider is ignored. A missing
// world or body is "not grounded", never an error.
func IsGrounded(world backend.World, body backend.Body, maxDistance float32) bool {
	if world == nil || body == nil {
		return false
	}
	hit, ok := world.CastRay(backend.Ray{Origin: body.Translation(), Direction: down}, maxDistance, body)
	return ok && hit.Toi < maxDistance
}
