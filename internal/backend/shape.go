package backend

import rl "github.com/gen2brain/raylib-go/raylib"

// Shape is a collider geometry. The set of shapes is closed.
type Shape interface {
	isShape()
}

// Box is an axis-aligned cuboid centered on its body.
type Box struct {
	HalfExtents rl.Vector3
}

// Capsule is a Y-aligned capsule centered on its body. The total height is
// 2*HalfHeight + 2*Radius.
type Capsule struct {
	HalfHeight float32
	Radius     float32
}

func (Box) isShape()     {}
func (Capsule) isShape() {}
