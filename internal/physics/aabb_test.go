package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestAABBResolvePicksShallowestAxis(t *testing.T) {
	floor := NewAABBFromHalfExtents(rl.Vector3{}, rl.Vector3{X: 10, Y: 0.5, Z: 10})
	box := NewAABBFromHalfExtents(rl.Vector3{Y: 0.9}, rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5})

	push := box.Resolve(floor)
	if !near(push.Y, 0.1, 1e-5) || push.X != 0 || push.Z != 0 {
		t.Errorf("Expected push (0, 0.1, 0), got %v", push)
	}
}

func TestAABBResolveNoOverlap(t *testing.T) {
	a := NewAABBFromHalfExtents(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})
	b := NewAABBFromHalfExtents(rl.Vector3{X: 5}, rl.Vector3{X: 1, Y: 1, Z: 1})

	if push := a.Resolve(b); push != rl.Vector3Zero() {
		t.Errorf("Expected zero push, got %v", push)
	}
}

func TestAABBClosestPoint(t *testing.T) {
	a := NewAABBFromHalfExtents(rl.Vector3{}, rl.Vector3{X: 1, Y: 1, Z: 1})

	got := a.ClosestPoint(rl.Vector3{X: 3, Y: 0.5, Z: -4})
	want := rl.Vector3{X: 1, Y: 0.5, Z: -1}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
	if !a.Contains(got) {
		t.Error("Closest point should lie inside the box")
	}
}
