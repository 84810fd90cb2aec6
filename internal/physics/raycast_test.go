package physics

import (
	"capsulewalk/internal/backend"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var down = rl.Vector3{X: 0, Y: -1, Z: 0}

func TestCastRayHitsGroundTop(t *testing.T) {
	w, ground := newGroundWorld(t)

	hit, ok := w.CastRay(backend.Ray{Origin: rl.Vector3{Y: 1.1}, Direction: down}, 1.6, nil)
	if !ok {
		t.Fatal("Expected ray to hit the ground")
	}
	if hit.Body != backend.Body(ground) {
		t.Error("Hit body should be the ground")
	}
	if !near(hit.Toi, 1.0, 1e-5) {
		t.Errorf("Expected toi 1.0, got %f", hit.Toi)
	}
	if hit.Normal != (rl.Vector3{Y: 1}) {
		t.Errorf("Expected up normal, got %v", hit.Normal)
	}
}

func TestCastRayRespectsMaxToi(t *testing.T) {
	w, _ := newGroundWorld(t)

	if _, ok := w.CastRay(backend.Ray{Origin: rl.Vector3{Y: 3}, Direction: down}, 1.6, nil); ok {
		t.Error("Ground is 2.9 away; a 1.6 ray should miss")
	}
}

func TestCastRayNormalizesDirection(t *testing.T) {
	w, _ := newGroundWorld(t)

	hit, ok := w.CastRay(backend.Ray{Origin: rl.Vector3{Y: 1.1}, Direction: rl.Vector3{Y: -10}}, 5, nil)
	if !ok || !near(hit.Toi, 1.0, 1e-5) {
		t.Errorf("Expected toi 1.0 with unnormalized direction, got %v (hit=%v)", hit.Toi, ok)
	}
}

func TestCastRayZeroDirectionMisses(t *testing.T) {
	w, _ := newGroundWorld(t)

	if _, ok := w.CastRay(backend.Ray{Origin: rl.Vector3{Y: 1}}, 5, nil); ok {
		t.Error("Zero direction should never hit")
	}
}

func TestCastRayExcludesBody(t *testing.T) {
	w, _ := newGroundWorld(t)
	body := addCharacter(t, w, rl.Vector3{Y: 1.1})
	ray := backend.Ray{Origin: body.Position, Direction: down}

	// Origin is inside the capsule: without exclusion it is a toi 0 hit
	hit, ok := w.CastRay(ray, 1.6, nil)
	if !ok || hit.Body != backend.Body(body) || hit.Toi != 0 {
		t.Errorf("Expected self hit at toi 0, got body=%v toi=%f ok=%v", hit.Body, hit.Toi, ok)
	}

	hit, ok = w.CastRay(ray, 1.6, body)
	if !ok {
		t.Fatal("Expected ground hit with self excluded")
	}
	if hit.Body == backend.Body(body) {
		t.Error("Excluded body was reported")
	}
	if !near(hit.Toi, 1.0, 1e-5) {
		t.Errorf("Expected toi 1.0, got %f", hit.Toi)
	}
}

func TestCastRayHitsCapsule(t *testing.T) {
	w := NewPhysicsWorld(earthGravity, 1.0/60.0)
	body := addCharacter(t, w, rl.Vector3{Y: 5})

	// Straight down onto the top cap
	hit, ok := w.CastRay(backend.Ray{Origin: rl.Vector3{Y: 10}, Direction: down}, 20, nil)
	if !ok || hit.Body != backend.Body(body) {
		t.Fatal("Expected capsule cap hit")
	}
	if !near(hit.Toi, 4.0, 1e-4) {
		t.Errorf("Expected toi 4.0 to the top cap, got %f", hit.Toi)
	}

	// Sideways into the cylinder wall
	hit, ok = w.CastRay(backend.Ray{Origin: rl.Vector3{X: -5, Y: 5}, Direction: rl.Vector3{X: 1}}, 20, nil)
	if !ok {
		t.Fatal("Expected capsule wall hit")
	}
	if !near(hit.Toi, 4.5, 1e-4) {
		t.Errorf("Expected toi 4.5 to the wall, got %f", hit.Toi)
	}
	if !near(hit.Normal.X, -1, 1e-4) {
		t.Errorf("Expected -X normal, got %v", hit.Normal)
	}
}

func TestCastRayPicksClosest(t *testing.T) {
	w, _ := newGroundWorld(t)
	if _, err := w.CreateFixedBody(backend.Box{HalfExtents: rl.Vector3{X: 1, Y: 0.5, Z: 1}}, backend.Transform{Position: rl.Vector3{Y: 2}}); err != nil {
		t.Fatalf("CreateFixedBody failed: %v", err)
	}

	hit, ok := w.CastRay(backend.Ray{Origin: rl.Vector3{Y: 5}, Direction: down}, 10, nil)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if !near(hit.Toi, 2.5, 1e-5) {
		t.Errorf("Expected the platform at toi 2.5, got %f", hit.Toi)
	}
}

func TestCastRayReleasedWorld(t *testing.T) {
	w, _ := newGroundWorld(t)
	w.Release()

	if _, ok := w.CastRay(backend.Ray{Origin: rl.Vector3{Y: 1}, Direction: down}, 5, nil); ok {
		t.Error("Released world should report no hits")
	}
}
