package physics

import (
	"capsulewalk/internal/backend"
	"errors"
	"math"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var earthGravity = rl.Vector3{X: 0, Y: -9.81, Z: 0}

func newGroundWorld(t *testing.T) (*PhysicsWorld, *RigidBody) {
	t.Helper()
	w := NewPhysicsWorld(earthGravity, 1.0/60.0)
	ground, err := w.CreateFixedBody(backend.Box{HalfExtents: rl.Vector3{X: 50, Y: 0.1, Z: 50}}, backend.Transform{})
	if err != nil {
		t.Fatalf("CreateFixedBody failed: %v", err)
	}
	return w, ground.(*RigidBody)
}

func addCharacter(t *testing.T, w *PhysicsWorld, pos rl.Vector3) *RigidBody {
	t.Helper()
	body, err := w.CreateDynamicBody(backend.Capsule{HalfHeight: 0.5, Radius: 0.5}, pos)
	if err != nil {
		t.Fatalf("CreateDynamicBody failed: %v", err)
	}
	return body.(*RigidBody)
}

func near(a, b, eps float32) bool {
	return math.Abs(float64(a-b)) <= float64(eps)
}

func TestStepAppliesGravity(t *testing.T) {
	w := NewPhysicsWorld(earthGravity, 0.5)
	body := addCharacter(t, w, rl.Vector3{Y: 100})

	w.Step()

	if !near(body.Velocity.Y, -4.905, 1e-4) {
		t.Errorf("Expected vy -4.905 after one step, got %f", body.Velocity.Y)
	}
	// Semi-implicit Euler: position uses the updated velocity
	if !near(body.Position.Y, 100-4.905*0.5, 1e-4) {
		t.Errorf("Expected y %f, got %f", 100-4.905*0.5, body.Position.Y)
	}
	if w.Steps() != 1 {
		t.Errorf("Expected 1 step, got %d", w.Steps())
	}
}

func TestFixedBodyNeverMoves(t *testing.T) {
	w, ground := newGroundWorld(t)
	ground.SetLinearVelocity(rl.Vector3{X: 1, Y: 2, Z: 3})

	for range 10 {
		w.Step()
	}

	if ground.Position != (rl.Vector3{}) {
		t.Errorf("Fixed body moved to %v", ground.Position)
	}
	if ground.LinearVelocity() != (rl.Vector3{}) {
		t.Errorf("Fixed body reports velocity %v", ground.LinearVelocity())
	}
}

func TestFixedBodyKeepsRotation(t *testing.T) {
	w := NewPhysicsWorld(earthGravity, 1.0/60)
	rot := rl.Vector3{Y: 45}
	body, err := w.CreateFixedBody(backend.Box{HalfExtents: rl.Vector3{X: 1, Y: 1, Z: 1}},
		backend.Transform{Position: rl.Vector3{Y: 2}, Rotation: rot})
	if err != nil {
		t.Fatal(err)
	}

	if body.Rotation() != rot {
		t.Errorf("Expected rotation %v, got %v", rot, body.Rotation())
	}
	if body.Translation() != (rl.Vector3{Y: 2}) {
		t.Errorf("Unexpected translation %v", body.Translation())
	}

	dyn, _ := w.CreateDynamicBody(backend.Capsule{HalfHeight: 0.5, Radius: 0.5}, rl.Vector3{})
	if dyn.Rotation() != (rl.Vector3{}) {
		t.Errorf("Dynamic body should start unrotated, got %v", dyn.Rotation())
	}
}

func TestCapsuleSettlesOnGround(t *testing.T) {
	w, _ := newGroundWorld(t)
	body := addCharacter(t, w, rl.Vector3{Y: 2})

	for range 180 {
		w.Step()
	}

	// ground top 0.1 + half height 0.5 + radius 0.5
	if !near(body.Position.Y, 1.1, 0.01) {
		t.Errorf("Expected capsule to rest at y=1.1, got %f", body.Position.Y)
	}
	if !near(body.Velocity.Y, 0, 1e-3) {
		t.Errorf("Expected resting vy ~0, got %f", body.Velocity.Y)
	}
}

func TestSlidingKeepsHorizontalVelocity(t *testing.T) {
	w, _ := newGroundWorld(t)
	body := addCharacter(t, w, rl.Vector3{Y: 1.1})

	for range 30 {
		body.SetLinearVelocity(rl.Vector3{X: 5, Y: body.Velocity.Y, Z: 0})
		w.Step()
	}

	if body.Velocity.X != 5 {
		t.Errorf("Ground contact should not slow horizontal motion, vx=%f", body.Velocity.X)
	}
	if !near(body.Position.X, 2.5, 0.01) {
		t.Errorf("Expected x ~2.5 after 0.5s at 5u/s, got %f", body.Position.X)
	}
	if !near(body.Position.Y, 1.1, 0.01) {
		t.Errorf("Capsule should stay on the ground, y=%f", body.Position.Y)
	}
}

func TestBoxBodyLandsOnGround(t *testing.T) {
	w, _ := newGroundWorld(t)
	crate, err := w.CreateDynamicBody(backend.Box{HalfExtents: rl.Vector3{X: 0.5, Y: 0.5, Z: 0.5}}, rl.Vector3{Y: 3})
	if err != nil {
		t.Fatalf("CreateDynamicBody failed: %v", err)
	}

	for range 240 {
		w.Step()
	}

	if !near(crate.Translation().Y, 0.6, 0.01) {
		t.Errorf("Expected box to rest at y=0.6, got %f", crate.Translation().Y)
	}
}

func TestInvalidShapesRejected(t *testing.T) {
	w := NewPhysicsWorld(earthGravity, 1.0/60.0)

	shapes := []backend.Shape{
		backend.Box{},
		backend.Capsule{HalfHeight: 1, Radius: 0},
		nil,
	}
	for _, s := range shapes {
		if _, err := w.CreateDynamicBody(s, rl.Vector3{}); !errors.Is(err, backend.ErrUnsupportedShape) {
			t.Errorf("Shape %#v: expected ErrUnsupportedShape, got %v", s, err)
		}
	}
}

func TestReleasedWorldRejectsBodies(t *testing.T) {
	w, _ := newGroundWorld(t)
	w.Release()

	_, err := w.CreateDynamicBody(backend.Capsule{HalfHeight: 0.5, Radius: 0.5}, rl.Vector3{})
	if !errors.Is(err, backend.ErrUninitialized) {
		t.Errorf("Expected ErrUninitialized after Release, got %v", err)
	}

	// Stepping a released world is a no-op
	w.Step()
	if w.Steps() != 0 {
		t.Errorf("Released world should not step, got %d steps", w.Steps())
	}
}

func TestRemoveBody(t *testing.T) {
	w, ground := newGroundWorld(t)
	body := addCharacter(t, w, rl.Vector3{Y: 2})

	w.RemoveBody(body)
	w.RemoveBody(ground)

	if len(w.Dynamics) != 0 || len(w.Statics) != 0 {
		t.Errorf("Expected empty world, got %d dynamics and %d statics", len(w.Dynamics), len(w.Statics))
	}
}

func TestEngineRegistered(t *testing.T) {
	b, err := backend.Resolve(BackendName)
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", BackendName, err)
	}
	if b.Name() != BackendName {
		t.Errorf("Expected backend name %q, got %q", BackendName, b.Name())
	}
}

func TestEngineRejectsBadDesc(t *testing.T) {
	if _, err := (Engine{}).NewWorld(backend.WorldDesc{Gravity: earthGravity, Timestep: 0}); err == nil {
		t.Error("Expected error for zero timestep")
	}
	nan := float32(math.NaN())
	if _, err := (Engine{}).NewWorld(backend.WorldDesc{Gravity: rl.Vector3{Y: nan}, Timestep: 0.1}); err == nil {
		t.Error("Expected error for NaN gravity")
	}
}
