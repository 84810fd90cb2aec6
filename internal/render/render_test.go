package render

import (
	"capsulewalk/internal/engine"
	"errors"
	"strings"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestFollowCameraOffsets(t *testing.T) {
	cam := NewFollowCamera(75, 16.0/9.0)

	cam.Follow(rl.Vector3{X: 3, Y: 1.1, Z: -4})

	if cam.Camera.Position != (rl.Vector3{X: 3, Y: 6.1, Z: 6}) {
		t.Errorf("Expected camera at (3, 6.1, 6), got %v", cam.Camera.Position)
	}
	if cam.Camera.Target != (rl.Vector3{X: 3, Y: 1.1, Z: -4}) {
		t.Errorf("Camera should look at the target, got %v", cam.Camera.Target)
	}
	if cam.Camera.Fovy != 75 {
		t.Errorf("Expected fov 75, got %v", cam.Camera.Fovy)
	}
}

func TestFollowCameraCustomOffsets(t *testing.T) {
	cam := NewFollowCamera(60, 1)
	cam.OffsetY = 2
	cam.OffsetZ = 3

	cam.Follow(rl.Vector3{})

	if cam.Camera.Position != (rl.Vector3{Y: 2, Z: 3}) {
		t.Errorf("Expected camera at (0, 2, 3), got %v", cam.Camera.Position)
	}
}

func TestRendererSetSizeUpdatesAspect(t *testing.T) {
	r := NewRenderer(1280, 720)
	cam := NewFollowCamera(75, 16.0/9.0)

	r.SetSize(800, 800, cam)

	if r.Width != 800 || r.Height != 800 {
		t.Errorf("Expected 800x800, got %dx%d", r.Width, r.Height)
	}
	if cam.Aspect != 1 {
		t.Errorf("Expected aspect 1, got %v", cam.Aspect)
	}

	// Minimized windows report zero; keep the last good size
	r.SetSize(0, 0, cam)
	if r.Width != 800 || cam.Aspect != 1 {
		t.Error("Zero size should be ignored")
	}
}

func TestMeshFactories(t *testing.T) {
	ground := NewGroundMesh(100, 100, rl.Gray)
	if gm := engine.GetComponent[*GroundMesh](ground); gm == nil || gm.Width != 100 || gm.Depth != 100 {
		t.Error("Ground mesh component missing or wrong size")
	}
	if !ground.HasTag("ground") {
		t.Error("Ground should be tagged")
	}

	character := NewCharacterMesh(0.5, 1, rl.Red)
	cm := engine.GetComponent[*CharacterMesh](character)
	if cm == nil {
		t.Fatal("Character mesh component missing")
	}

	character.Transform.Position = rl.Vector3{X: 1, Y: 1.1, Z: 2}
	bottom, top := cm.Ends()
	if rl.Vector3Distance(bottom, rl.Vector3{X: 1, Y: 0.6, Z: 2}) > 1e-5 ||
		rl.Vector3Distance(top, rl.Vector3{X: 1, Y: 1.6, Z: 2}) > 1e-5 {
		t.Errorf("Unexpected capsule ends %v %v", bottom, top)
	}
}

func TestHUDProgressEases(t *testing.T) {
	h := NewHUD()
	h.SetProgress(40, "Creating world...")

	h.Update(progressTweenSeconds / 2)
	mid := h.Progress()
	if mid <= 0 || mid >= 40 {
		t.Errorf("Expected progress between 0 and 40 mid-tween, got %v", mid)
	}

	h.Update(progressTweenSeconds)
	if h.Progress() != 40 {
		t.Errorf("Expected progress 40 after the tween, got %v", h.Progress())
	}
	if h.Message() != "Creating world..." {
		t.Errorf("Unexpected message %q", h.Message())
	}
	if !h.Loading() {
		t.Error("HUD should still be loading below 100%")
	}

	h.SetProgress(100, "Done")
	h.Update(1)
	if h.Loading() {
		t.Error("HUD should stop loading at 100%")
	}
}

func TestHUDError(t *testing.T) {
	h := NewHUD()
	h.SetProgress(10, "Initializing physics...")
	h.ShowError(errors.New("backend missing"))

	if !strings.Contains(h.ErrorMessage(), "backend missing") {
		t.Errorf("Error message should include the cause, got %q", h.ErrorMessage())
	}
	if h.Loading() {
		t.Error("Error panel replaces the loading bar")
	}

	h.ClearError()
	if h.ErrorMessage() != "" || h.Progress() != 0 {
		t.Error("ClearError should reset the overlay")
	}
}
