// Package render draws the demo scene with raylib. It never touches physics.
package render

import (
	"capsulewalk/internal/engine"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer owns the frame target size and clear color.
type Renderer struct {
	Width      int32
	Height     int32
	Background color.RGBA
}

func NewRenderer(width, height int32) *Renderer {
	return &Renderer{
		Width:      width,
		Height:     height,
		Background: rl.NewColor(135, 206, 235, 255),
	}
}

// SetSize records a new viewport size and updates the camera aspect ratio.
func (r *Renderer) SetSize(width, height int32, cam *FollowCamera) {
	if width <= 0 || height <= 0 {
		return
	}
	r.Width = width
	r.Height = height
	if cam != nil {
		cam.Aspect = float32(width) / float32(height)
	}
}

// HandleResize polls raylib for a window resize. Must run on the window thread.
func (r *Renderer) HandleResize(cam *FollowCamera) bool {
	if !rl.IsWindowResized() {
		return false
	}
	r.SetSize(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()), cam)
	return true
}

// Render draws the scene through cam, then the 2D overlay (may be nil).
func (r *Renderer) Render(scene *engine.Scene, cam *FollowCamera, overlay func()) {
	rl.BeginDrawing()
	rl.ClearBackground(r.Background)

	if scene != nil && cam != nil {
		rl.BeginMode3D(cam.Camera)
		scene.Draw()
		rl.EndMode3D()
	}

	if overlay != nil {
		overlay()
	}
	rl.EndDrawing()
}
