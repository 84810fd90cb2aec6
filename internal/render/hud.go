package render

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const progressTweenSeconds = 0.35

// HUD draws the loading bar, the fatal error panel and the status line.
type HUD struct {
	progress float32 // displayed percent, eased toward target
	target   float32
	message  string
	tween    *gween.Tween

	errMessage string
	Status     string
}

func NewHUD() *HUD {
	return &HUD{}
}

// SetProgress starts easing the bar toward percent (0-100).
func (h *HUD) SetProgress(percent float32, message string) {
	h.target = percent
	h.message = message
	h.tween = gween.New(h.progress, percent, progressTweenSeconds, ease.OutCubic)
}

// ShowError replaces the loading bar with an error panel.
func (h *HUD) ShowError(err error) {
	h.errMessage = fmt.Sprintf("Failed to initialize the physics engine: %v", err)
}

// ClearError hides the panel before a retry.
func (h *HUD) ClearError() {
	h.errMessage = ""
	h.progress = 0
	h.target = 0
	h.tween = nil
}

func (h *HUD) Progress() float32 { return h.progress }
func (h *HUD) Message() string { return h.message }
func (h *HUD) ErrorMessage() string { return h.errMessage }

// Loading reports whether the bar has not yet reached 100%.
func (h *HUD) Loading() bool {
	return h.errMessage == "" && h.progress < 100
}

// Update advances the progress tween.
func (h *HUD) Update(dt float32) {
	if h.tween == nil {
		return
	}
	value, done := h.tween.Update(dt)
	h.progress = value
	if done {
		h.progress = h.target
		h.tween = nil
	}
}

// Draw renders whichever overlay is active. It returns true when the user
// pressed "Try Again" on the error panel.
func (h *HUD) Draw(width, height int32) bool {
	w, ht := float32(width), float32(height)

	if h.errMessage != "" {
		panel := rl.Rectangle{X: w/2 - 300, Y: ht/2 - 110, Width: 600, Height: 220}
		gui.Panel(panel, "Error")
		rl.DrawText(h.errMessage, int32(panel.X)+16, int32(panel.Y)+44, 16, rl.Red)
		rl.DrawText("Initialization stopped. Check the configured physics backend.", int32(panel.X)+16, int32(panel.Y)+76, 14, rl.DarkGray)
		return gui.Button(rl.Rectangle{X: w/2 - 60, Y: panel.Y + panel.Height - 56, Width: 120, Height: 36}, "Try Again")
	}

	if h.Loading() {
		bar := rl.Rectangle{X: w/2 - 200, Y: ht/2 - 12, Width: 400, Height: 24}
		gui.ProgressBar(bar, "", fmt.Sprintf("%.0f%%", h.progress), h.progress, 0, 100)
		rl.DrawText(h.message, int32(bar.X), int32(bar.Y)+32, 16, rl.DarkGray)
		return false
	}

	if h.Status != "" {
		gui.StatusBar(rl.Rectangle{X: 0, Y: ht - 24, Width: w, Height: 24}, h.Status)
	}
	return false
}
