package game

import (
	"capsulewalk/internal/backend"
	"capsulewalk/internal/controller"
	"capsulewalk/internal/engine"
	"capsulewalk/internal/input"
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Follower is the camera collaborator.
type Follower interface {
	Follow(target rl.Vector3)
}

// FrameReport describes what one tick did.
type FrameReport struct {
	Frame    uint64
	Position rl.Vector3
	Velocity rl.Vector3
	Grounded bool
	Jumped   bool
	Err      error
}

// Driver runs the per-tick pipeline in a fixed order:
// step, sync visual, move, probe, jump, camera, render.
type Driver struct {
	World      backend.World
	Body       backend.Body
	Input      input.Reader
	Controller *controller.Controller
	Camera     Follower // may be nil
	Render     func()   // may be nil

	frames   uint64
	failures uint64
}

func (d *Driver) Frames() uint64 { return d.frames }

// Errors counts ticks that failed.
func (d *Driver) Errors() uint64 { return d.failures }

// Tick runs one frame. Failures are logged and returned in the report; the
// next Tick starts fresh.
func (d *Driver) Tick() (report FrameReport) {
	d.frames++
	report.Frame = d.frames

	defer func() {
		if r := recover(); r != nil {
			report.Err = fmt.Errorf("frame %d panicked: %v", report.Frame, r)
		}
		if report.Err != nil {
			d.failures++
			log.Printf("Frame: %v", report.Err)
		}
	}()

	if d.World == nil || d.Body == nil || d.Controller == nil {
		report.Err = fmt.Errorf("frame %d: %w", report.Frame, backend.ErrUninitialized)
		return report
	}

	// 1. Advance the simulation
	d.World.Step()

	// 2. Sync the visual representation
	pos := d.Body.Translation()
	if obj, ok := d.Body.UserData().(*engine.GameObject); ok && obj != nil {
		obj.Transform.Position = pos
	}

	// 3-6. Move, probe, jump
	result, err := d.Controller.Update(d.World, d.Body, d.Input)
	if err != nil {
		report.Err = fmt.Errorf("frame %d: %w", report.Frame, err)
		return report
	}

	// 7. Camera
	if d.Camera != nil {
		d.Camera.Follow(pos)
	}

	// 8. Render
	if d.Render != nil {
		d.Render()
	}

	report.Position = pos
	report.Velocity = d.Body.LinearVelocity()
	report.Grounded = result.Grounded
	report.Jumped = result.Jumped
	return report
}
