// Package controller turns held input and ground contact into velocity
// commands for a single character body.
package controller

import (
	"capsulewalk/internal/backend"
	"capsulewalk/internal/engine"
	"capsulewalk/internal/input"
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// State is the jump gate.
type State int

const (
	Airborne State = iota
	Grounded
)

func (s State) String() string {
	if s == Grounded {
		return "grounded"
	}
	return "airborne"
}

// Result summarizes one controller update.
type Result struct {
	MoveX, MoveZ float32
	Grounded     bool
	Jumped       bool
}

type Controller struct {
	Speed         float32
	JumpSpeed     float32
	ProbeDistance float32
	Policy        AxisPolicy

	// OnJump fires with the body position when a jump is applied.
	OnJump engine.EventWithArg[rl.Vector3]
	// OnLanded fires when the probe starts reporting ground.
	OnLanded engine.Event

	canJump  bool
	grounded bool
	// A jump latches the gate closed. The latch clears when the probe loses
	// the ground or the jump key is released, and the next probe that finds
	// ground reopens the gate.
	latched bool
}

func New() *Controller {
	return &Controller{
		Speed:         DefaultSpeed,
		JumpSpeed:     DefaultJumpSpeed,
		ProbeDistance: DefaultProbeDistance,
		Policy:        AxisLastWins,
	}
}

func (c *Controller) CanJump() bool { return c.canJump }

// Grounded is the result of the most recent probe.
func (c *Controller) Grounded() bool { return c.grounded }

func (c *Controller) State() State {
	if c.canJump {
		return Grounded
	}
	return Airborne
}

// Reset returns the controller to its startup state.
func (c *Controller) Reset() {
	c.canJump = false
	c.grounded = false
	c.latched = false
}

// Probe re-evaluates ground contact and updates the jump gate.
func (c *Controller) Probe(world backend.World, body backend.Body) bool {
	grounded := IsGrounded(world, body, c.ProbeDistance)
	wasGrounded := c.grounded
	c.grounded = grounded

	if !grounded {
		c.canJump = false
		c.latched = false
		return false
	}
	if !wasGrounded {
		c.OnLanded.Invoke()
	}
	if !c.latched {
		c.canJump = true
	}
	return true
}

// TryJump applies a jump when it is held and the gate is open, then closes the gate.
func (c *Controller) TryJump(body backend.Body, in input.Reader) bool {
	if body == nil || in == nil || !c.canJump || !in.Held(input.Jump) {
		return false
	}
	ApplyJump(body, c.JumpSpeed)
	c.canJump = false
	c.latched = true
	c.OnJump.Invoke(body.Translation())
	return true
}

// Update runs movement, probing and jump gating for one tick, in that order.
func (c *Controller) Update(world backend.World, body backend.Body, in input.Reader) (Result, error) {
	if world == nil || body == nil {
		return Result{}, fmt.Errorf("controller update: %w", backend.ErrUninitialized)
	}

	var r Result
	r.MoveX, r.MoveZ = ComputeMoveDirectionWith(in, c.Speed, c.Policy)
	ApplyMovement(body, r.MoveX, r.MoveZ)

	if in == nil || !in.Held(input.Jump) {
		c.latched = false
	}
	r.Grounded = c.Probe(world, body)
	r.Jumped = c.TryJump(body, in)
	return r, nil
}
