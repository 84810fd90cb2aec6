package controller

import (
	"capsulewalk/internal/backend"
	"capsulewalk/internal/input"
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	DefaultSpeed     = float32(5)
	DefaultJumpSpeed = float32(5)
)

// AxisPolicy decides what happens when both keys of one axis are held.
type AxisPolicy int

const (
	// AxisLastWins checks forward, back, left, right in that order and lets
	// the later key overwrite: back beats forward, right beats left.
	AxisLastWins AxisPolicy = iota
	// AxisCancel makes opposing keys cancel to zero on that axis.
	AxisCancel
)

func (p AxisPolicy) String() string {
	if p == AxisCancel {
		return "cancel"
	}
	return "last_wins"
}

func ParseAxisPolicy(s string) (AxisPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "last_wins":
		return AxisLastWins, nil
	case "cancel":
		return AxisCancel, nil
	}
	return AxisLastWins, fmt.Errorf("unknown axis policy %q", s)
}

// ComputeMoveDirection maps held keys to a planar velocity using AxisLastWins.
// Forward is -Z.
func ComputeMoveDirection(in input.Reader, speed float32) (x, z float32) {
	return ComputeMoveDirectionWith(in, speed, AxisLastWins)
}

func ComputeMoveDirectionWith(in input.Reader, speed float32, policy AxisPolicy) (x, z float32) {
	if in == nil {
		return 0, 0
	}
	if policy == AxisCancel {
		if in.Held(input.Forward) {
			z -= speed
		}
		if in.Held(input.Back) {
			z += speed
		}
		if in.Held(input.Left) {
			x -= speed
		}
		if in.Held(input.Right) {
			x += speed
		}
		return x, z
	}

	if in.Held(input.Forward) {
		z = -speed
	}
	if in.Held(input.Back) {
		z = speed
	}
	if in.Held(input.Left) {
		x = -speed
	}
	if in.Held(input.Right) {
		x = speed
	}
	return x, z
}

// ApplyMovement overwrites the horizontal velocity and keeps the vertical one.
func ApplyMovement(body backend.Body, x, z float32) {
	if body == nil {
		return
	}
	v := body.LinearVelocity()
	body.SetLinearVelocity(rl.Vector3{X: x, Y: v.Y, Z: z})
}

// ApplyJump overwrites the vertical velocity and keeps the horizontal one.
func ApplyJump(body backend.Body, jumpSpeed float32) {
	if body == nil {
		return
	}
	v := body.LinearVelocity()
	body.SetLinearVelocity(rl.Vector3{X: v.X, Y: jumpSpeed, Z: v.Z})
}
