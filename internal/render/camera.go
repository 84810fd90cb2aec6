package render

import rl "github.com/gen2brain/raylib-go/raylib"

// FollowCamera keeps a fixed offset behind and above a target. Aspect only
// records the viewport ratio for callers; raylib derives the projection
// aspect from the render size itself.
type FollowCamera struct {
	Camera  rl.Camera3D
	Aspect  float32
	OffsetY float32
	OffsetZ float32
}

func NewFollowCamera(fov, aspect float32) *FollowCamera {
	return &FollowCamera{
		Camera: rl.Camera3D{
			Position:   rl.Vector3{X: 0, Y: 5, Z: 10},
			Target:     rl.Vector3Zero(),
			Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
			Fovy:       fov,
			Projection: rl.CameraPerspective,
		},
		Aspect:  aspect,
		OffsetY: 5,
		OffsetZ: 10,
	}
}

// LookAt places the camera explicitly.
func (c *FollowCamera) LookAt(position, target rl.Vector3) {
	c.Camera.Position = position
	c.Camera.Target = target
}

// Follow moves the camera to the offset position and aims it at target.
func (c *FollowCamera) Follow(target rl.Vector3) {
	c.LookAt(rl.Vector3{
		X: target.X,
		Y: target.Y + c.OffsetY,
		Z: target.Z + c.OffsetZ,
	}, target)
}
