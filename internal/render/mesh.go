package render

import (
	"capsulewalk/internal/engine"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// GroundMesh draws a flat plane at its GameObject's position.
type GroundMesh struct {
	engine.BaseComponent
	Width float32
	Depth float32
	Color color.RGBA
}

func (m *GroundMesh) Draw() {
	g := m.GetGameObject()
	if g == nil {
		return
	}
	rl.DrawPlane(g.Transform.Position, rl.Vector2{X: m.Width, Y: m.Depth}, m.Color)
	rl.DrawGrid(int32(m.Width/2), 2)
}

// CharacterMesh draws a Y-aligned capsule. Height is the length of the
// cylindrical part, so the full height is Height + 2*Radius.
type CharacterMesh struct {
	engine.BaseComponent
	Radius float32
	Height float32
	Color  color.RGBA
}

// Ends returns the centers of the two hemispheres.
func (m *CharacterMesh) Ends() (rl.Vector3, rl.Vector3) {
	g := m.GetGameObject()
	if g == nil {
		return rl.Vector3{}, rl.Vector3{}
	}
	pos := g.Transform.Position
	half := rl.Vector3{Y: m.Height / 2}
	return rl.Vector3Subtract(pos, half), rl.Vector3Add(pos, half)
}

func (m *CharacterMesh) Draw() {
	if m.GetGameObject() == nil {
		return
	}
	bottom, top := m.Ends()
	rl.DrawCapsule(bottom, top, m.Radius, 16, 8, m.Color)
	rl.DrawCapsuleWires(bottom, top, m.Radius, 16, 8, rl.Maroon)
}

// NewGroundMesh returns a GameObject carrying a plane of the given size.
func NewGroundMesh(width, depth float32, c color.RGBA) *engine.GameObject {
	g := engine.NewGameObject("Ground")
	g.Tags = []string{"ground"}
	g.AddComponent(&GroundMesh{Width: width, Depth: depth, Color: c})
	return g
}

// NewCharacterMesh returns a GameObject carrying a capsule.
func NewCharacterMesh(radius, height float32, c color.RGBA) *engine.GameObject {
	g := engine.NewGameObject("Character")
	g.Tags = []string{"player"}
	g.AddComponent(&CharacterMesh{Radius: radius, Height: height, Color: c})
	return g
}
