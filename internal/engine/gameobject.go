package engine

import rl "github.com/gen2brain/raylib-go/raylib"

// Transform is the visual placement of a GameObject. Physics owns the real
// position; the driver copies it here every tick.
type Transform struct {
	Position rl.Vector3
	Rotation rl.Vector3 // Euler angles in degrees
}

type GameObject struct {
	Name       string
	Tags       []string
	Transform  Transform
	Active     bool
	Scene      *Scene
	components []Component
	started    bool
}

func NewGameObject(name string) *GameObject {
	return &GameObject{Name: name, Active: true}
}

func (g *GameObject) AddComponent(c Component) {
	c.SetGameObject(g)
	g.components = append(g.components, c)
}

// GetComponent returns the first component of type T, or the zero value.
func GetComponent[T Component](g *GameObject) T {
	var zero T
	for _, c := range g.components {
		if typed, ok := c.(T); ok {
			return typed
		}
	}
	return zero
}

func (g *GameObject) Start() {
	if g.started {
		return
	}
	for _, c := range g.components {
		c.Start()
	}
	g.started = true
}

func (g *GameObject) Update(deltaTime float32) {
	if !g.Active {
		return
	}
	for _, c := range g.components {
		c.Update(deltaTime)
	}
}

func (g *GameObject) Components() []Component {
	return g.components
}

func (g *GameObject) HasTag(tag string) bool {
	for _, t := range g.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
