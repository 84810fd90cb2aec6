package physics

import (
	"capsulewalk/internal/backend"
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PhysicsWorld integrates dynamic bodies under constant gravity and resolves
// their contacts against fixed bodies. Boxes collide axis-aligned; a fixed
// body's rotation is stored for rendering only.
type PhysicsWorld struct {
	gravity  rl.Vector3
	timestep float32

	Dynamics []*RigidBody // integrated every step
	Statics  []*RigidBody // never moved

	nextID   int
	steps    uint64
	released bool
}

func NewPhysicsWorld(gravity rl.Vector3, timestep float32) *PhysicsWorld {
	return &PhysicsWorld{
		gravity:  gravity,
		timestep: timestep,
		Dynamics: make([]*RigidBody, 0),
		Statics:  make([]*RigidBody, 0),
	}
}

func (p *PhysicsWorld) Gravity() rl.Vector3 { return p.gravity }

func (p *PhysicsWorld) Timestep() float32 { return p.timestep }

// Steps returns how many times Step has run.
func (p *PhysicsWorld) Steps() uint64 { return p.steps }

func (p *PhysicsWorld) CreateFixedBody(shape backend.Shape, t backend.Transform) (backend.Body, error) {
	rb, err := p.addBody(backend.Fixed, shape, t.Position)
	if err != nil {
		return nil, err
	}
	rb.rotation = t.Rotation
	return rb, nil
}

func (p *PhysicsWorld) CreateDynamicBody(shape backend.Shape, position rl.Vector3) (backend.Body, error) {
	rb, err := p.addBody(backend.Dynamic, shape, position)
	if err != nil {
		return nil, err
	}
	return rb, nil
}

func (p *PhysicsWorld) addBody(kind backend.BodyKind, shape backend.Shape, position rl.Vector3) (*RigidBody, error) {
	if p == nil || p.released {
		return nil, fmt.Errorf("create %s body: %w", kind, backend.ErrUninitialized)
	}
	if err := validateShape(shape); err != nil {
		return nil, fmt.Errorf("create %s body: %w", kind, err)
	}
	p.nextID++
	rb := &RigidBody{
		ID:       p.nextID,
		kind:     kind,
		Position: position,
		Collider: Collider{Shape: shape},
	}
	if kind == backend.Fixed {
		p.Statics = append(p.Statics, rb)
	} else {
		p.Dynamics = append(p.Dynamics, rb)
	}
	log.Printf("Physics: %s body #%d registered at (%.2f, %.2f, %.2f)", kind, rb.ID, position.X, position.Y, position.Z)
	return rb, nil
}

func (p *PhysicsWorld) RemoveBody(rb *RigidBody) {
	for i, obj := range p.Dynamics {
		if obj == rb {
			p.Dynamics = append(p.Dynamics[:i], p.Dynamics[i+1:]...)
			return
		}
	}
	for i, obj := range p.Statics {
		if obj == rb {
			p.Statics = append(p.Statics[:i], p.Statics[i+1:]...)
			return
		}
	}
}

// Release drops every body. The world cannot be used afterwards.
func (p *PhysicsWorld) Release() {
	if p.released {
		return
	}
	log.Printf("Physics: world released after %d steps (%d bodies)", p.steps, len(p.Dynamics)+len(p.Statics))
	p.Dynamics = nil
	p.Statics = nil
	p.released = true
}

// Step advances the world by one fixed timestep.
func (p *PhysicsWorld) Step() {
	if p.released {
		return
	}
	dt := p.timestep

	// 1. Gravity into velocity, velocity into position
	gravityDelta := rl.Vector3Scale(p.gravity, dt)
	for _, rb := range p.Dynamics {
		rb.Velocity = rl.Vector3Add(rb.Velocity, gravityDelta)
		rb.Position = rl.Vector3Add(rb.Position, rl.Vector3Scale(rb.Velocity, dt))
	}

	// 2. Dynamic vs fixed contacts
	for _, rb := range p.Dynamics {
		for _, static := range p.Statics {
			p.resolveStaticCollision(rb, static)
		}
	}

	p.steps++
}
