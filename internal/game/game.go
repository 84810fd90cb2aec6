// Package game wires configuration, physics, input and rendering into the
// running demo.
package game

import (
	"capsulewalk/internal/backend"
	"capsulewalk/internal/config"
	"capsulewalk/internal/controller"
	"capsulewalk/internal/engine"
	"capsulewalk/internal/input"
	_ "capsulewalk/internal/physics" // registers the native backend
	"capsulewalk/internal/render"
	"fmt"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Game struct {
	Config     *config.Config
	Scene      *engine.Scene
	Camera     *render.FollowCamera
	Renderer   *render.Renderer
	HUD        *render.HUD
	Input      *input.State
	Listener   *input.Listener
	Controller *controller.Controller
	Driver     *Driver

	World     backend.World
	Ground    backend.Body
	Character backend.Body
	Player    *engine.GameObject

	// InitErr holds the last initialization failure until a retry succeeds.
	InitErr error

	lastReport     FrameReport
	retryRequested bool
}

// New validates cfg and builds the collaborators that do not need a window.
func New(cfg *config.Config) (*Game, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bindings := input.DefaultBindings()
	if len(cfg.Input.Bindings) > 0 {
		b, err := input.ParseBindings(cfg.Input.Bindings)
		if err != nil {
			return nil, fmt.Errorf("input bindings: %w", err)
		}
		bindings = b
	}

	ctrl, err := NewController(cfg.Character)
	if err != nil {
		return nil, err
	}
	ctrl.OnJump.AddListener(func(pos rl.Vector3) {
		log.Printf("Character: jump from (%.2f, %.2f, %.2f)", pos.X, pos.Y, pos.Z)
	})
	ctrl.OnLanded.AddListener(func() {
		log.Println("Character: grounded")
	})

	state := input.NewState()
	cam := render.NewFollowCamera(cfg.Camera.FOV, float32(cfg.Window.Width)/float32(cfg.Window.Height))
	cam.OffsetY = cfg.Camera.OffsetY
	cam.OffsetZ = cfg.Camera.OffsetZ

	return &Game{
		Config:     cfg,
		Scene:      engine.NewScene("Main"),
		Camera:     cam,
		Renderer:   render.NewRenderer(cfg.Window.Width, cfg.Window.Height),
		HUD:        render.NewHUD(),
		Input:      state,
		Listener:   input.NewListener(state, bindings),
		Controller: ctrl,
	}, nil
}

// NewController builds a controller from the character section.
func NewController(cfg config.CharacterConfig) (*controller.Controller, error) {
	policy, err := controller.ParseAxisPolicy(cfg.AxisPolicy)
	if err != nil {
		return nil, fmt.Errorf("character: %w", err)
	}
	ctrl := controller.New()
	ctrl.Speed = cfg.Speed
	ctrl.JumpSpeed = cfg.JumpSpeed
	ctrl.ProbeDistance = cfg.ProbeDistance
	ctrl.Policy = policy
	return ctrl, nil
}

func vec3(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func (g *Game) progress(percent float32, message string) {
	log.Printf("Init: %s (%.0f%%)", message, percent)
	g.HUD.SetProgress(percent, message)
}

func (g *Game) fail(err error) error {
	log.Printf("Init: %v", err)
	g.InitErr = err
	g.Driver = nil
	g.HUD.ShowError(err)
	return err
}

// Initialize builds the world, ground and character. Any failure stops
// initialization and is shown on the HUD until the user retries.
func (g *Game) Initialize() error {
	g.teardown()
	g.InitErr = nil
	cfg := g.Config

	g.progress(10, "Initializing physics...")
	b, err := backend.Resolve(cfg.Physics.Backend)
	if err != nil {
		return g.fail(err)
	}
	world, err := backend.CreateWorld(b, vec3(cfg.Physics.Gravity), cfg.Physics.Timestep)
	if err != nil {
		return g.fail(err)
	}
	g.World = world

	g.progress(40, "Creating world...")
	half := vec3(cfg.Physics.GroundHalfExtents)
	ground, err := backend.CreateFixedBody(world, backend.Box{HalfExtents: half}, backend.Transform{})
	if err != nil {
		return g.fail(fmt.Errorf("create ground: %w", err))
	}
	groundMesh := render.NewGroundMesh(half.X*2, half.Z*2, rl.Gray)
	groundMesh.Transform.Position = rl.Vector3{Y: half.Y}
	ground.SetUserData(groundMesh)
	g.Scene.AddGameObject(groundMesh)
	g.Ground = ground

	g.progress(60, "Creating character...")
	spawn := vec3(cfg.Character.Spawn)
	character, err := backend.CreateDynamicBody(world, backend.Capsule{
		HalfHeight: cfg.Character.HalfHeight,
		Radius:     cfg.Character.Radius,
	}, spawn)
	if err != nil {
		return g.fail(fmt.Errorf("create character: %w", err))
	}
	g.Player = render.NewCharacterMesh(cfg.Character.Radius, cfg.Character.HalfHeight*2, rl.Red)
	g.Player.Transform.Position = spawn
	character.SetUserData(g.Player)
	g.Scene.AddGameObject(g.Player)
	g.Character = character

	g.progress(90, "Finalizing...")
	g.Camera.LookAt(rl.Vector3{X: 0, Y: 5, Z: 10}, rl.Vector3Zero())
	g.Controller.Reset()
	g.Listener.Reset()
	g.Driver = &Driver{
		World:      world,
		Body:       character,
		Input:      g.Input,
		Controller: g.Controller,
		Camera:     g.Camera,
		Render:     g.draw,
	}
	g.Scene.Start()

	g.progress(100, "Ready")
	return nil
}

// Retry is the explicit restart after a failed initialization.
func (g *Game) Retry() error {
	g.HUD.ClearError()
	return g.Initialize()
}

// Ready reports whether frames should run the simulation.
func (g *Game) Ready() bool {
	return g.InitErr == nil && g.Driver != nil && !g.HUD.Loading()
}

// Tick runs one simulation frame and records its report for the status line.
func (g *Game) Tick() FrameReport {
	report := g.Driver.Tick()
	if report.Err == nil {
		g.lastReport = report
	}
	p := g.lastReport.Position
	g.HUD.Status = fmt.Sprintf("pos (%.2f, %.2f, %.2f)   grounded: %v   can jump: %v   dropped frames: %d",
		p.X, p.Y, p.Z, g.lastReport.Grounded, g.Controller.CanJump(), g.Driver.Errors())
	return report
}

func (g *Game) draw() {
	g.Renderer.Render(g.Scene, g.Camera, g.drawOverlay)
}

func (g *Game) drawOverlay() {
	if g.HUD.Draw(g.Renderer.Width, g.Renderer.Height) {
		g.retryRequested = true
	}
	if g.Ready() {
		rl.DrawFPS(10, 10)
	}
}

// Run opens the window and drives frames until it is closed.
func (g *Game) Run() {
	w := g.Config.Window
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(w.Width, w.Height, w.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(w.TargetFPS)
	source := input.NewRaylibSource(g.Listener.Bindings)

	g.Initialize()
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update(rl.GetFrameTime(), source)
	}
}

// Update handles one display refresh.
func (g *Game) Update(deltaTime float32, source *input.RaylibSource) {
	g.Renderer.HandleResize(g.Camera)

	if !rl.IsWindowFocused() {
		g.Listener.Reset()
	} else {
		source.Poll(g.Listener)
	}
	g.HUD.Update(deltaTime)

	if g.Ready() {
		g.Tick()
		g.Scene.Update(deltaTime)
	} else {
		g.draw()
	}

	if g.retryRequested {
		g.retryRequested = false
		g.Retry()
	}
}

func (g *Game) teardown() {
	if g.World != nil {
		g.World.Release()
	}
	g.World = nil
	g.Ground = nil
	g.Character = nil
	g.Player = nil
	g.Driver = nil
	g.Scene = engine.NewScene("Main")
}

// Unload releases the physics world.
func (g *Game) Unload() {
	g.teardown()
}
