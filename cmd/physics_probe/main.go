// Headless run of the character controller against the native backend,
// printing a trajectory table for a scripted input sequence.
package main

import (
	"capsulewalk/internal/backend"
	"capsulewalk/internal/config"
	"capsulewalk/internal/game"
	"capsulewalk/internal/input"
	_ "capsulewalk/internal/physics"
	"flag"
	"fmt"
	"os"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// step is one segment of the script: hold keys for a number of ticks.
type step struct {
	keys  []input.Action
	ticks int
}

var script = []step{
	{nil, 90},
	{[]input.Action{input.Forward}, 60},
	{[]input.Action{input.Forward, input.Jump}, 90},
	{[]input.Action{input.Right}, 30},
	{nil, 60},
}

func main() {
	configPath := flag.String("config", "capsulewalk.yaml", "path to the YAML config")
	every := flag.Int("every", 10, "print every Nth tick")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	b, err := backend.Resolve(cfg.Physics.Backend)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	g := rl.Vector3{X: cfg.Physics.Gravity[0], Y: cfg.Physics.Gravity[1], Z: cfg.Physics.Gravity[2]}
	world, err := backend.CreateWorld(b, g, cfg.Physics.Timestep)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer world.Release()

	half := cfg.Physics.GroundHalfExtents
	if _, err := backend.CreateFixedBody(world, backend.Box{
		HalfExtents: rl.Vector3{X: half[0], Y: half[1], Z: half[2]},
	}, backend.Transform{}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	spawn := cfg.Character.Spawn
	body, err := backend.CreateDynamicBody(world, backend.Capsule{
		HalfHeight: cfg.Character.HalfHeight,
		Radius:     cfg.Character.Radius,
	}, rl.Vector3{X: spawn[0], Y: spawn[1], Z: spawn[2]})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctrl, err := game.NewController(cfg.Character)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	state := input.NewState()
	d := &game.Driver{World: world, Body: body, Input: state, Controller: ctrl}

	fmt.Printf("%5s  %-14s %8s %8s %8s %8s %8s  %s\n", "tick", "keys", "x", "y", "z", "vy", "toi", "state")
	tick := 0
	for _, s := range script {
		state.Reset()
		names := make([]string, 0, len(s.keys))
		for _, a := range s.keys {
			state.Set(a, true)
			names = append(names, a.String())
		}
		label := strings.Join(names, "+")
		if label == "" {
			label = "-"
		}

		for i := 0; i < s.ticks; i++ {
			tick++
			r := d.Tick()
			if r.Err != nil {
				fmt.Fprintf(os.Stderr, "tick %d: %v\n", tick, r.Err)
				continue
			}
			if tick%*every != 0 && !r.Jumped {
				continue
			}
			toi := "-"
			if hit, ok := world.CastRay(backend.Ray{Origin: r.Position, Direction: rl.Vector3{Y: -1}}, 100, body); ok {
				toi = fmt.Sprintf("%.3f", hit.Toi)
			}
			mark := ctrl.State().String()
			if r.Jumped {
				mark += " jump"
			}
			fmt.Printf("%5d  %-14s %8.3f %8.3f %8.3f %8.3f %8s  %s\n",
				tick, label, r.Position.X, r.Position.Y, r.Position.Z, r.Velocity.Y, toi, mark)
		}
	}
	fmt.Printf("\n%d ticks, %d errors, policy %s\n", d.Frames(), d.Errors(), ctrl.Policy)
	if sw, ok := world.(interface{ Steps() uint64 }); ok {
		fmt.Printf("%d physics steps\n", sw.Steps())
	}
}
