// Package config loads demo settings from YAML, layered over defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Character CharacterConfig `yaml:"character"`
	Camera    CameraConfig    `yaml:"camera"`
	Input     InputConfig     `yaml:"input"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

type PhysicsConfig struct {
	Backend  string     `yaml:"backend"`
	Gravity  [3]float32 `yaml:"gravity"`
	Timestep float32    `yaml:"timestep"`
	// Ground is a box centered at the origin.
	GroundHalfExtents [3]float32 `yaml:"ground_half_extents"`
}

type CharacterConfig struct {
	Spawn         [3]float32 `yaml:"spawn"`
	HalfHeight    float32    `yaml:"half_height"`
	Radius        float32    `yaml:"radius"`
	Speed         float32    `yaml:"speed"`
	JumpSpeed     float32    `yaml:"jump_speed"`
	ProbeDistance float32    `yaml:"probe_distance"`
	AxisPolicy    string     `yaml:"axis_policy"`
}

type CameraConfig struct {
	FOV     float32 `yaml:"fov"`
	Near    float32 `yaml:"near"`
	Far     float32 `yaml:"far"`
	OffsetY float32 `yaml:"offset_y"`
	OffsetZ float32 `yaml:"offset_z"`
}

type InputConfig struct {
	// Bindings maps action name to key names, e.g. jump: [SPACE].
	// Empty keeps the built-in WASD/arrow layout.
	Bindings map[string][]string `yaml:"bindings"`
}

func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "capsulewalk",
			TargetFPS: 60,
		},
		Physics: PhysicsConfig{
			Backend:           "native",
			Gravity:           [3]float32{0, -9.81, 0},
			Timestep:          1.0 / 60.0,
			GroundHalfExtents: [3]float32{50, 0.1, 50},
		},
		Character: CharacterConfig{
			Spawn:         [3]float32{0, 2, 0},
			HalfHeight:    0.5,
			Radius:        0.5,
			Speed:         5,
			JumpSpeed:     5,
			ProbeDistance: 1.6,
			AxisPolicy:    "last_wins",
		},
		Camera: CameraConfig{
			FOV:     75,
			Near:    0.1,
			Far:     1000,
			OffsetY: 5,
			OffsetZ: 10,
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Physics.Backend == "":
		return errors.New("physics.backend must be set")
	case c.Physics.Timestep <= 0:
		return fmt.Errorf("physics.timestep must be positive, got %v", c.Physics.Timestep)
	case c.Character.Radius <= 0:
		return fmt.Errorf("character.radius must be positive, got %v", c.Character.Radius)
	case c.Character.HalfHeight < 0:
		return fmt.Errorf("character.half_height must not be negative, got %v", c.Character.HalfHeight)
	case c.Character.Speed < 0:
		return fmt.Errorf("character.speed must not be negative, got %v", c.Character.Speed)
	case c.Character.JumpSpeed <= 0:
		return fmt.Errorf("character.jump_speed must be positive, got %v", c.Character.JumpSpeed)
	case c.Character.ProbeDistance <= 0:
		return fmt.Errorf("character.probe_distance must be positive, got %v", c.Character.ProbeDistance)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("camera clip planes invalid: near=%v far=%v", c.Camera.Near, c.Camera.Far)
	}
	for _, v := range c.Physics.GroundHalfExtents {
		if v <= 0 {
			return fmt.Errorf("physics.ground_half_extents must be positive, got %v", c.Physics.GroundHalfExtents)
		}
	}
	return nil
}
