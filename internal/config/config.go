// Package config handles shatterbox configuration loading and management.
package config

import (
	"github.com/Faultbox/shatterbox/internal/engine/physics"
	"github.com/Faultbox/shatterbox/internal/engine/shatter"
)

// Config holds all settings.
type Config struct {
	Window  WindowConfig   `yaml:"window"`
	Scene   SceneConfig    `yaml:"scene"`
	Shatter ShatterConfig  `yaml:"shatter"`
	Physics physics.Config `yaml:"physics"`
	Light   LightConfig    `yaml:"light"`
	Logging LoggingConfig  `yaml:"logging"`
}

// Vec3 is a YAML-friendly [x, y, z] triple.
type Vec3 [3]float64

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// SceneConfig describes the intact cuboid and the camera.
type SceneConfig struct {
	Position      Vec3    `yaml:"position,flow"`
	Size          float64 `yaml:"size"`
	Color         Vec3    `yaml:"color,flow"` // RGB in 0..1
	Tilt          float64 `yaml:"tilt"`
	RotationSpeed float64 `yaml:"rotation_speed"`
	FocalLength   float64 `yaml:"focal_length"`
	Zoom          float64 `yaml:"zoom"`
	Background    Vec3    `yaml:"background,flow"`
}

// ShatterConfig holds fragmentation parameters.
type ShatterConfig struct {
	Divisions  int     `yaml:"divisions"`
	SpeedMin   float64 `yaml:"speed_min"`
	SpeedMax   float64 `yaml:"speed_max"`
	UpwardBias float64 `yaml:"upward_bias"`
	SpinMax    float64 `yaml:"spin_max"`
	Gap        float64 `yaml:"gap"`
	Seed       uint64  `yaml:"seed"` // 0 picks a random seed at startup
}

// LightConfig holds the directional light.
type LightConfig struct {
	Direction Vec3    `yaml:"direction,flow"`
	Ambient   float64 `yaml:"ambient"`
	Diffuse   float64 `yaml:"diffuse"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	opts := shatter.DefaultOptions()
	return &Config{
		Window: WindowConfig{
			Title:  "shatterbox",
			Width:  800,
			Height: 600,
			VSync:  true,
		},
		Scene: SceneConfig{
			Position:      Vec3{0, 0, 8},
			Size:          2,
			Color:         Vec3{0.27, 0.55, 0.9},
			RotationSpeed: 0.01,
			FocalLength:   400,
			Zoom:          1,
			Background:    Vec3{0.08, 0.08, 0.12},
		},
		Shatter: ShatterConfig{
			Divisions:  opts.Divisions,
			SpeedMin:   opts.SpeedMin,
			SpeedMax:   opts.SpeedMax,
			UpwardBias: opts.UpwardBias,
			SpinMax:    opts.SpinMax,
			Gap:        opts.Gap,
		},
		Physics: physics.DefaultConfig(),
		Light: LightConfig{
			Direction: Vec3{-1, 1, -1},
			Ambient:   0.4,
			Diffuse:   0.6,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
