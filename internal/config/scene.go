package config

import (
	"github.com/Faultbox/shatterbox/internal/engine/lighting"
	"github.com/Faultbox/shatterbox/internal/engine/scene"
	"github.com/Faultbox/shatterbox/internal/engine/shatter"
	"github.com/Faultbox/shatterbox/internal/engine/surface"
	"github.com/Faultbox/shatterbox/pkg/math"
)

// Vec returns v as a math.Vec3.
func (v Vec3) Vec() math.Vec3 {
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// SceneConfig maps the file settings onto the engine's scene.Config.
func (c *Config) SceneConfig() scene.Config {
	bg := c.Scene.Background
	return scene.Config{
		Position:      c.Scene.Position.Vec(),
		Size:          c.Scene.Size,
		Color:         c.Scene.Color.Vec(),
		Tilt:          c.Scene.Tilt,
		RotationSpeed: c.Scene.RotationSpeed,
		FocalLength:   c.Scene.FocalLength,
		Zoom:          c.Scene.Zoom,
		Background:    surface.Color{R: float32(bg[0]), G: float32(bg[1]), B: float32(bg[2]), A: 1},
		Shatter: shatter.Options{
			Divisions:  c.Shatter.Divisions,
			SpeedMin:   c.Shatter.SpeedMin,
			SpeedMax:   c.Shatter.SpeedMax,
			UpwardBias: c.Shatter.UpwardBias,
			SpinMax:    c.Shatter.SpinMax,
			Gap:        c.Shatter.Gap,
		},
		Physics: c.Physics,
		Light: lighting.Directional{
			Direction: c.Light.Direction.Vec(),
			Ambient:   c.Light.Ambient,
			Diffuse:   c.Light.Diffuse,
		},
	}
}
