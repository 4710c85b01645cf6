// Package lighting provides the flat-shading light model for cuboid faces.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/shatterbox/internal/engine/surface"
	"github.com/Faultbox/shatterbox/pkg/math"
)

// Default light parameters.
var DefaultDirection = math.Vec3{X: -1, Y: 1, Z: -1}

const (
	DefaultAmbient = 0.4
	DefaultDiffuse = 0.6
)

// Directional is a light at infinity. Direction points from the scene
// toward the light and need not be normalized.
type Directional struct {
	Direction math.Vec3
	Ambient   float64
	Diffuse   float64
}

// Default returns the fixed scene light.
func Default() Directional {
	return Directional{
		Direction: DefaultDirection,
		Ambient:   DefaultAmbient,
		Diffuse:   DefaultDiffuse,
	}
}

// Brightness returns Ambient + Diffuse*max(0, n·L) for a unit normal n.
func (d Directional) Brightness(normal math.Vec3) float64 {
	lambert := normal.Dot(d.Direction.Normalize())
	if lambert < 0 {
		lambert = 0
	}
	return d.Ambient + d.Diffuse*lambert
}

// Shade scales a base color in [0,1]^3 by brightness. Each channel is
// floored after the multiply and then clamped to [0,255] on its own.
func Shade(base math.Vec3, brightness float64) surface.Color {
	return surface.RGB(
		channel(base.X, brightness),
		channel(base.Y, brightness),
		channel(base.Z, brightness),
	)
}

func channel(c, brightness float64) uint8 {
	v := gomath.Floor(c * 255 * brightness)
	if gomath.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
