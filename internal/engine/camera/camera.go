// Package camera provides the pinhole projection used by the scene renderer.
package camera

import (
	"github.com/Faultbox/shatterbox/pkg/math"
)

// Zoom limits and per-notch factors applied by scroll input.
const (
	MinZoom     = 0.5
	MaxZoom     = 5.0
	ZoomInStep  = 1.1
	ZoomOutStep = 0.9

	// DefaultNear is the smallest view depth that still projects.
	DefaultNear = 0.1
)

// ScreenPoint is a projected point. Depth is the world-space Z it came from.
type ScreenPoint struct {
	X, Y  float64
	Depth float64
}

// Vec2 returns the screen position without depth.
func (p ScreenPoint) Vec2() math.Vec2 {
	return math.Vec2{X: p.X, Y: p.Y}
}

// Camera is a pinhole camera at the world origin looking down +Z.
type Camera struct {
	FocalLength float64
	Zoom        float64
	Near        float64

	Width, Height int
}

// New creates a camera for a surface of the given size.
func New(focalLength float64, width, height int) Camera {
	return Camera{
		FocalLength: focalLength,
		Zoom:        1,
		Near:        DefaultNear,
		Width:       width,
		Height:      height,
	}
}

// Project maps a world point to screen space. The second result is false
// when the point lies at or behind the near plane; such points are not
// clipped, the caller drops whatever they belong to.
func (c Camera) Project(p math.Vec3) (ScreenPoint, bool) {
	if p.Z <= c.Near {
		return ScreenPoint{}, false
	}
	scale := c.FocalLength * c.Zoom / p.Z
	return ScreenPoint{
		X:     p.X*scale + float64(c.Width)/2,
		Y:     float64(c.Height)/2 - p.Y*scale,
		Depth: p.Z,
	}, true
}

// ClampZoom limits z to [MinZoom, MaxZoom].
func ClampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// ZoomStep applies one scroll notch to zoom. A positive direction zooms in,
// anything else zooms out.
func ZoomStep(zoom float64, direction int) float64 {
	if direction > 0 {
		return ClampZoom(zoom * ZoomInStep)
	}
	return ClampZoom(zoom * ZoomOutStep)
}
