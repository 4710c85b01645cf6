// Package geometry builds the screen-space faces of rotated cuboids.
package geometry

import (
	"errors"
	"fmt"
	gomath "math"

	"github.com/Faultbox/shatterbox/pkg/math"
)

// ErrInvalidSize is returned when a cuboid edge length is not positive.
var ErrInvalidSize = errors.New("cuboid size must be positive")

// Cuboid is the unit of both rendering and physics. The intact scene cube
// and every fragment are Cuboids.
type Cuboid struct {
	Position math.Vec3 // World-space center
	Size     float64   // Edge length, > 0
	Color    math.Vec3 // Base RGB in [0,1]
	Rotation math.Vec3 // Euler angles, applied X then Y then Z

	// Only meaningful for fragments.
	Velocity        math.Vec3
	AngularVelocity math.Vec3

	// Mass is carried for fragments but no physics reads it.
	Mass float64
}

// New creates a cuboid at rest.
func New(position math.Vec3, size float64, color math.Vec3) (*Cuboid, error) {
	if !(size > 0) || gomath.IsInf(size, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidSize, size)
	}
	if !position.IsFinite() {
		return nil, fmt.Errorf("cuboid position must be finite: %v", position)
	}
	if !color.IsFinite() {
		return nil, fmt.Errorf("cuboid color must be finite: %v", color)
	}
	return &Cuboid{
		Position: position,
		Size:     size,
		Color:    color,
		Mass:     1,
	}, nil
}

// HalfSize returns Size/2.
func (c *Cuboid) HalfSize() float64 {
	return c.Size / 2
}

// Bottom returns the Y of the cuboid's lowest face, ignoring rotation.
func (c *Cuboid) Bottom() float64 {
	return c.Position.Y - c.HalfSize()
}

// corners returns the 8 world-space corners.
func (c *Cuboid) corners() [8]math.Vec3 {
	var out [8]math.Vec3
	h := c.HalfSize()
	for i, o := range cornerSigns {
		local := math.Vec3{X: o.X * h, Y: o.Y * h, Z: o.Z * h}
		out[i] = local.Rotate(c.Rotation).Add(c.Position)
	}
	return out
}
