// Package surface defines the drawing primitives the scene renders through.
//
// A Surface is deliberately small: a background fill and a filled, outlined
// polygon. Implementations live in the raster (software, image.RGBA) and
// glsurface (OpenGL) subpackages; Recorder captures calls for tests and
// headless statistics.
package surface

import "github.com/Faultbox/shatterbox/pkg/math"

// Stroke describes a polygon outline.
type Stroke struct {
	Color Color
	Width float64
}

// Surface is a 2D drawing target with a fixed pixel size.
type Surface interface {
	// Size returns the drawable width and height in pixels.
	Size() (width, height int)

	// FillBackground clears the whole surface to c.
	FillBackground(c Color)

	// FillAndStrokePolygon fills the polygon with fill and outlines it.
	// Points are in screen space with Y growing downward.
	FillAndStrokePolygon(points []math.Vec2, fill Color, stroke Stroke)
}
