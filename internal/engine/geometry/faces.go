package geometry

import (
	"github.com/Faultbox/shatterbox/internal/engine/camera"
	"github.com/Faultbox/shatterbox/internal/engine/lighting"
	"github.com/Faultbox/shatterbox/internal/engine/surface"
	"github.com/Faultbox/shatterbox/pkg/math"
)

// Stroke presets: an opaque dark outline for the intact cuboid and a thin
// translucent one for fragments.
var (
	StrokeIntact   = surface.Stroke{Color: surface.Color{R: 0.1, G: 0.1, B: 0.12, A: 1}, Width: 2}
	StrokeFragment = surface.Stroke{Color: surface.Color{R: 0, G: 0, B: 0, A: 0.25}, Width: 0.5}
)

// Face is one shaded quad ready to draw.
type Face struct {
	Points [4]math.Vec2
	Depth  float64
	Fill   surface.Color
	Stroke surface.Stroke
}

// FaceID names the six faces of a cuboid.
type FaceID int

const (
	FaceFront FaceID = iota
	FaceBack
	FaceTop
	FaceBottom
	FaceLeft
	FaceRight
)

// Unit cube corner signs. Index bit 0 is +X, bit 1 is +Y, bit 2 is +Z.
var cornerSigns = [8]math.Vec3{
	{X: -1, Y: -1, Z: -1},
	{X: 1, Y: -1, Z: -1},
	{X: -1, Y: 1, Z: -1},
	{X: 1, Y: 1, Z: -1},
	{X: -1, Y: -1, Z: 1},
	{X: 1, Y: -1, Z: 1},
	{X: -1, Y: 1, Z: 1},
	{X: 1, Y: 1, Z: 1},
}

type faceDef struct {
	corners [4]int
	normal  math.Vec3
}

// Corner indices walk each face's perimeter.
var faceDefs = [6]faceDef{
	FaceFront:  {[4]int{0, 1, 3, 2}, math.Vec3{X: 0, Y: 0, Z: -1}},
	FaceBack:   {[4]int{5, 4, 6, 7}, math.Vec3{X: 0, Y: 0, Z: 1}},
	FaceTop:    {[4]int{2, 3, 7, 6}, math.Vec3{X: 0, Y: 1, Z: 0}},
	FaceBottom: {[4]int{4, 5, 1, 0}, math.Vec3{X: 0, Y: -1, Z: 0}},
	FaceLeft:   {[4]int{4, 0, 2, 6}, math.Vec3{X: -1, Y: 0, Z: 0}},
	FaceRight:  {[4]int{1, 5, 7, 3}, math.Vec3{X: 1, Y: 0, Z: 0}},
}

// Faces returns the six shaded faces of c in FaceID order, or nil when any
// corner cannot be projected. A cuboid is never partially drawn.
func Faces(c *Cuboid, cam camera.Camera, light lighting.Directional, stroke surface.Stroke) []Face {
	return AppendFaces(nil, c, cam, light, stroke)
}

// AppendFaces is Faces appending into dst. dst is returned unchanged when
// the cuboid is discarded.
func AppendFaces(dst []Face, c *Cuboid, cam camera.Camera, light lighting.Directional, stroke surface.Stroke) []Face {
	world := c.corners()

	var screen [8]camera.ScreenPoint
	for i, p := range world {
		sp, ok := cam.Project(p)
		if !ok {
			return dst
		}
		screen[i] = sp
	}

	for _, def := range faceDefs {
		var f Face
		var depth float64
		for j, idx := range def.corners {
			f.Points[j] = screen[idx].Vec2()
			depth += world[idx].Z
		}
		f.Depth = depth / 4

		n := def.normal.Rotate(c.Rotation)
		f.Fill = lighting.Shade(c.Color, light.Brightness(n))
		f.Stroke = stroke
		dst = append(dst, f)
	}
	return dst
}

// Normal returns the world-space outward normal of face id.
func (c *Cuboid) Normal(id FaceID) math.Vec3 {
	return faceDefs[id].normal.Rotate(c.Rotation)
}
