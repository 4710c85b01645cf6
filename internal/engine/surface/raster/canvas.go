// Package raster implements surface.Surface in software on an image.RGBA
// using the anti-aliasing rasterizer from golang.org/x/image/vector.
package raster

import (
	"image"
	"image/draw"
	stdmath "math"

	"golang.org/x/image/vector"

	"github.com/Faultbox/shatterbox/internal/engine/surface"
	"github.com/Faultbox/shatterbox/pkg/math"
)

// Canvas is an in-memory drawing surface.
type Canvas struct {
	img *image.RGBA
	z   vector.Rasterizer
	src image.Uniform

	// reused across polygons
	quads [][4]math.Vec2
	paths [][]math.Vec2
}

// New creates a canvas of the given size. Non-positive sizes yield an empty
// canvas that ignores all drawing.
func New(width, height int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, max(width, 0), max(height, 0))),
	}
}

// Size implements surface.Surface.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the backing image. It is reused by later frames.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// FillBackground implements surface.Surface.
func (c *Canvas) FillBackground(col surface.Color) {
	c.src.C = col.NRGBA()
	draw.Draw(c.img, c.img.Bounds(), &c.src, image.Point{}, draw.Src)
}

// FillAndStrokePolygon implements surface.Surface. The fill is composited
// first, then the outline over it.
func (c *Canvas) FillAndStrokePolygon(points []math.Vec2, fill surface.Color, stroke surface.Stroke) {
	if len(points) < 3 {
		return
	}
	if fill.A > 0 {
		if clipped := c.clip(points); len(clipped) >= 3 {
			c.paths = append(c.paths[:0], clipped)
			c.fillPaths(c.paths, fill)
		}
	}
	if stroke.Color.A > 0 && stroke.Width > 0 {
		c.strokePolygon(points, stroke)
	}
}

func (c *Canvas) strokePolygon(points []math.Vec2, stroke surface.Stroke) {
	c.quads = surface.OutlineQuads(c.quads[:0], points, stroke.Width)
	paths := c.paths[:0]
	for _, q := range c.quads {
		clipped := c.clip(q[:])
		if len(clipped) >= 3 {
			paths = append(paths, clipped)
		}
	}
	c.paths = paths
	c.fillPaths(paths, stroke.Color)
}

func (c *Canvas) clip(poly []math.Vec2) []math.Vec2 {
	w, h := c.Size()
	return clipToRect(poly, float64(w), float64(h))
}

// fillPaths rasterizes all paths in one pass, so overlapping paths with the
// same winding saturate instead of compositing twice.
func (c *Canvas) fillPaths(paths [][]math.Vec2, col surface.Color) {
	if len(paths) == 0 {
		return
	}
	bounds := c.img.Bounds()
	minX, minY := stdmath.Inf(1), stdmath.Inf(1)
	maxX, maxY := stdmath.Inf(-1), stdmath.Inf(-1)
	for _, p := range paths {
		for _, v := range p {
			minX, maxX = stdmath.Min(minX, v.X), stdmath.Max(maxX, v.X)
			minY, maxY = stdmath.Min(minY, v.Y), stdmath.Max(maxY, v.Y)
		}
	}
	r := image.Rect(
		int(stdmath.Floor(minX)), int(stdmath.Floor(minY)),
		int(stdmath.Ceil(maxX)), int(stdmath.Ceil(maxY)),
	).Intersect(bounds)
	if r.Empty() {
		return
	}

	ox, oy := float64(r.Min.X), float64(r.Min.Y)
	c.z.Reset(r.Dx(), r.Dy())
	for _, p := range paths {
		c.z.MoveTo(float32(p[0].X-ox), float32(p[0].Y-oy))
		for _, v := range p[1:] {
			c.z.LineTo(float32(v.X-ox), float32(v.Y-oy))
		}
		c.z.ClosePath()
	}
	c.src.C = col.NRGBA()
	c.z.DrawOp = draw.Over
	c.z.Draw(c.img, r, &c.src, image.Point{})
}

// clipToRect returns the part of poly inside [0,w]x[0,h]
// (Sutherland-Hodgman against the four edges). poly is not modified.
func clipToRect(poly []math.Vec2, w, h float64) []math.Vec2 {
	out := poly
	for _, e := range [4]clipEdge{
		{axisX: true, limit: 0, keepAbove: true},
		{axisX: true, limit: w, keepAbove: false},
		{axisX: false, limit: 0, keepAbove: true},
		{axisX: false, limit: h, keepAbove: false},
	} {
		if len(out) == 0 {
			break
		}
		in := out
		out = make([]math.Vec2, 0, len(in)+2)
		for i, cur := range in {
			prev := in[(i+len(in)-1)%len(in)]
			curIn, prevIn := e.inside(cur), e.inside(prev)
			if curIn != prevIn {
				out = append(out, e.intersect(prev, cur))
			}
			if curIn {
				out = append(out, cur)
			}
		}
	}
	return out
}

type clipEdge struct {
	axisX     bool
	limit     float64
	keepAbove bool
}

func (e clipEdge) coord(p math.Vec2) float64 {
	if e.axisX {
		return p.X
	}
	return p.Y
}

func (e clipEdge) inside(p math.Vec2) bool {
	if e.keepAbove {
		return e.coord(p) >= e.limit
	}
	return e.coord(p) <= e.limit
}

func (e clipEdge) intersect(a, b math.Vec2) math.Vec2 {
	ca, cb := e.coord(a), e.coord(b)
	t := (e.limit - ca) / (cb - ca)
	p := a.Add(b.Sub(a).Scale(t))
	// pin the clipped coordinate exactly on the edge
	if e.axisX {
		p.X = e.limit
	} else {
		p.Y = e.limit
	}
	return p
}
