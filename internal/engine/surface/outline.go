package surface

import "github.com/Faultbox/shatterbox/pkg/math"

// OutlineQuads appends one quad per polygon edge to dst and returns it.
// Each quad is width wide, centred on its edge and extended by width/2 past
// both endpoints so adjacent edges overlap at the corners. All quads share
// the same winding, so a nonzero fill of their union never cancels.
// Zero-length edges and non-positive widths produce nothing.
func OutlineQuads(dst [][4]math.Vec2, points []math.Vec2, width float64) [][4]math.Vec2 {
	if width <= 0 || len(points) < 2 {
		return dst
	}
	half := width / 2
	for i, a := range points {
		b := points[(i+1)%len(points)]
		dir := b.Sub(a).Normalize()
		if dir == (math.Vec2{}) {
			continue
		}
		ext := dir.Scale(half)
		n := dir.Perp().Scale(half)
		a, b := a.Sub(ext), b.Add(ext)
		dst = append(dst, [4]math.Vec2{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
	}
	return dst
}
