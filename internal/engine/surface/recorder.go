package surface

import "github.com/Faultbox/shatterbox/pkg/math"

// DrawCall is one recorded FillAndStrokePolygon call.
type DrawCall struct {
	Points []math.Vec2
	Fill   Color
	Stroke Stroke
}

// Recorder is a Surface that stores every call instead of drawing.
type Recorder struct {
	Width, Height int
	Background    Color
	Clears        int
	Calls         []DrawCall
}

// NewRecorder creates a recorder reporting the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

// Size implements Surface.
func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

// FillBackground implements Surface. It also discards calls from the
// previous frame.
func (r *Recorder) FillBackground(c Color) {
	r.Background = c
	r.Clears++
	r.Calls = r.Calls[:0]
}

// FillAndStrokePolygon implements Surface.
func (r *Recorder) FillAndStrokePolygon(points []math.Vec2, fill Color, stroke Stroke) {
	pts := make([]math.Vec2, len(points))
	copy(pts, points)
	r.Calls = append(r.Calls, DrawCall{Points: pts, Fill: fill, Stroke: stroke})
}
