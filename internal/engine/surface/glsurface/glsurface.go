// Package glsurface implements surface.Surface on top of OpenGL 4.1.
//
// Draw calls are batched into one triangle list per frame and submitted in
// Flush, preserving call order so painter's ordering holds on the GPU.
package glsurface

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/shatterbox/internal/engine/shader"
	"github.com/Faultbox/shatterbox/internal/engine/surface"
	"github.com/Faultbox/shatterbox/pkg/math"
)

// floats per vertex: pos(2) + color(4)
const vertexSize = 6

// Surface batches polygons for GPU rendering.
type Surface struct {
	width, height int

	program *shader.Program
	vao     uint32
	vbo     uint32

	vertices []float32
	quads    [][4]math.Vec2
	clear    surface.Color
}

// New creates a GL surface. A current GL context is required.
func New(width, height int) (*Surface, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}

	program, err := shader.NewProgram(shader.SolidVertex, shader.SolidFragment)
	if err != nil {
		return nil, fmt.Errorf("solid shader: %w", err)
	}

	s := &Surface{
		width:    width,
		height:   height,
		program:  program,
		vertices: make([]float32, 0, 4096),
		clear:    surface.ColorBackground,
	}
	s.createBuffers()
	return s, nil
}

func (s *Surface) createBuffers() {
	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)

	stride := int32(vertexSize * 4)

	// Position attribute (location = 0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 2*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Size implements surface.Surface.
func (s *Surface) Size() (int, int) {
	return s.width, s.height
}

// Resize updates the drawable size, e.g. after a window resize.
func (s *Surface) Resize(width, height int) {
	s.width = width
	s.height = height
}

// FillBackground implements surface.Surface. It starts a new batch.
func (s *Surface) FillBackground(c surface.Color) {
	s.clear = c
	s.vertices = s.vertices[:0]
}

// FillAndStrokePolygon implements surface.Surface. The polygon must be
// convex; it is drawn as a triangle fan.
func (s *Surface) FillAndStrokePolygon(points []math.Vec2, fill surface.Color, stroke surface.Stroke) {
	if len(points) < 3 {
		return
	}
	if fill.A > 0 {
		for i := 1; i < len(points)-1; i++ {
			s.addTriangle(points[0], points[i], points[i+1], fill)
		}
	}
	if stroke.Color.A > 0 {
		s.quads = surface.OutlineQuads(s.quads[:0], points, stroke.Width)
		for _, q := range s.quads {
			s.addTriangle(q[0], q[1], q[2], stroke.Color)
			s.addTriangle(q[0], q[2], q[3], stroke.Color)
		}
	}
}

func (s *Surface) addTriangle(a, b, c math.Vec2, col surface.Color) {
	s.vertices = append(s.vertices,
		float32(a.X), float32(a.Y), col.R, col.G, col.B, col.A,
		float32(b.X), float32(b.Y), col.R, col.G, col.B, col.A,
		float32(c.X), float32(c.Y), col.R, col.G, col.B, col.A,
	)
}

// Flush clears the framebuffer and draws the batch.
func (s *Surface) Flush() {
	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(s.clear.R, s.clear.G, s.clear.B, s.clear.A)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if len(s.vertices) == 0 {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	proj := math.Ortho(0, float32(s.width), float32(s.height), 0, -1, 1)

	s.program.Use()
	gl.UniformMatrix4fv(s.program.Uniform("uProjection"), 1, false, proj.Ptr())

	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(s.vertices)*4, unsafe.Pointer(&s.vertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(s.vertices)/vertexSize))

	gl.BindVertexArray(0)
	gl.UseProgram(0)
}

// ReadPixels returns the framebuffer as RGBA bytes, bottom row first.
func (s *Surface) ReadPixels() []byte {
	pixels := make([]byte, s.width*s.height*4)
	if len(pixels) == 0 {
		return pixels
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels
}

// Close releases GL resources.
func (s *Surface) Close() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
	}
	if s.program != nil {
		s.program.Delete()
	}
}
