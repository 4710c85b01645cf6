package scene

import (
	"sort"

	"github.com/Faultbox/shatterbox/internal/engine/camera"
	"github.com/Faultbox/shatterbox/internal/engine/geometry"
	"github.com/Faultbox/shatterbox/internal/engine/surface"
)

// FrameStats summarizes one rendered frame.
type FrameStats struct {
	State     State
	Faces     int // Polygons drawn
	Discarded int // Cuboids dropped at the near plane
	Resting   int // Fragments settled on the floor
}

// Tick runs one frame: queued intents, simulation, then rendering.
func (s *Scene) Tick(surf surface.Surface) FrameStats {
	s.ApplyPending()
	s.Advance()
	stats := s.Render(surf)
	if s.state == Exploded {
		stats.Resting = s.Resting()
	}
	return stats
}

// Advance moves the simulation one step: the intact cuboid turns about Y,
// fragments go through the physics integrator.
func (s *Scene) Advance() {
	switch s.state {
	case Intact:
		s.RotationAngle += s.cfg.RotationSpeed
		s.Main.Rotation.Y = s.RotationAngle
	case Exploded:
		s.integrator.StepAll(s.Fragments)
	}
}

// Camera returns the camera for a surface of the given size at the current
// zoom.
func (s *Scene) Camera(width, height int) camera.Camera {
	cam := camera.New(s.cfg.FocalLength, width, height)
	cam.Zoom = s.Zoom
	return cam
}

// Compose collects every visible face and sorts them back to front. The
// returned slice is reused by the next call.
func (s *Scene) Compose(cam camera.Camera) (faces []geometry.Face, discarded int) {
	faces = s.faces[:0]

	switch s.state {
	case Intact:
		n := len(faces)
		faces = geometry.AppendFaces(faces, s.Main, cam, s.cfg.Light, geometry.StrokeIntact)
		if len(faces) == n {
			discarded++
		}
	case Exploded:
		for _, f := range s.Fragments {
			n := len(faces)
			faces = geometry.AppendFaces(faces, f, cam, s.cfg.Light, geometry.StrokeFragment)
			if len(faces) == n {
				discarded++
			}
		}
	}

	SortFaces(faces)
	s.faces = faces
	return faces, discarded
}

// SortFaces orders faces by depth, farthest first. Equal depths keep their
// relative order.
func SortFaces(faces []geometry.Face) {
	sort.SliceStable(faces, func(i, j int) bool {
		return faces[i].Depth > faces[j].Depth
	})
}

// Render clears surf and draws the current scene without advancing it.
func (s *Scene) Render(surf surface.Surface) FrameStats {
	w, h := surf.Size()
	faces, discarded := s.Compose(s.Camera(w, h))

	surf.FillBackground(s.cfg.Background)
	for i := range faces {
		f := &faces[i]
		surf.FillAndStrokePolygon(f.Points[:], f.Fill, f.Stroke)
	}

	return FrameStats{
		State:     s.state,
		Faces:     len(faces),
		Discarded: discarded,
	}
}
