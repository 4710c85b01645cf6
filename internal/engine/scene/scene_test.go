package scene

import (
	"errors"
	gomath "math"
	"math/rand/v2"
	"sync"
	"testing"

	"github.com/Faultbox/shatterbox/internal/engine/geometry"
	"github.com/Faultbox/shatterbox/internal/engine/shatter"
	"github.com/Faultbox/shatterbox/internal/engine/surface"
	"github.com/Faultbox/shatterbox/pkg/math"
)

func newRNG() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func newScene(t *testing.T, mutate func(*Config)) *Scene {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	s, err := New(cfg, newRNG())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return s
}

func TestNewStartsIntact(t *testing.T) {
	s := newScene(t, nil)
	if s.State() != Intact || s.IsExploded() {
		t.Errorf("State() = %v, want intact", s.State())
	}
	if len(s.Fragments) != 0 {
		t.Errorf("expected no fragments, got %d", len(s.Fragments))
	}
	if s.Zoom != 1 {
		t.Errorf("Zoom = %v, want 1", s.Zoom)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		is     error
	}{
		{"zero size", func(c *Config) { c.Size = 0 }, geometry.ErrInvalidSize},
		{"negative size", func(c *Config) { c.Size = -2 }, geometry.ErrInvalidSize},
		{"zero divisions", func(c *Config) { c.Shatter.Divisions = 0 }, shatter.ErrInvalidDivisions},
		{"zero focal length", func(c *Config) { c.FocalLength = 0 }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			_, err := New(cfg, newRNG())
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error = %v, want %v", err, tt.is)
			}
		})
	}

	if _, err := New(DefaultConfig(), nil); err == nil {
		t.Error("expected error for nil random source")
	}
}

func TestNewClampsZoom(t *testing.T) {
	s := newScene(t, func(c *Config) { c.Zoom = 50 })
	if s.Zoom != 5 {
		t.Errorf("Zoom = %v, want 5", s.Zoom)
	}
}

func TestExplodeIdempotent(t *testing.T) {
	s := newScene(t, nil)

	ok, err := s.Explode()
	if err != nil || !ok {
		t.Fatalf("first Explode() = %v, %v; want true, nil", ok, err)
	}
	if len(s.Fragments) != 216 {
		t.Fatalf("expected 216 fragments, got %d", len(s.Fragments))
	}

	before := make([]geometry.Cuboid, len(s.Fragments))
	for i, f := range s.Fragments {
		before[i] = *f
	}

	ok, err = s.Explode()
	if err != nil || ok {
		t.Fatalf("second Explode() = %v, %v; want false, nil", ok, err)
	}
	if len(s.Fragments) != len(before) {
		t.Fatalf("fragment count changed: %d -> %d", len(before), len(s.Fragments))
	}
	for i, f := range s.Fragments {
		if *f != before[i] {
			t.Fatalf("fragment %d changed by second Explode()", i)
		}
	}
	if s.State() != Exploded {
		t.Errorf("State() = %v, want exploded", s.State())
	}
}

func TestAdvanceIntactOverwritesRotation(t *testing.T) {
	s := newScene(t, func(c *Config) { c.RotationSpeed = 0.25 })
	s.Main.Rotation = math.Vec3{X: 0.3, Y: 99, Z: -0.2}

	s.Advance()

	if s.RotationAngle != 0.25 {
		t.Errorf("RotationAngle = %v, want 0.25", s.RotationAngle)
	}
	want := math.Vec3{X: 0.3, Y: 0.25, Z: -0.2}
	if s.Main.Rotation != want {
		t.Errorf("Main.Rotation = %v, want %v", s.Main.Rotation, want)
	}
}

func TestAdvanceExplodedRunsPhysics(t *testing.T) {
	s := newScene(t, nil)
	if _, err := s.Explode(); err != nil {
		t.Fatalf("Explode() error: %v", err)
	}
	angle := s.RotationAngle
	first := *s.Fragments[0]

	s.Advance()

	if s.RotationAngle != angle {
		t.Error("rotation angle should not advance once exploded")
	}
	if s.Fragments[0].Position == first.Position {
		t.Error("fragment did not move")
	}
	if s.Fragments[0].Velocity.Y >= first.Velocity.Y {
		t.Errorf("gravity not applied: vy %v -> %v", first.Velocity.Y, s.Fragments[0].Velocity.Y)
	}
}

func TestSortFacesDescending(t *testing.T) {
	faces := []geometry.Face{{Depth: 5}, {Depth: 1}, {Depth: 3}}
	SortFaces(faces)

	want := []float64{5, 3, 1}
	for i, f := range faces {
		if f.Depth != want[i] {
			t.Errorf("faces[%d].Depth = %v, want %v", i, f.Depth, want[i])
		}
	}
}

func TestSortFacesStable(t *testing.T) {
	a := geometry.Face{Depth: 2, Fill: surface.ColorWhite}
	b := geometry.Face{Depth: 2, Fill: surface.ColorBlack}
	faces := []geometry.Face{a, {Depth: 9}, b}
	SortFaces(faces)
	if faces[1].Fill != surface.ColorWhite || faces[2].Fill != surface.ColorBlack {
		t.Error("equal depths should keep insertion order")
	}
}

func TestRenderIntactEndToEnd(t *testing.T) {
	s := newScene(t, func(c *Config) {
		c.Position = math.Vec3{X: 0, Y: 0, Z: 4}
		c.Size = 2
		c.FocalLength = 600
	})
	rec := surface.NewRecorder(800, 600)

	stats := s.Render(rec)

	if rec.Clears != 1 || rec.Background != s.Config().Background {
		t.Errorf("background not filled once: clears=%d", rec.Clears)
	}
	if stats.Faces != 6 || len(rec.Calls) != 6 {
		t.Fatalf("expected 6 faces drawn, got stats=%d calls=%d", stats.Faces, len(rec.Calls))
	}

	// Nearest face (the front, depth 3) is drawn last.
	last := rec.Calls[len(rec.Calls)-1]
	var cx, cy float64
	for _, p := range last.Points {
		cx += p.X / 4
		cy += p.Y / 4
	}
	if gomath.Abs(cx-400) > 1e-9 || gomath.Abs(cy-300) > 1e-9 {
		t.Errorf("front face center = (%v, %v), want (400, 300)", cx, cy)
	}

	for _, c := range rec.Calls {
		if c.Stroke != geometry.StrokeIntact {
			t.Fatal("intact cuboid should use the intact stroke preset")
		}
	}
}

func TestComposeBackToFront(t *testing.T) {
	s := newScene(t, nil)
	if _, err := s.Explode(); err != nil {
		t.Fatalf("Explode() error: %v", err)
	}
	for i := 0; i < 20; i++ {
		s.Advance()
	}

	faces, _ := s.Compose(s.Camera(1280, 720))
	if len(faces) == 0 {
		t.Fatal("expected visible fragment faces")
	}
	for i := 1; i < len(faces); i++ {
		if faces[i].Depth > faces[i-1].Depth {
			t.Fatalf("faces not sorted back to front at %d: %v > %v", i, faces[i].Depth, faces[i-1].Depth)
		}
	}
}

func TestTickExploded(t *testing.T) {
	s := newScene(t, nil)
	rec := surface.NewRecorder(1280, 720)

	s.OnClick()
	stats := s.Tick(rec)

	if stats.State != Exploded {
		t.Fatalf("State = %v, want exploded after click + tick", stats.State)
	}
	if stats.Faces != 6*(216-stats.Discarded) {
		t.Errorf("Faces = %d, want 6 per visible fragment (discarded %d)", stats.Faces, stats.Discarded)
	}
	for _, c := range rec.Calls {
		if c.Stroke != geometry.StrokeFragment {
			t.Fatal("fragments should use the fragment stroke preset")
		}
	}
}

func TestRenderDiscardsBehindCamera(t *testing.T) {
	s := newScene(t, func(c *Config) { c.Position = math.Vec3{Z: -10} })
	rec := surface.NewRecorder(640, 480)

	stats := s.Tick(rec)

	if stats.Faces != 0 || stats.Discarded != 1 {
		t.Errorf("stats = %+v, want 0 faces and 1 discarded", stats)
	}
	if rec.Clears != 1 {
		t.Error("background should still be filled when nothing is visible")
	}
}

func TestIntentsApplyOnTick(t *testing.T) {
	s := newScene(t, nil)
	rec := surface.NewRecorder(320, 240)

	s.OnClick()
	s.OnScroll(1)
	s.OnColorChange(Green, 0)

	if s.IsExploded() {
		t.Fatal("intents must not apply before the next tick")
	}

	s.Tick(rec)

	if !s.IsExploded() {
		t.Error("expected exploded after tick")
	}
	if gomath.Abs(s.Zoom-1.1) > 1e-12 {
		t.Errorf("Zoom = %v, want 1.1", s.Zoom)
	}
	if s.Main.Color.Y != 0 {
		t.Errorf("main green = %v, want 0", s.Main.Color.Y)
	}
	for i, f := range s.Fragments {
		if f.Color.Y != 0 {
			t.Fatalf("fragment %d green = %v, want 0", i, f.Color.Y)
		}
	}
}

func TestSecondClickIsNoop(t *testing.T) {
	s := newScene(t, nil)
	rec := surface.NewRecorder(320, 240)

	s.OnClick()
	s.Tick(rec)
	first := s.Fragments

	s.OnClick()
	s.Tick(rec)

	if len(s.Fragments) != 216 || &s.Fragments[0] != &first[0] {
		t.Error("second click should not recreate fragments")
	}
}

func TestScrollClamps(t *testing.T) {
	s := newScene(t, nil)
	for i := 0; i < 100; i++ {
		s.Scroll(1)
	}
	if s.Zoom != 5 {
		t.Errorf("Zoom after many zoom-ins = %v, want 5", s.Zoom)
	}
	for i := 0; i < 100; i++ {
		s.Scroll(-1)
	}
	if s.Zoom != 0.5 {
		t.Errorf("Zoom after many zoom-outs = %v, want 0.5", s.Zoom)
	}
}

func TestColorChangeRetroactive(t *testing.T) {
	s := newScene(t, func(c *Config) { c.Shatter.Divisions = 2 })
	if _, err := s.Explode(); err != nil {
		t.Fatalf("Explode() error: %v", err)
	}

	if err := s.SetColorChannel(Red, 255); err != nil {
		t.Fatalf("SetColorChannel() error: %v", err)
	}
	if err := s.SetColorChannel(Blue, 51); err != nil {
		t.Fatalf("SetColorChannel() error: %v", err)
	}

	for _, c := range append([]*geometry.Cuboid{s.Main}, s.Fragments...) {
		if c.Color.X != 1 || c.Color.Z != 0.2 {
			t.Errorf("color = %v, want red 1 and blue 0.2", c.Color)
		}
	}
}

func TestColorChangeClampsAndRejectsUnknownChannel(t *testing.T) {
	s := newScene(t, nil)
	if err := s.SetColorChannel(Green, 300); err != nil {
		t.Fatalf("SetColorChannel() error: %v", err)
	}
	if s.Main.Color.Y != 1 {
		t.Errorf("green = %v, want 1", s.Main.Color.Y)
	}
	if err := s.SetColorChannel(Red, -5); err != nil || s.Main.Color.X != 0 {
		t.Errorf("red = %v (err %v), want 0", s.Main.Color.X, err)
	}
	if err := s.SetColorChannel(Channel(9), 10); err == nil {
		t.Error("expected error for unknown channel")
	}
}

func TestColorAfterExplodeDoesNotAffectCopyAtCreation(t *testing.T) {
	s := newScene(t, func(c *Config) { c.Shatter.Divisions = 2 })
	s.Main.Color = math.Vec3{X: 0.1, Y: 0.2, Z: 0.3}
	if _, err := s.Explode(); err != nil {
		t.Fatalf("Explode() error: %v", err)
	}

	// Direct writes to the main color are not shared with fragments.
	s.Main.Color.X = 0.9
	if s.Fragments[0].Color.X != 0.1 {
		t.Errorf("fragment color = %v, want creation-time copy 0.1", s.Fragments[0].Color.X)
	}
}

func TestPostConcurrent(t *testing.T) {
	s := newScene(t, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				s.OnScroll(-1)
			}
		}()
	}
	wg.Wait()

	if n := s.ApplyPending(); n != 200 {
		t.Errorf("ApplyPending() = %d, want 200", n)
	}
	if s.Zoom != 0.5 {
		t.Errorf("Zoom = %v, want 0.5", s.Zoom)
	}
	if n := s.ApplyPending(); n != 0 {
		t.Errorf("second ApplyPending() = %d, want 0", n)
	}
}

func TestRestingCount(t *testing.T) {
	s := newScene(t, func(c *Config) { c.Shatter.Divisions = 2 })
	if _, err := s.Explode(); err != nil {
		t.Fatalf("Explode() error: %v", err)
	}
	if s.Resting() != 0 {
		t.Error("fresh fragments should not be resting")
	}
	for i := 0; i < 3000; i++ {
		s.Advance()
	}
	if got := s.Resting(); got != 8 {
		t.Errorf("Resting() = %d, want 8 after settling", got)
	}
}

func TestStateString(t *testing.T) {
	if Intact.String() != "intact" || Exploded.String() != "exploded" {
		t.Error("unexpected State names")
	}
	if Red.String() != "red" || Blue.String() != "blue" {
		t.Error("unexpected Channel names")
	}
}
